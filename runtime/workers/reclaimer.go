package workers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"herald/contract"
	"herald/repositories"
)

var _ contract.Worker = (*ReclaimWorker)(nil)

// ReclaimWorker sweeps messages left in DISPATCHING by an abrupt
// shutdown back to DRAFT, so a later send can retry them. Dispatch
// itself is not crash-safe mid-flight; the sweep only unsticks the
// state machine. Only records untouched for longer than staleAfter are
// reclaimed, which keeps a live dispatch out of reach. With a zero
// interval the worker sweeps once and terminates.
type ReclaimWorker struct {
	messages   repositories.IMessageRepository
	log        *slog.Logger
	interval   time.Duration
	staleAfter time.Duration
}

func NewReclaimWorker(messages repositories.IMessageRepository, log *slog.Logger, interval, staleAfter time.Duration) *ReclaimWorker {
	return &ReclaimWorker{messages: messages, log: log, interval: interval, staleAfter: staleAfter}
}

func (w *ReclaimWorker) Run(ctx context.Context) error {
	if err := w.sweep(ctx); err != nil {
		return err
	}
	if w.interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping reclaim worker")
			return nil
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				return err
			}
		}
	}
}

func (w *ReclaimWorker) sweep(ctx context.Context) error {
	stuck, err := w.messages.ListDispatching(time.Now().UTC().Add(-w.staleAfter))
	if err != nil {
		return err
	}
	for _, id := range stuck {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.messages.ReleaseToDraft(id); err != nil {
			return err
		}
		w.log.Info(fmt.Sprintf("Reclaimed stuck message %s back to draft", id))
	}
	return nil
}
