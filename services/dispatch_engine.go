//go:generate go run go.uber.org/mock/mockgen -source=dispatch_engine.go -destination=../mocks/mock_dispatch_engine.go -package=mocks
package services

import (
	"context"
	goerrors "errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"herald/contract"
	"herald/domain/message"
	"herald/errors"
)

type IDispatchEngine interface {
	Dispatch(ctx context.Context, msg message.EventMessage, recipients []message.Recipient) []message.RecipientOutcome
}

// DispatchEngine fans a message out to its recipients through the
// transport with a bounded number of in-flight sends. It never returns
// an error: per-recipient failure is data, aggregated downstream.
type DispatchEngine struct {
	transport   contract.Transport
	log         *slog.Logger
	workers     int
	maxAttempts int
	backoff     time.Duration
	sendTimeout time.Duration
}

func NewDispatchEngine(
	transport contract.Transport,
	log *slog.Logger,
	workers int,
	maxAttempts int,
	backoff time.Duration,
	sendTimeout time.Duration) IDispatchEngine {
	return &DispatchEngine{
		transport:   transport,
		log:         log,
		workers:     workers,
		maxAttempts: maxAttempts,
		backoff:     backoff,
		sendTimeout: sendTimeout,
	}
}

// Dispatch blocks until every recipient has a final outcome. Outcomes
// arrive in completion order, not input order; exactly one per recipient.
func (e *DispatchEngine) Dispatch(ctx context.Context, msg message.EventMessage, recipients []message.Recipient) []message.RecipientOutcome {
	if len(recipients) == 0 {
		return []message.RecipientOutcome{}
	}

	jobs := make(chan message.Recipient)
	results := make(chan message.RecipientOutcome)

	workers := e.workers
	if workers > len(recipients) {
		workers = len(recipients)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for recipient := range jobs {
				results <- e.sendOne(ctx, msg, recipient)
			}
		}()
	}

	go func() {
		for _, recipient := range recipients {
			jobs <- recipient
		}
		close(jobs)
		wg.Wait()
		close(results)
	}()

	outcomes := make([]message.RecipientOutcome, 0, len(recipients))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}
	return outcomes
}

// sendOne drives the retry loop for a single recipient. Transient
// failures (including per-attempt timeouts) are retried with exponential
// backoff up to the attempt bound; exhausting the bound degrades to a
// permanent failure. The final outcome is recorded exactly once.
func (e *DispatchEngine) sendOne(ctx context.Context, msg message.EventMessage, recipient message.Recipient) message.RecipientOutcome {
	var lastErr error
	backoff := e.backoff

	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		lastErr = e.attempt(ctx, msg, recipient)
		if lastErr == nil {
			return message.RecipientOutcome{Recipient: recipient, Success: true}
		}
		if !retryable(lastErr) {
			break
		}
		if attempt < e.maxAttempts {
			e.log.Debug(fmt.Sprintf("Transient failure for %s (attempt %d/%d): %v",
				recipient.Address, attempt, e.maxAttempts, lastErr))
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return message.RecipientOutcome{Recipient: recipient, Success: false, Reason: lastErr.Error()}
}

// attempt shields the engine from a panicking transport: a panic is a
// failed attempt, not a crashed dispatch.
func (e *DispatchEngine) attempt(ctx context.Context, msg message.EventMessage, recipient message.Recipient) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
		}
	}()
	sendCtx, cancel := context.WithTimeout(ctx, e.sendTimeout)
	defer cancel()
	return e.transport.Send(sendCtx, recipient, msg.Subject, msg.Content)
}

// retryable: transient transport failures and timeouts are worth another
// attempt, everything else is final immediately.
func retryable(err error) bool {
	if goerrors.Is(err, errors.ErrTransportTransient) {
		return true
	}
	if goerrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return false
}
