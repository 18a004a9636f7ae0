//go:generate go run go.uber.org/mock/mockgen -source=delivery_tracker.go -destination=../mocks/mock_delivery_tracker.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"herald/domain/message"
	"herald/repositories"
)

type IDeliveryTracker interface {
	Record(messageID uuid.UUID, outcomes []message.RecipientOutcome) (message.DeliveryCounts, error)
}

// DeliveryTracker folds per-recipient outcomes into the message counters.
// Aggregation is commutative, so outcome order never matters, and the
// commit is one transaction: observers see either the pre-send zeros or
// the final counters, nothing in between.
type DeliveryTracker struct {
	messages repositories.IMessageRepository
	log      *slog.Logger
	now      func() time.Time
}

func NewDeliveryTracker(messages repositories.IMessageRepository, log *slog.Logger) IDeliveryTracker {
	return &DeliveryTracker{messages: messages, log: log, now: time.Now}
}

// Record is idempotent per message: a second call on an already-SENT
// message returns the stored counters untouched. Zero outcomes is a
// valid, immediately terminal send.
func (t *DeliveryTracker) Record(messageID uuid.UUID, outcomes []message.RecipientOutcome) (message.DeliveryCounts, error) {
	successful := lo.CountBy(outcomes, func(o message.RecipientOutcome) bool {
		return o.Success
	})
	counts := message.DeliveryCounts{
		Total:      len(outcomes),
		Successful: successful,
		Failed:     len(outcomes) - successful,
	}

	committed, err := t.messages.CommitDelivery(messageID, counts, t.now())
	if err != nil {
		return message.DeliveryCounts{}, err
	}
	if counts.Failed > 0 {
		t.log.Info(fmt.Sprintf("Message %s sent with %d/%d failures", messageID, counts.Failed, counts.Total))
	}
	return committed.Counts(), nil
}
