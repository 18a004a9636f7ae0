package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"herald/domain/message"
	"herald/errors"
	"herald/repositories"
)

var validate = validator.New()

type CreateMessageRequest struct {
	EventID     uuid.UUID           `validate:"required"`
	OrganizerID uuid.UUID           `validate:"required"`
	Subject     string              `validate:"required,max=200"`
	Content     string              `validate:"required"`
	Type        message.MessageType `validate:"required"`
	Filters     string
}

type IMessageService interface {
	Create(req CreateMessageRequest) (message.EventMessage, error)
	Send(ctx context.Context, messageID uuid.UUID) (message.DeliveryCounts, error)
	Get(messageID uuid.UUID) (message.EventMessage, error)
	ListForEvent(eventID uuid.UUID) ([]message.EventMessage, error)
}

// MessageService owns the DRAFT -> DISPATCHING -> SENT lifecycle and is
// the only entry point the surrounding CRUD layer talks to.
type MessageService struct {
	messages   repositories.IMessageRepository
	events     repositories.IEventRepository
	resolver   IResolverService
	dispatcher IDispatchEngine
	tracker    IDeliveryTracker
	log        *slog.Logger
}

func NewMessageService(
	messages repositories.IMessageRepository,
	events repositories.IEventRepository,
	resolver IResolverService,
	dispatcher IDispatchEngine,
	tracker IDeliveryTracker,
	log *slog.Logger) IMessageService {
	return &MessageService{
		messages:   messages,
		events:     events,
		resolver:   resolver,
		dispatcher: dispatcher,
		tracker:    tracker,
		log:        log,
	}
}

func (s *MessageService) Create(req CreateMessageRequest) (message.EventMessage, error) {
	// 1. Field-level constraints before touching any store
	if err := validate.Struct(req); err != nil {
		return message.EventMessage{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	if !req.Type.Valid() {
		return message.EventMessage{}, fmt.Errorf("%w: unknown message type %q", errors.ErrValidation, req.Type)
	}

	// 2. Type-specific filter presence. FILTERED blobs are parsed here so
	// a malformed filter is rejected at creation, not first noticed at send.
	switch req.Type {
	case message.TypeFiltered:
		if _, err := message.ParseFilters(req.Filters); err != nil {
			return message.EventMessage{}, fmt.Errorf("%w: %v", errors.ErrValidation, err)
		}
	case message.TypeIndividual:
		if req.Filters == "" {
			return message.EventMessage{}, fmt.Errorf("%w: %v", errors.ErrValidation, errors.ErrEmptyRecipientSpec)
		}
	}

	// 3. Ownership is checked once, at creation time
	event, err := s.events.Get(req.EventID)
	if err != nil {
		return message.EventMessage{}, err
	}
	if event.OrganizerID != req.OrganizerID {
		return message.EventMessage{}, fmt.Errorf("%w: event %s", errors.ErrNotOwner, req.EventID)
	}

	// 4. Persist in DRAFT with untouched counters
	now := time.Now().UTC()
	msg := message.EventMessage{
		ID:          uuid.New(),
		EventID:     req.EventID,
		OrganizerID: req.OrganizerID,
		Subject:     req.Subject,
		Content:     req.Content,
		Type:        req.Type,
		Filters:     req.Filters,
		State:       message.StateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.messages.Create(msg); err != nil {
		return message.EventMessage{}, err
	}
	return msg, nil
}

// Send claims the message, resolves recipients, dispatches and commits
// the aggregate result. The claim is the concurrency guard: a second
// concurrent Send observes a non-DRAFT state and fails with
// ErrAlreadySent. A resolution failure releases the claim so the caller
// may retry; once dispatch has started, Send runs to completion.
func (s *MessageService) Send(ctx context.Context, messageID uuid.UUID) (message.DeliveryCounts, error) {
	// 1. Atomic DRAFT -> DISPATCHING claim
	claimed, err := s.messages.ClaimDispatching(messageID)
	if err != nil {
		return message.DeliveryCounts{}, err
	}

	// 2. Resolve; failure here predates any transport call, so the
	// message rolls back to DRAFT for a clean retry
	recipients, err := s.resolver.Resolve(claimed)
	if err != nil {
		if releaseErr := s.messages.ReleaseToDraft(messageID); releaseErr != nil {
			s.log.Error(fmt.Sprintf("Failed to release message %s back to draft: %v", messageID, releaseErr))
		}
		return message.DeliveryCounts{}, err
	}

	// 3. Dispatch; partial failure is data, never an error
	outcomes := s.dispatcher.Dispatch(ctx, claimed, recipients)

	// 4. Commit counters and terminal state in one write. An empty
	// recipient set still terminates here with all counters at zero.
	return s.tracker.Record(messageID, outcomes)
}

func (s *MessageService) Get(messageID uuid.UUID) (message.EventMessage, error) {
	return s.messages.Get(messageID)
}

func (s *MessageService) ListForEvent(eventID uuid.UUID) ([]message.EventMessage, error) {
	return s.messages.ListForEvent(eventID)
}
