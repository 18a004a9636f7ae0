//go:generate go run go.uber.org/mock/mockgen -source=resolver_service.go -destination=../mocks/mock_resolver_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"herald/domain/message"
	"herald/errors"
	"herald/repositories"
)

type IResolverService interface {
	Resolve(msg message.EventMessage) ([]message.Recipient, error)
}

// ResolverService turns a message into the concrete, deduplicated set of
// delivery targets. Resolution is read-only and reflects the ticket
// store at the moment of the call.
type ResolverService struct {
	tickets repositories.ITicketRepository
	log     *slog.Logger
}

func NewResolverService(tickets repositories.ITicketRepository, log *slog.Logger) IResolverService {
	return &ResolverService{tickets: tickets, log: log}
}

func (s *ResolverService) Resolve(msg message.EventMessage) ([]message.Recipient, error) {
	switch msg.Type {
	case message.TypeIndividual:
		return s.resolveIndividual(msg)
	case message.TypeBroadcast:
		return s.resolveByPredicates(msg.EventID, nil)
	case message.TypeFiltered:
		predicates, err := message.ParseFilters(msg.Filters)
		if err != nil {
			return nil, err
		}
		return s.resolveByPredicates(msg.EventID, predicates)
	}
	return nil, fmt.Errorf("%w: unknown message type %q", errors.ErrValidation, msg.Type)
}

// resolveIndividual reads the explicitly listed holder IDs out of the
// filter blob and verifies each one actually holds a ticket. Explicitly
// addressed holders are not subject to the opt-out flag.
func (s *ResolverService) resolveIndividual(msg message.EventMessage) ([]message.Recipient, error) {
	if msg.Filters == "" {
		return nil, errors.ErrEmptyRecipientSpec
	}
	predicates, err := message.ParseFilters(msg.Filters)
	if err != nil {
		return nil, err
	}

	var holderIDs []uuid.UUID
	for _, p := range predicates {
		if p.Attribute != message.AttrHolderID || p.Op != message.OpEq {
			return nil, fmt.Errorf("%w: individual messages only accept holder_id eq predicates", errors.ErrMalformedFilter)
		}
		id, err := uuid.Parse(p.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a holder id", errors.ErrMalformedFilter, p.Value)
		}
		holderIDs = append(holderIDs, id)
	}
	holderIDs = lo.Uniq(holderIDs)
	if len(holderIDs) == 0 {
		return nil, errors.ErrEmptyRecipientSpec
	}

	recipients := make([]message.Recipient, 0, len(holderIDs))
	for _, holderID := range holderIDs {
		holds, err := s.tickets.HoldsTicket(msg.EventID, holderID)
		if err != nil {
			return nil, err
		}
		if !holds {
			return nil, fmt.Errorf("%w: holder %s", errors.ErrInvalidRecipient, holderID)
		}
		holder, err := s.tickets.Holder(holderID)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, message.Recipient{HolderID: holder.ID, Address: holder.Address})
	}
	return recipients, nil
}

// resolveByPredicates covers BROADCAST (nil predicates) and FILTERED.
// A holder with several matching tickets appears once; opted-out holders
// are silently excluded, never errored.
func (s *ResolverService) resolveByPredicates(eventID uuid.UUID, predicates []message.Predicate) ([]message.Recipient, error) {
	tickets, err := s.tickets.TicketsForEvent(eventID)
	if err != nil {
		return nil, err
	}

	matching := lo.Filter(tickets, func(t message.Ticket, _ int) bool {
		return message.MatchesAll(predicates, t)
	})
	holderIDs := lo.Uniq(lo.Map(matching, func(t message.Ticket, _ int) uuid.UUID {
		return t.HolderID
	}))

	recipients := make([]message.Recipient, 0, len(holderIDs))
	for _, holderID := range holderIDs {
		holder, err := s.tickets.Holder(holderID)
		if err != nil {
			return nil, err
		}
		if holder.OptedOut {
			s.log.Debug(fmt.Sprintf("Holder %s opted out, excluded from resolution", holderID))
			continue
		}
		recipients = append(recipients, message.Recipient{HolderID: holder.ID, Address: holder.Address})
	}
	return recipients, nil
}
