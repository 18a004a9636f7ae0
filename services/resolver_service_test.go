package services

import (
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"herald/domain/message"
	"herald/errors"
	"herald/mocks"
)

func TestResolverService_Broadcast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTickets := mocks.NewMockITicketRepository(ctrl)
	svc := NewResolverService(mockTickets, slog.Default())

	eventID := uuid.New()

	t.Run("should deduplicate holders with several tickets", func(t *testing.T) {
		req := require.New(t)
		holderID := uuid.New()
		mockTickets.EXPECT().TicketsForEvent(eventID).Return([]message.Ticket{
			{ID: uuid.New(), HolderID: holderID, Tier: "GA"},
			{ID: uuid.New(), HolderID: holderID, Tier: "VIP"},
		}, nil)
		mockTickets.EXPECT().Holder(holderID).
			Return(message.Holder{ID: holderID, Address: "bob@example.com"}, nil)

		recipients, err := svc.Resolve(broadcastMessage(eventID))

		req.NoError(err)
		req.Len(recipients, 1)
		req.Equal(holderID, recipients[0].HolderID)
	})

	t.Run("should silently exclude opted-out holders", func(t *testing.T) {
		req := require.New(t)
		in, out := uuid.New(), uuid.New()
		mockTickets.EXPECT().TicketsForEvent(eventID).Return([]message.Ticket{
			{ID: uuid.New(), HolderID: in, Tier: "GA"},
			{ID: uuid.New(), HolderID: out, Tier: "GA"},
		}, nil)
		mockTickets.EXPECT().Holder(in).Return(message.Holder{ID: in, Address: "in@example.com"}, nil)
		mockTickets.EXPECT().Holder(out).Return(message.Holder{ID: out, Address: "out@example.com", OptedOut: true}, nil)

		recipients, err := svc.Resolve(broadcastMessage(eventID))

		req.NoError(err)
		req.Equal([]message.Recipient{{HolderID: in, Address: "in@example.com"}}, recipients)
	})

	t.Run("should resolve zero recipients for an event without holders", func(t *testing.T) {
		req := require.New(t)
		mockTickets.EXPECT().TicketsForEvent(eventID).Return(nil, nil)

		recipients, err := svc.Resolve(broadcastMessage(eventID))

		req.NoError(err)
		req.Empty(recipients)
	})
}

func TestResolverService_Filtered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTickets := mocks.NewMockITicketRepository(ctrl)
	svc := NewResolverService(mockTickets, slog.Default())

	eventID := uuid.New()

	t.Run("should keep only tickets matching the whole conjunction", func(t *testing.T) {
		req := require.New(t)
		vip, vipOut, ga := uuid.New(), uuid.New(), uuid.New()
		mockTickets.EXPECT().TicketsForEvent(eventID).Return([]message.Ticket{
			{ID: uuid.New(), HolderID: vip, Tier: "VIP", PurchasedAt: time.Now().UTC()},
			{ID: uuid.New(), HolderID: vipOut, Tier: "VIP", PurchasedAt: time.Now().UTC()},
			{ID: uuid.New(), HolderID: ga, Tier: "GA", PurchasedAt: time.Now().UTC()},
		}, nil)
		mockTickets.EXPECT().Holder(vip).Return(message.Holder{ID: vip, Address: "vip@example.com"}, nil)
		mockTickets.EXPECT().Holder(vipOut).Return(message.Holder{ID: vipOut, Address: "vip-out@example.com", OptedOut: true}, nil)

		msg := broadcastMessage(eventID)
		msg.Type = message.TypeFiltered
		msg.Filters = `[{"attribute":"tier","op":"eq","value":"VIP"}]`

		recipients, err := svc.Resolve(msg)

		req.NoError(err)
		req.Equal([]message.Recipient{{HolderID: vip, Address: "vip@example.com"}}, recipients)
	})

	t.Run("should fail on a malformed filter blob", func(t *testing.T) {
		req := require.New(t)
		msg := broadcastMessage(eventID)
		msg.Type = message.TypeFiltered
		msg.Filters = `{"not": "a list"}`

		_, err := svc.Resolve(msg)

		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should accept an empty match as zero recipients", func(t *testing.T) {
		req := require.New(t)
		mockTickets.EXPECT().TicketsForEvent(eventID).Return([]message.Ticket{
			{ID: uuid.New(), HolderID: uuid.New(), Tier: "GA"},
		}, nil)

		msg := broadcastMessage(eventID)
		msg.Type = message.TypeFiltered
		msg.Filters = `[{"attribute":"tier","op":"eq","value":"VIP"}]`

		recipients, err := svc.Resolve(msg)

		req.NoError(err)
		req.Empty(recipients)
	})
}

func TestResolverService_Individual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTickets := mocks.NewMockITicketRepository(ctrl)
	svc := NewResolverService(mockTickets, slog.Default())

	eventID := uuid.New()

	t.Run("should resolve explicitly listed ticket holders", func(t *testing.T) {
		req := require.New(t)
		holderID := uuid.New()
		mockTickets.EXPECT().HoldsTicket(eventID, holderID).Return(true, nil)
		mockTickets.EXPECT().Holder(holderID).Return(message.Holder{ID: holderID, Address: "carl@example.com"}, nil)

		msg := broadcastMessage(eventID)
		msg.Type = message.TypeIndividual
		msg.Filters = holderFilter(holderID)

		recipients, err := svc.Resolve(msg)

		req.NoError(err)
		req.Equal([]message.Recipient{{HolderID: holderID, Address: "carl@example.com"}}, recipients)
	})

	t.Run("should fail when a listed holder has no ticket", func(t *testing.T) {
		req := require.New(t)
		holderID := uuid.New()
		mockTickets.EXPECT().HoldsTicket(eventID, holderID).Return(false, nil)

		msg := broadcastMessage(eventID)
		msg.Type = message.TypeIndividual
		msg.Filters = holderFilter(holderID)

		_, err := svc.Resolve(msg)

		req.ErrorIs(err, errors.ErrInvalidRecipient)
	})

	t.Run("should fail when no recipients are listed", func(t *testing.T) {
		req := require.New(t)
		msg := broadcastMessage(eventID)
		msg.Type = message.TypeIndividual
		msg.Filters = ""

		_, err := svc.Resolve(msg)

		req.ErrorIs(err, errors.ErrEmptyRecipientSpec)
	})

	t.Run("should reject predicates other than holder_id", func(t *testing.T) {
		req := require.New(t)
		msg := broadcastMessage(eventID)
		msg.Type = message.TypeIndividual
		msg.Filters = `[{"attribute":"tier","op":"eq","value":"VIP"}]`

		_, err := svc.Resolve(msg)

		req.ErrorIs(err, errors.ErrMalformedFilter)
	})

	t.Run("should send once to a holder listed twice", func(t *testing.T) {
		req := require.New(t)
		holderID := uuid.New()
		mockTickets.EXPECT().HoldsTicket(eventID, holderID).Return(true, nil).Times(1)
		mockTickets.EXPECT().Holder(holderID).Return(message.Holder{ID: holderID, Address: "carl@example.com"}, nil).Times(1)

		msg := broadcastMessage(eventID)
		msg.Type = message.TypeIndividual
		msg.Filters = fmt.Sprintf(
			`[{"attribute":"holder_id","op":"eq","value":"%s"},{"attribute":"holder_id","op":"eq","value":"%s"}]`,
			holderID, holderID)

		recipients, err := svc.Resolve(msg)

		req.NoError(err)
		req.Len(recipients, 1)
	})
}

func TestResolverService_Determinism(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTickets := mocks.NewMockITicketRepository(ctrl)
	svc := NewResolverService(mockTickets, slog.Default())

	req := require.New(t)
	eventID := uuid.New()
	holders := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	tickets := lo.Map(holders, func(id uuid.UUID, i int) message.Ticket {
		return message.Ticket{ID: uuid.New(), HolderID: id, Tier: "GA"}
	})

	mockTickets.EXPECT().TicketsForEvent(eventID).Return(tickets, nil).Times(2)
	for _, id := range holders {
		mockTickets.EXPECT().Holder(id).
			Return(message.Holder{ID: id, Address: id.String() + "@example.com"}, nil).
			Times(2)
	}

	first, err := svc.Resolve(broadcastMessage(eventID))
	req.NoError(err)
	second, err := svc.Resolve(broadcastMessage(eventID))
	req.NoError(err)
	req.ElementsMatch(first, second)
}

func broadcastMessage(eventID uuid.UUID) message.EventMessage {
	return message.EventMessage{
		ID:      uuid.New(),
		EventID: eventID,
		Subject: "Venue update",
		Content: "The doors moved.",
		Type:    message.TypeBroadcast,
		State:   message.StateDispatching,
	}
}

func holderFilter(holderID uuid.UUID) string {
	return fmt.Sprintf(`[{"attribute":"holder_id","op":"eq","value":"%s"}]`, holderID)
}
