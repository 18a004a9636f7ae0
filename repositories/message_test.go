package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"herald/domain/message"
	herrors "herald/errors"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func draftMessage(eventID uuid.UUID) message.EventMessage {
	now := time.Now().UTC()
	return message.EventMessage{
		ID:          uuid.New(),
		EventID:     eventID,
		OrganizerID: uuid.New(),
		Subject:     "Doors open at 7",
		Content:     "See you there.",
		Type:        message.TypeBroadcast,
		State:       message.StateDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func Test_Create_And_Get_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))

	fetched, err := repository.Get(msg.ID)
	req.NoError(err)
	req.Equal(msg.ID, fetched.ID)
	req.Equal(message.StateDraft, fetched.State)
	req.Zero(fetched.TotalRecipients)
	req.Nil(fetched.SentAt)
}

func Test_Get_Unknown_Message(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.Get(uuid.New())
	req.ErrorIs(err, herrors.ErrMessageNotFound)
}

func Test_List_Messages_For_Event(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	eventID := uuid.New()
	req.NoError(repository.Create(draftMessage(eventID)))
	req.NoError(repository.Create(draftMessage(eventID)))
	req.NoError(repository.Create(draftMessage(uuid.New())))

	messages, err := repository.ListForEvent(eventID)
	req.NoError(err)
	req.Len(messages, 2)
}

func Test_Claim_Transitions_Draft_To_Dispatching(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))

	claimed, err := repository.ClaimDispatching(msg.ID)
	req.NoError(err)
	req.Equal(message.StateDispatching, claimed.State)

	// A second claim must observe the non-DRAFT state
	_, err = repository.ClaimDispatching(msg.ID)
	req.ErrorIs(err, herrors.ErrAlreadySent)
}

func Test_Commit_Delivery_Sets_Counters_And_Terminal_State(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))
	_, err := repository.ClaimDispatching(msg.ID)
	req.NoError(err)

	sentAt := time.Now().UTC()
	committed, err := repository.CommitDelivery(msg.ID, message.DeliveryCounts{Total: 5, Successful: 3, Failed: 2}, sentAt)
	req.NoError(err)
	req.Equal(message.StateSent, committed.State)
	req.Equal(5, committed.TotalRecipients)
	req.Equal(3, committed.SuccessfulSends)
	req.Equal(2, committed.FailedSends)
	req.NotNil(committed.SentAt)
	req.True(committed.SentAt.Equal(sentAt))
}

func Test_Commit_Delivery_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))
	_, err := repository.ClaimDispatching(msg.ID)
	req.NoError(err)

	first, err := repository.CommitDelivery(msg.ID, message.DeliveryCounts{Total: 2, Successful: 1, Failed: 1}, time.Now().UTC())
	req.NoError(err)

	// Same commit again: counters and sent_at must not move
	second, err := repository.CommitDelivery(msg.ID, message.DeliveryCounts{Total: 2, Successful: 1, Failed: 1}, time.Now().UTC().Add(time.Hour))
	req.NoError(err)
	req.Equal(first.SuccessfulSends, second.SuccessfulSends)
	req.Equal(first.FailedSends, second.FailedSends)
	req.True(first.SentAt.Equal(*second.SentAt))
}

func Test_Commit_Delivery_Rejects_Inconsistent_Counts(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	_, err := repository.CommitDelivery(uuid.New(), message.DeliveryCounts{Total: 3, Successful: 1, Failed: 1}, time.Now().UTC())
	req.Error(err)
}

func Test_Release_To_Draft(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))
	_, err := repository.ClaimDispatching(msg.ID)
	req.NoError(err)

	req.NoError(repository.ReleaseToDraft(msg.ID))

	fetched, err := repository.Get(msg.ID)
	req.NoError(err)
	req.Equal(message.StateDraft, fetched.State)

	// Release on a DRAFT message is a no-op, not an error
	req.NoError(repository.ReleaseToDraft(msg.ID))
}

func Test_List_Dispatching_Respects_Cutoff(t *testing.T) {
	req := require.New(t)
	repository := NewMessageRepository(openTestDB(t), slog.Default())

	msg := draftMessage(uuid.New())
	req.NoError(repository.Create(msg))
	_, err := repository.ClaimDispatching(msg.ID)
	req.NoError(err)

	// Freshly claimed: not stuck yet
	stuck, err := repository.ListDispatching(time.Now().UTC().Add(-time.Minute))
	req.NoError(err)
	req.Empty(stuck)

	// With a future cutoff the claim counts as stale
	stuck, err = repository.ListDispatching(time.Now().UTC().Add(time.Minute))
	req.NoError(err)
	req.Equal([]uuid.UUID{msg.ID}, stuck)
}
