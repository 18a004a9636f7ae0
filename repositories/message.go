//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"herald/domain/message"
	herrors "herald/errors"
)

type IMessageRepository interface {
	Create(msg message.EventMessage) error
	Get(id uuid.UUID) (message.EventMessage, error)
	ListForEvent(eventID uuid.UUID) ([]message.EventMessage, error)
	ClaimDispatching(id uuid.UUID) (message.EventMessage, error)
	CommitDelivery(id uuid.UUID, counts message.DeliveryCounts, at time.Time) (message.EventMessage, error)
	ReleaseToDraft(id uuid.UUID) error
	ListDispatching(cutoff time.Time) ([]uuid.UUID, error)
}

// claimAttempts bounds the retry loop around badger write conflicts.
// A conflict means another writer touched the same record; re-reading
// once is enough to observe its outcome.
const claimAttempts = 3

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

// Keys:
//
//	msg:{message_id}                     -> JSON EventMessage (primary)
//	idx:event:{event_id}:{message_id}    -> message_id (secondary, for event listing)
func messageKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("msg:%s", id))
}

func eventIndexKey(eventID, messageID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("idx:event:%s:%s", eventID, messageID))
}

func (r MessageRepository) Create(msg message.EventMessage) error {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(messageKey(msg.ID), bytes); err != nil {
			return err
		}
		return txn.Set(eventIndexKey(msg.EventID, msg.ID), []byte(msg.ID.String()))
	})
}

func (r MessageRepository) Get(id uuid.UUID) (message.EventMessage, error) {
	var msg message.EventMessage
	err := r.db.View(func(txn *badger.Txn) error {
		found, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		msg = found
		return nil
	})
	return msg, err
}

func (r MessageRepository) ListForEvent(eventID uuid.UUID) ([]message.EventMessage, error) {
	var messages []message.EventMessage
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("idx:event:%s:", eventID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rawID []byte
			if err := it.Item().Value(func(v []byte) error {
				rawID = append([]byte(nil), v...)
				return nil
			}); err != nil {
				return err
			}
			id, err := uuid.Parse(string(rawID))
			if err != nil {
				return err
			}
			msg, err := readMessage(txn, id)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
		}
		return nil
	})
	return messages, err
}

// ClaimDispatching is the single-writer lock of the send path: the
// DRAFT -> DISPATCHING transition happens inside one transaction, so of
// two concurrent claims exactly one survives. The loser either hits a
// badger conflict (and re-reads DISPATCHING on retry) or reads the
// non-DRAFT state directly; both surface ErrAlreadySent.
func (r MessageRepository) ClaimDispatching(id uuid.UUID) (message.EventMessage, error) {
	var claimed message.EventMessage
	err := r.withConflictRetry(func(txn *badger.Txn) error {
		msg, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		if msg.State != message.StateDraft {
			return fmt.Errorf("%w: state is %s", herrors.ErrAlreadySent, msg.State)
		}
		msg.State = message.StateDispatching
		msg.UpdatedAt = time.Now().UTC()
		claimed = msg
		return writeMessage(txn, msg)
	})
	if err != nil {
		return message.EventMessage{}, err
	}
	return claimed, nil
}

// CommitDelivery moves the message to SENT and writes counters and
// sent_at in the same transaction. Committing an already-SENT message is
// a no-op returning the stored record, which makes delivery recording
// idempotent.
func (r MessageRepository) CommitDelivery(id uuid.UUID, counts message.DeliveryCounts, at time.Time) (message.EventMessage, error) {
	if !counts.Complete() {
		return message.EventMessage{}, fmt.Errorf("delivery counts do not add up: %d + %d != %d",
			counts.Successful, counts.Failed, counts.Total)
	}
	var committed message.EventMessage
	err := r.withConflictRetry(func(txn *badger.Txn) error {
		msg, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		if msg.State == message.StateSent {
			r.log.Debug(fmt.Sprintf("Message %s already sent, keeping stored counters", id))
			committed = msg
			return nil
		}
		now := at.UTC()
		msg.State = message.StateSent
		msg.TotalRecipients = counts.Total
		msg.SuccessfulSends = counts.Successful
		msg.FailedSends = counts.Failed
		msg.SentAt = &now
		msg.UpdatedAt = now
		committed = msg
		return writeMessage(txn, msg)
	})
	if err != nil {
		return message.EventMessage{}, err
	}
	return committed, nil
}

// ReleaseToDraft undoes a claim after a pre-dispatch failure so the
// caller may retry the send. Counters stay untouched.
func (r MessageRepository) ReleaseToDraft(id uuid.UUID) error {
	return r.withConflictRetry(func(txn *badger.Txn) error {
		msg, err := readMessage(txn, id)
		if err != nil {
			return err
		}
		if msg.State != message.StateDispatching {
			return nil
		}
		msg.State = message.StateDraft
		msg.UpdatedAt = time.Now().UTC()
		return writeMessage(txn, msg)
	})
}

// ListDispatching scans for messages stuck mid-dispatch, typically after
// an abrupt shutdown. The cutoff keeps an actively dispatching message
// (recent updated_at) out of the result; only records that have not
// moved since before the cutoff count as stuck.
func (r MessageRepository) ListDispatching(cutoff time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte("msg:")
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var msg message.EventMessage
				if err := json.Unmarshal(v, &msg); err != nil {
					return err
				}
				if msg.State == message.StateDispatching && msg.UpdatedAt.Before(cutoff) {
					ids = append(ids, msg.ID)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return ids, err
}

func (r MessageRepository) withConflictRetry(fn func(txn *badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < claimAttempts; attempt++ {
		err = r.db.Update(fn)
		if err != badger.ErrConflict {
			return err
		}
		r.log.Debug("Write conflict on message record, retrying")
	}
	return err
}

func readMessage(txn *badger.Txn, id uuid.UUID) (message.EventMessage, error) {
	item, err := txn.Get(messageKey(id))
	if err == badger.ErrKeyNotFound {
		return message.EventMessage{}, fmt.Errorf("%w: %s", herrors.ErrMessageNotFound, id)
	}
	if err != nil {
		return message.EventMessage{}, err
	}
	var msg message.EventMessage
	err = item.Value(func(v []byte) error {
		return json.Unmarshal(v, &msg)
	})
	return msg, err
}

func writeMessage(txn *badger.Txn, msg message.EventMessage) error {
	bytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return txn.Set(messageKey(msg.ID), bytes)
}
