//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	herrors "herald/errors"
)

// Event is the slice of the events table this subsystem needs: just
// enough to check ownership. Everything else about events belongs to the
// surrounding CRUD layer.
type Event struct {
	ID          uuid.UUID `json:"id"`
	OrganizerID uuid.UUID `json:"organizer_id"`
	Name        string    `json:"name"`
}

type IEventRepository interface {
	Get(id uuid.UUID) (Event, error)
	Put(event Event) error
}

type EventRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewEventRepository(db *badger.DB, log *slog.Logger) EventRepository {
	return EventRepository{db: db, log: log}
}

func eventKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("event:%s", id))
}

func (r EventRepository) Get(id uuid.UUID) (Event, error) {
	var event Event
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(eventKey(id))
		if err == badger.ErrKeyNotFound {
			return fmt.Errorf("%w: %s", herrors.ErrEventNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			return json.Unmarshal(v, &event)
		})
	})
	return event, err
}

func (r EventRepository) Put(event Event) error {
	bytes, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(eventKey(event.ID), bytes)
	})
}
