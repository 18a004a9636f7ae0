//go:generate go run go.uber.org/mock/mockgen -source=ticket.go -destination=../mocks/mock_ticket_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"herald/domain/message"
)

// ITicketRepository is the read-only view of the ticketing tables the
// resolver works from. Writes exist only for seeding and tests; the real
// rows are owned elsewhere.
type ITicketRepository interface {
	TicketsForEvent(eventID uuid.UUID) ([]message.Ticket, error)
	Holder(holderID uuid.UUID) (message.Holder, error)
	HoldsTicket(eventID, holderID uuid.UUID) (bool, error)
	PutTicket(eventID uuid.UUID, ticket message.Ticket) error
	PutHolder(holder message.Holder) error
}

type TicketRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewTicketRepository(db *badger.DB, log *slog.Logger) TicketRepository {
	return TicketRepository{db: db, log: log}
}

// Keys:
//
//	ticket:{event_id}:{ticket_id} -> JSON diskTicket
//	holder:{holder_id}            -> JSON diskHolder
type diskTicket struct {
	ID          uuid.UUID `json:"id"`
	HolderID    uuid.UUID `json:"holder_id"`
	Tier        string    `json:"tier"`
	PurchasedAt time.Time `json:"purchased_at"`
	CheckedIn   bool      `json:"checked_in"`
}

type diskHolder struct {
	ID       uuid.UUID `json:"id"`
	Address  string    `json:"address"`
	OptedOut bool      `json:"opted_out"`
}

func ticketKey(eventID, ticketID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("ticket:%s:%s", eventID, ticketID))
}

func holderKey(holderID uuid.UUID) []byte {
	return []byte(fmt.Sprintf("holder:%s", holderID))
}

func (r TicketRepository) TicketsForEvent(eventID uuid.UUID) ([]message.Ticket, error) {
	var tickets []message.Ticket
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("ticket:%s:", eventID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(v []byte) error {
				var dt diskTicket
				if err := json.Unmarshal(v, &dt); err != nil {
					return err
				}
				tickets = append(tickets, message.Ticket{
					ID:          dt.ID,
					HolderID:    dt.HolderID,
					Tier:        dt.Tier,
					PurchasedAt: dt.PurchasedAt,
					CheckedIn:   dt.CheckedIn,
				})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return tickets, err
}

func (r TicketRepository) Holder(holderID uuid.UUID) (message.Holder, error) {
	var holder message.Holder
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(holderKey(holderID))
		if err != nil {
			return err
		}
		return item.Value(func(v []byte) error {
			var dh diskHolder
			if err := json.Unmarshal(v, &dh); err != nil {
				return err
			}
			holder = message.Holder{ID: dh.ID, Address: dh.Address, OptedOut: dh.OptedOut}
			return nil
		})
	})
	return holder, err
}

func (r TicketRepository) HoldsTicket(eventID, holderID uuid.UUID) (bool, error) {
	tickets, err := r.TicketsForEvent(eventID)
	if err != nil {
		return false, err
	}
	for _, t := range tickets {
		if t.HolderID == holderID {
			return true, nil
		}
	}
	return false, nil
}

func (r TicketRepository) PutTicket(eventID uuid.UUID, ticket message.Ticket) error {
	bytes, err := json.Marshal(diskTicket{
		ID:          ticket.ID,
		HolderID:    ticket.HolderID,
		Tier:        ticket.Tier,
		PurchasedAt: ticket.PurchasedAt,
		CheckedIn:   ticket.CheckedIn,
	})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(ticketKey(eventID, ticket.ID), bytes)
	})
}

func (r TicketRepository) PutHolder(holder message.Holder) error {
	bytes, err := json.Marshal(diskHolder{ID: holder.ID, Address: holder.Address, OptedOut: holder.OptedOut})
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(holderKey(holder.ID), bytes)
	})
}
