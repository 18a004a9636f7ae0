package message

import (
	"time"

	"github.com/google/uuid"
)

// Ticket carries the attributes the filter evaluator can see.
// It is a read-model projection of the ticket store, not the store's
// own row shape.
type Ticket struct {
	ID          uuid.UUID
	HolderID    uuid.UUID
	Tier        string
	PurchasedAt time.Time
	CheckedIn   bool
}

// Holder is a ticket holder as the messaging subsystem sees one:
// an identity, somewhere to deliver to, and the opt-out flag.
type Holder struct {
	ID       uuid.UUID
	Address  string
	OptedOut bool
}

// Recipient is one resolved delivery target. A person holding several
// tickets to the same event resolves to a single Recipient.
type Recipient struct {
	HolderID uuid.UUID
	Address  string
}

// RecipientOutcome exists only for the duration of one dispatch.
// Its aggregation into the message counters is the only durable effect;
// no per-recipient row is ever written.
type RecipientOutcome struct {
	Recipient Recipient
	Success   bool
	Reason    string
}
