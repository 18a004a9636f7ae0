package message

import (
	"time"

	"github.com/google/uuid"
)

// MessageType is a closed set. Resolution behaviour is dispatched on it;
// new types require touching the resolver, on purpose.
type MessageType string

const (
	TypeIndividual MessageType = "INDIVIDUAL"
	TypeBroadcast  MessageType = "BROADCAST"
	TypeFiltered   MessageType = "FILTERED"
)

func (t MessageType) Valid() bool {
	switch t {
	case TypeIndividual, TypeBroadcast, TypeFiltered:
		return true
	}
	return false
}

type MessageState string

const (
	StateDraft       MessageState = "DRAFT"
	StateDispatching MessageState = "DISPATCHING"
	StateSent        MessageState = "SENT"
)

const MaxSubjectLength = 200

// EventMessage is the aggregate root of the messaging subsystem.
// Subject, Content, Type and Filters are immutable once the message
// leaves DRAFT. Counters only ever change through a single delivery
// commit; they are never incremented per recipient.
type EventMessage struct {
	ID          uuid.UUID    `json:"id"`
	EventID     uuid.UUID    `json:"event_id"`
	OrganizerID uuid.UUID    `json:"organizer_id"`
	Subject     string       `json:"subject"`
	Content     string       `json:"content"`
	Type        MessageType  `json:"message_type"`
	Filters     string       `json:"recipient_filters,omitempty"`
	State       MessageState `json:"state"`

	TotalRecipients int `json:"total_recipients"`
	SuccessfulSends int `json:"successful_sends"`
	FailedSends     int `json:"failed_sends"`

	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DeliveryCounts is the aggregate result of one dispatch.
type DeliveryCounts struct {
	Total      int
	Successful int
	Failed     int
}

func (c DeliveryCounts) Complete() bool {
	return c.Successful+c.Failed == c.Total
}

// Counts returns the counters currently visible on the record.
func (m EventMessage) Counts() DeliveryCounts {
	return DeliveryCounts{
		Total:      m.TotalRecipients,
		Successful: m.SuccessfulSends,
		Failed:     m.FailedSends,
	}
}

func (m EventMessage) Terminal() bool {
	return m.State == StateSent
}
