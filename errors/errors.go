package errors

import "fmt"

var (
	ErrNotOwner           = fmt.Errorf("organizer does not own this event")
	ErrValidation         = fmt.Errorf("message validation failed")
	ErrInvalidRecipient   = fmt.Errorf("recipient holds no ticket for this event")
	ErrMalformedFilter    = fmt.Errorf("recipient filters cannot be parsed")
	ErrEmptyRecipientSpec = fmt.Errorf("individual message lists no recipients")
	ErrAlreadySent        = fmt.Errorf("message already left draft state")
	ErrMessageNotFound    = fmt.Errorf("message not found")
	ErrEventNotFound      = fmt.Errorf("event not found")

	// Transport failure classes. A transport wraps one of these so the
	// dispatch engine can decide whether a retry is worth anything.
	ErrTransportTransient = fmt.Errorf("transient transport failure")
	ErrTransportPermanent = fmt.Errorf("permanent transport failure")

	ErrWorkerPanic = fmt.Errorf("worker panic")
)
