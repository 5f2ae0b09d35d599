package core

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationCanceledEventType is the event type identifier.
const RegistrationCanceledEventType = "RegistrationCanceled"

// RegistrationCanceled deletes the Registration of a user for an Event and gives back its tickets.
// TicketCount is the ticket count of the whole Registration at cancellation time.
type RegistrationCanceled struct {
	EventID     EventIDString
	UserID      UserIDString
	TicketCount int
	OccurredAt  OccurredAtTS
}

// BuildRegistrationCanceled creates a new RegistrationCanceled event.
func BuildRegistrationCanceled(eventID uuid.UUID, userID uuid.UUID, ticketCount int, occurredAt time.Time) RegistrationCanceled {
	return RegistrationCanceled{
		EventID:     eventID.String(),
		UserID:      userID.String(),
		TicketCount: ticketCount,
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e RegistrationCanceled) IsEventType() string {
	return RegistrationCanceledEventType
}

func (e RegistrationCanceled) HasOccurredAt() time.Time {
	return e.OccurredAt
}
