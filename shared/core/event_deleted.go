package core

import (
	"time"

	"github.com/google/uuid"
)

// EventDeletedEventType is the event type identifier.
const EventDeletedEventType = "EventDeleted"

// EventDeleted removes an Event from the catalog. Existing registrations can still be canceled.
type EventDeleted struct {
	EventID    EventIDString
	DeletedBy  UserIDString
	OccurredAt OccurredAtTS
}

// BuildEventDeleted creates a new EventDeleted event.
func BuildEventDeleted(eventID uuid.UUID, deletedBy uuid.UUID, occurredAt time.Time) EventDeleted {
	return EventDeleted{
		EventID:    eventID.String(),
		DeletedBy:  deletedBy.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e EventDeleted) IsEventType() string {
	return EventDeletedEventType
}

func (e EventDeleted) HasOccurredAt() time.Time {
	return e.OccurredAt
}
