package core

import (
	"time"

	"github.com/google/uuid"
)

// EventAttendeesAdjustedEventType is the event type identifier.
const EventAttendeesAdjustedEventType = "EventAttendeesAdjusted"

// EventAttendeesAdjusted is a manual change of the attendee counter that is not backed by a
// registration. Delta is already clamped, so applying it keeps 0 <= attendees <= capacity.
type EventAttendeesAdjusted struct {
	EventID    EventIDString
	Delta      int
	OccurredAt OccurredAtTS
}

// BuildEventAttendeesAdjusted creates a new EventAttendeesAdjusted event.
func BuildEventAttendeesAdjusted(eventID uuid.UUID, delta int, occurredAt time.Time) EventAttendeesAdjusted {
	return EventAttendeesAdjusted{
		EventID:    eventID.String(),
		Delta:      delta,
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e EventAttendeesAdjusted) IsEventType() string {
	return EventAttendeesAdjustedEventType
}

func (e EventAttendeesAdjusted) HasOccurredAt() time.Time {
	return e.OccurredAt
}
