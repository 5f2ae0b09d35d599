package core

import (
	"time"

	"github.com/google/uuid"
)

// EventCreatedEventType is the event type identifier.
const EventCreatedEventType = "EventCreated"

// EventCreated is the creation of an Event by a user. Attendees start at zero.
type EventCreated struct {
	EventID     EventIDString
	Title       string
	Date        string
	Location    string
	Category    string
	Description string
	Capacity    int
	Image       string
	Organizer   string
	CreatedBy   UserIDString
	OccurredAt  OccurredAtTS
}

// EventDraft is what a user fills in to create an Event.
type EventDraft struct {
	Title       string
	Date        string
	Location    string
	Category    string
	Description string
	Capacity    int
	Image       string
}

// BuildEventCreated creates a new EventCreated event. An empty image becomes DefaultEventImage.
func BuildEventCreated(
	eventID uuid.UUID,
	draft EventDraft,
	organizer string,
	createdBy uuid.UUID,
	occurredAt time.Time,
) EventCreated {
	image := draft.Image
	if image == "" {
		image = DefaultEventImage
	}

	return EventCreated{
		EventID:     eventID.String(),
		Title:       draft.Title,
		Date:        draft.Date,
		Location:    draft.Location,
		Category:    draft.Category,
		Description: draft.Description,
		Capacity:    draft.Capacity,
		Image:       image,
		Organizer:   organizer,
		CreatedBy:   createdBy.String(),
		OccurredAt:  ToOccurredAt(occurredAt),
	}
}

func (e EventCreated) IsEventType() string {
	return EventCreatedEventType
}

func (e EventCreated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
