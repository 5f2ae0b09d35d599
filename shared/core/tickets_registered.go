package core

import (
	"time"

	"github.com/google/uuid"
)

// TicketsRegisteredEventType is the event type identifier.
const TicketsRegisteredEventType = "TicketsRegistered"

// TicketsRegistered claims TicketCount spots of an Event for a user.
//
// The first TicketsRegistered for an (EventID, UserID) pair creates the Registration, later ones
// only add their TicketCount. The same event increments the attendee counter of the Event.
type TicketsRegistered struct {
	EventID            EventIDString
	UserID             UserIDString
	EventTitle         string
	TicketCount        int
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DietaryPreferences string
	SpecialRequests    string
	OccurredAt         OccurredAtTS
}

// ContactDetails are entered on the registration form.
type ContactDetails struct {
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DietaryPreferences string
	SpecialRequests    string
}

// BuildTicketsRegistered creates a new TicketsRegistered event.
func BuildTicketsRegistered(
	eventID uuid.UUID,
	userID uuid.UUID,
	eventTitle string,
	ticketCount int,
	contact ContactDetails,
	occurredAt time.Time,
) TicketsRegistered {
	return TicketsRegistered{
		EventID:            eventID.String(),
		UserID:             userID.String(),
		EventTitle:         eventTitle,
		TicketCount:        ticketCount,
		FirstName:          contact.FirstName,
		LastName:           contact.LastName,
		Email:              contact.Email,
		Phone:              contact.Phone,
		DietaryPreferences: contact.DietaryPreferences,
		SpecialRequests:    contact.SpecialRequests,
		OccurredAt:         ToOccurredAt(occurredAt),
	}
}

func (e TicketsRegistered) IsEventType() string {
	return TicketsRegisteredEventType
}

func (e TicketsRegistered) HasOccurredAt() time.Time {
	return e.OccurredAt
}
