package core

import (
	"time"
)

// RegistrationState is the projection of the Registration of one user for one Event.
type RegistrationState struct {
	EventID            EventIDString
	UserID             UserIDString
	EventTitle         string
	TicketCount        int
	RegistrationDate   time.Time
	FirstName          string
	LastName           string
	Email              string
	Phone              string
	DietaryPreferences string
	SpecialRequests    string

	Exists bool
}

// Apply folds one event into the state of the (EventID, UserID) pair it was started with.
//
// The first TicketsRegistered sets the contact details and the registration date, later ones
// only add their ticket count. RegistrationCanceled removes the Registration.
func (s RegistrationState) Apply(event DomainEvent) RegistrationState {
	switch e := event.(type) {
	case TicketsRegistered:
		if e.EventID != s.EventID || e.UserID != s.UserID {
			return s
		}

		if s.Exists {
			s.TicketCount += e.TicketCount
			return s
		}

		return RegistrationState{
			EventID:            e.EventID,
			UserID:             e.UserID,
			EventTitle:         e.EventTitle,
			TicketCount:        e.TicketCount,
			RegistrationDate:   e.OccurredAt,
			FirstName:          e.FirstName,
			LastName:           e.LastName,
			Email:              e.Email,
			Phone:              e.Phone,
			DietaryPreferences: e.DietaryPreferences,
			SpecialRequests:    e.SpecialRequests,
			Exists:             true,
		}

	case RegistrationCanceled:
		if e.EventID == s.EventID && e.UserID == s.UserID {
			return RegistrationState{EventID: s.EventID, UserID: s.UserID}
		}
	}

	return s
}

// ProjectRegistration replays the history of the (eventID, userID) pair.
func ProjectRegistration(history DomainEvents, eventID EventIDString, userID UserIDString) RegistrationState {
	state := RegistrationState{EventID: eventID, UserID: userID}

	for _, event := range history {
		state = state.Apply(event)
	}

	return state
}
