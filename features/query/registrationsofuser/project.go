package registrationsofuser

import (
	"cmp"
	"slices"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectDashboard implements the query logic of the dashboard.
//
// Query Logic:
//
//	GIVEN: A user with UserID
//	WHEN: RegistrationsOfUser query is executed
//	THEN: the Registrations are returned, newest first, with their totals
//	EXCLUDES: canceled Registrations
func ProjectDashboard(history core.DomainEvents, query Query, pricing core.Pricing) Dashboard {
	userID := query.UserID.String()
	states := make(map[core.EventIDString]core.RegistrationState)

	for _, event := range history {
		var eventID core.EventIDString

		switch e := event.(type) {
		case core.TicketsRegistered:
			eventID = e.EventID
		case core.RegistrationCanceled:
			eventID = e.EventID
		default:
			continue
		}

		state, ok := states[eventID]
		if !ok {
			state = core.RegistrationState{EventID: eventID, UserID: userID}
		}

		states[eventID] = state.Apply(event)
	}

	registrations := make([]core.RegistrationState, 0, len(states))
	stats := Stats{}

	for _, registration := range states {
		if !registration.Exists {
			continue
		}

		registrations = append(registrations, registration)
		stats.EventsRegistered++
		stats.TotalTickets += registration.TicketCount
	}

	slices.SortFunc(registrations, func(a, b core.RegistrationState) int {
		if c := b.RegistrationDate.Compare(a.RegistrationDate); c != 0 {
			return c
		}

		return cmp.Compare(a.EventID, b.EventID)
	})

	stats.TotalSpent = pricing.QuoteFor(stats.TotalTickets).Total

	return Dashboard{UserID: userID, Registrations: registrations, Stats: stats}
}

// BuildEventFilter creates the filter for the registration events of the user.
func BuildEventFilter(userID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.TicketsRegisteredEventType,
			core.RegistrationCanceledEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID.String()),
		).
		Finalize()
}
