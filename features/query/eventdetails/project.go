package eventdetails

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectEventDetails implements the query logic to read one Event.
//
// Query Logic:
//
//	GIVEN: An Event with EventID
//	WHEN: EventDetails query is executed
//	THEN: the Event with its attendees and remaining spots is returned
//	ERROR: NotFound if the Event is unknown or deleted
func ProjectEventDetails(history core.DomainEvents, query Query) (EventDetails, error) {
	event := core.ProjectEventState(history, query.EventID.String())

	if !event.Exists() {
		return EventDetails{}, core.NotFoundError("event")
	}

	return EventDetails{Event: event, SpotsRemaining: event.SpotsRemaining()}, nil
}

// BuildEventFilter creates the filter for every event that moves the attendee counter of the Event.
func BuildEventFilter(eventID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
			core.EventDeletedEventType,
			core.EventAttendeesAdjustedEventType,
			core.TicketsRegisteredEventType,
			core.RegistrationCanceledEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("EventID", eventID.String()),
		).
		Finalize()
}
