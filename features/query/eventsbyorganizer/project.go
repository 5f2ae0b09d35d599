package eventsbyorganizer

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/features/query/eventcatalog"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectCreatedEventIDs returns the ids of the Events in creation order.
func ProjectCreatedEventIDs(history core.DomainEvents) []core.EventIDString {
	ids := make([]core.EventIDString, 0, len(history))

	for _, event := range history {
		if created, ok := event.(core.EventCreated); ok {
			ids = append(ids, created.EventID)
		}
	}

	return ids
}

// ProjectOrganizerEvents implements the query logic of the organizer's Event list.
//
// Query Logic:
//
//	GIVEN: The history of the Events an organizer created
//	WHEN: EventsByOrganizer query is executed
//	THEN: the Events with their attendees are returned, newest first
//	EXCLUDES: deleted Events
func ProjectOrganizerEvents(history core.DomainEvents, query Query) OrganizerEvents {
	organizerID := query.OrganizerID.String()

	events := make([]core.EventState, 0)
	for _, event := range core.ProjectEventStates(history) {
		if event.Exists() && event.CreatedBy == organizerID {
			events = append(events, event)
		}
	}

	eventcatalog.SortNewestFirst(events)

	return OrganizerEvents{OrganizerID: organizerID, Events: events, Count: len(events)}
}

// BuildCreatedByFilter creates the filter for the creations by the organizer.
func BuildCreatedByFilter(organizerID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("CreatedBy", organizerID.String()),
		).
		Finalize()
}

// BuildEventsFilter creates the filter for every event of the given Events. eventIDs must not be empty.
func BuildEventsFilter(eventIDs []core.EventIDString) eventstore.Filter {
	predicates := make([]eventstore.FilterPredicate, 0, len(eventIDs))
	for _, eventID := range eventIDs {
		predicates = append(predicates, eventstore.P("EventID", eventID))
	}

	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
			core.EventDeletedEventType,
			core.EventAttendeesAdjustedEventType,
			core.TicketsRegisteredEventType,
			core.RegistrationCanceledEventType,
		).
		AndAnyPredicateOf(predicates[0], predicates[1:]...).
		Finalize()
}
