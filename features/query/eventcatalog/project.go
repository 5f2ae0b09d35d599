package eventcatalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectCatalog implements the query logic of the Event catalog.
//
// Query Logic:
//
//	GIVEN: The history of all Events
//	WHEN: EventCatalog query is executed
//	THEN: the Events matching search and category are returned, newest first
//	EXCLUDES: deleted Events
func ProjectCatalog(history core.DomainEvents, query Query) Catalog {
	search := strings.ToLower(strings.TrimSpace(query.Search))

	events := make([]core.EventState, 0)
	for _, event := range core.ProjectEventStates(history) {
		if event.Exists() && matchesCategory(event, query.Category) && matchesSearch(event, search) {
			events = append(events, event)
		}
	}

	SortNewestFirst(events)

	return Catalog{Events: events, Count: len(events)}
}

func matchesCategory(event core.EventState, category string) bool {
	return category == "" || category == core.CategoryAll || event.Category == category
}

func matchesSearch(event core.EventState, search string) bool {
	return search == "" ||
		strings.Contains(strings.ToLower(event.Title), search) ||
		strings.Contains(strings.ToLower(event.Location), search)
}

// SortNewestFirst orders by creation time, newest first. Ties are broken by EventID.
func SortNewestFirst(events []core.EventState) {
	slices.SortFunc(events, func(a, b core.EventState) int {
		if c := b.OccurredAt.Compare(a.OccurredAt); c != 0 {
			return c
		}

		return cmp.Compare(a.EventID, b.EventID)
	})
}

// BuildEventFilter creates the filter for every event of every Event.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
			core.EventDeletedEventType,
			core.EventAttendeesAdjustedEventType,
			core.TicketsRegisteredEventType,
			core.RegistrationCanceledEventType,
		).
		Finalize()
}
