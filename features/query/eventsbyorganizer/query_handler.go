package eventsbyorganizer

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// QueryHandler runs Query -> Project twice. Observability is added by the observable wrapper.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided event store.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle reads with eventual consistency, a replica may serve it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (OrganizerEvents, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	createdHistory, err := h.historyFor(ctx, BuildCreatedByFilter(query.OrganizerID))
	if err != nil {
		return OrganizerEvents{}, err
	}

	eventIDs := ProjectCreatedEventIDs(createdHistory)
	if len(eventIDs) == 0 {
		return ProjectOrganizerEvents(nil, query), nil
	}

	history, err := h.historyFor(ctx, BuildEventsFilter(eventIDs))
	if err != nil {
		return OrganizerEvents{}, err
	}

	return ProjectOrganizerEvents(history, query), nil
}

func (h QueryHandler) historyFor(ctx context.Context, filter eventstore.Filter) (core.DomainEvents, error) {
	storableEvents, _, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return nil, shell.ClassifyError(err)
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return nil, shell.ClassifyError(err)
	}

	return history, nil
}
