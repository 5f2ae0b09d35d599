package eventcatalog

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// QueryHandler runs Query -> Project. Observability is added by the observable wrapper.
type QueryHandler struct {
	eventStore shell.QueriesEvents
}

// NewQueryHandler creates a new QueryHandler with the provided event store.
func NewQueryHandler(eventStore shell.QueriesEvents) QueryHandler {
	return QueryHandler{eventStore: eventStore}
}

// Handle reads with eventual consistency, a replica may serve it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Catalog, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter())
	if err != nil {
		return Catalog{}, shell.ClassifyError(err)
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return Catalog{}, shell.ClassifyError(err)
	}

	return ProjectCatalog(history, query), nil
}
