package registrationsofuser

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// QueryHandler runs Query -> Project. Observability is added by the observable wrapper.
type QueryHandler struct {
	eventStore shell.QueriesEvents
	pricing    core.Pricing
}

// NewQueryHandler creates a new QueryHandler. pricing computes the total spent.
func NewQueryHandler(eventStore shell.QueriesEvents, pricing core.Pricing) QueryHandler {
	return QueryHandler{eventStore: eventStore, pricing: pricing}
}

// Handle reads with eventual consistency, a replica may serve it.
func (h QueryHandler) Handle(ctx context.Context, query Query) (Dashboard, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	storableEvents, _, err := h.eventStore.Query(ctx, BuildEventFilter(query.UserID))
	if err != nil {
		return Dashboard{}, shell.ClassifyError(err)
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return Dashboard{}, shell.ClassifyError(err)
	}

	return ProjectDashboard(history, query, h.pricing), nil
}
