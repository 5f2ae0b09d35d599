package userbyemail

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

// Handle returns the user currently holding the email address.
func (h QueryHandler) Handle(ctx context.Context, query Query) (core.UserState, error) {
	ctx = eventstore.WithEventualConsistency(ctx)

	emailHistory, err := h.historyFor(ctx, BuildEmailFilter(query.Email))
	if err != nil {
		return core.UserState{}, err
	}

	ownerID, err := ProjectEmailOwner(emailHistory, query)
	if err != nil {
		return core.UserState{}, err
	}

	userHistory, err := h.historyFor(ctx, BuildUserFilter(ownerID))
	if err != nil {
		return core.UserState{}, err
	}

	return ProjectUser(userHistory, query, ownerID)
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
