package currentsession

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
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

// Handle reads the session slot with strong consistency, a sign in must be visible right away.
func (h QueryHandler) Handle(ctx context.Context, _ Query) (CurrentSession, error) {
	ctx = eventstore.WithStrongConsistency(ctx)

	sessionHistory, err := h.historyFor(ctx, BuildSessionFilter())
	if err != nil {
		return CurrentSession{}, err
	}

	session := core.ProjectSession(sessionHistory)
	if !session.Active {
		return CurrentSession{}, nil
	}

	userHistory, err := h.historyFor(ctx, BuildUserFilter(session.UserID))
	if err != nil {
		return CurrentSession{}, err
	}

	return ProjectCurrentSession(session, userHistory), nil
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
