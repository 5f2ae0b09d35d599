package shell

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

// QueriesEvents is what query handlers need from the event store.
type QueriesEvents interface {
	Query(ctx context.Context, filter eventstore.Filter) (
		eventstore.StorableEvents,
		eventstore.MaxSequenceNumberUint,
		error,
	)
}

// EventStore is what command handlers need from the event store.
type EventStore interface {
	QueriesEvents
	Append(
		ctx context.Context,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
		event eventstore.StorableEvent,
		additionalEvents ...eventstore.StorableEvent,
	) error
}

// Command is implemented by all command types. CommandType must work on the zero value,
// the observable wrappers rely on that.
type Command interface {
	CommandType() string
}

// NoValue is the value type of command handlers that only report an outcome.
type NoValue = struct{}

// CoreCommandHandler runs one Query -> Decide -> Append cycle (with retries) for a command.
//
// V is what the caller gets back on success, e.g. the merged registration. Handlers return
// HandlerResult with the business outcome (idempotency) and the retry metadata.
type CoreCommandHandler[C Command, V any] interface {
	Handle(ctx context.Context, command C) (V, HandlerResult, error)
}

// Query is implemented by all query types. QueryType must work on the zero value.
type Query interface {
	QueryType() string
}

// CoreQueryHandler projects the events of a query into a result.
type CoreQueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
