package postgresengine

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
)

// Option configures an EventStore.
type Option func(*EventStore) error

// WithTableName overrides the default "events" table.
func WithTableName(tableName string) Option {
	return func(es *EventStore) error {
		if tableName == "" {
			return eventstore.ErrEmptyEventsTableName
		}

		es.engine.TableName = tableName

		return nil
	}
}

// WithLogger logs SQL at debug level, completed operations and conflicts at info level and failures
// at error level.
func WithLogger(logger eventstore.Logger) Option {
	return func(es *EventStore) error {
		es.engine.Logger = logger
		return nil
	}
}

// WithContextualLogger is like WithLogger but passes the context, so trace ids can be correlated.
func WithContextualLogger(logger eventstore.ContextualLogger) Option {
	return func(es *EventStore) error {
		es.engine.ContextualLogger = logger
		return nil
	}
}

// WithMetrics records query/append durations, event counts, conflicts and database errors.
func WithMetrics(collector eventstore.MetricsCollector) Option {
	return func(es *EventStore) error {
		es.engine.Metrics = collector
		return nil
	}
}

// WithTracing creates a span per Query and Append.
func WithTracing(collector eventstore.TracingCollector) Option {
	return func(es *EventStore) error {
		es.engine.Tracing = collector
		return nil
	}
}
