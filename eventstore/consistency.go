package eventstore

import "context"

// ConsistencyLevel tells an engine whether a read must hit the primary database.
type ConsistencyLevel int

const (
	// StrongConsistency reads from the primary. Command handlers need it for Query -> Decide -> Append.
	StrongConsistency ConsistencyLevel = iota

	// EventualConsistency allows reads from a replica. Query handlers may tolerate slightly stale projections.
	EventualConsistency
)

type contextKey string

// ConsistencyLevelKey is the context key under which the ConsistencyLevel is stored.
const ConsistencyLevelKey contextKey = "eventstore.consistency_level"

// WithStrongConsistency marks ctx so that engines read from the primary.
//
//	ctx = eventstore.WithStrongConsistency(ctx)
//	events, maxSeq, err := store.Query(ctx, filter)
func WithStrongConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, StrongConsistency)
}

// WithEventualConsistency marks ctx so that engines may read from a replica if one is configured.
func WithEventualConsistency(ctx context.Context) context.Context {
	return context.WithValue(ctx, ConsistencyLevelKey, EventualConsistency)
}

// GetConsistencyLevel returns the level stored in ctx, StrongConsistency if none is set.
func GetConsistencyLevel(ctx context.Context) ConsistencyLevel {
	if level, ok := ctx.Value(ConsistencyLevelKey).(ConsistencyLevel); ok {
		return level
	}

	return StrongConsistency
}

func (c ConsistencyLevel) String() string {
	switch c {
	case StrongConsistency:
		return "strong"
	case EventualConsistency:
		return "eventual"
	default:
		return "unknown"
	}
}
