package eventstore

import (
	"context"
)

// EventStore is implemented by the storage engines in the sub packages.
//
// Query returns all events matching the filter in sequence number order together with the
// MaxSequenceNumberUint of that stream. Append stores the events only if the max sequence number for
// the same filter is still expectedMaxSequenceNumber, otherwise it returns ErrConcurrencyConflict.
type EventStore interface {
	Query(ctx context.Context, filter Filter) (StorableEvents, MaxSequenceNumberUint, error)
	Append(
		ctx context.Context,
		filter Filter,
		expectedMaxSequenceNumber MaxSequenceNumberUint,
		event StorableEvent,
		additionalEvents ...StorableEvent,
	) error
}
