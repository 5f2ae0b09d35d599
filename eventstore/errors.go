package eventstore

import (
	"errors"
)

var (
	// ErrEmptyEventsTableName is returned when an engine is configured with an empty table name.
	ErrEmptyEventsTableName = errors.New("events table name must not be empty")

	// ErrNilDatabaseConnection is returned when an engine is constructed without a connection.
	ErrNilDatabaseConnection = errors.New("database connection must not be nil")

	// ErrConcurrencyConflict is returned by Append when the max sequence number of the
	// filtered event stream moved between Query and Append.
	ErrConcurrencyConflict = errors.New("concurrency conflict: the event stream was modified concurrently")

	ErrBuildingQueryFailed         = errors.New("building the sql query failed")
	ErrQueryingEventsFailed        = errors.New("querying events failed")
	ErrScanningDBRowFailed         = errors.New("scanning a database row failed")
	ErrBuildingStorableEventFailed = errors.New("building a storable event from a database row failed")
	ErrAppendingEventFailed        = errors.New("appending events failed")
	ErrGettingRowsAffectedFailed   = errors.New("reading rows affected failed")
	ErrCreatingSchemaFailed        = errors.New("creating the events schema failed")

	ErrInvalidPayloadJSON  = errors.New("payload json is not valid")
	ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
)

// MaxSequenceNumberUint is the highest sequence number of a filtered "dynamic event stream".
// Zero means that no event matched the filter.
type MaxSequenceNumberUint = uint
