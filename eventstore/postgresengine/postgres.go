package postgresengine

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/adapters"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/sqlengine"
)

const (
	defaultEventTableName = "events"

	sqlStateSerializationFailure = "40001"
	sqlStateDeadlockDetected     = "40P01"
)

// EventStore is the PostgreSQL implementation of eventstore.EventStore.
type EventStore struct {
	engine *sqlengine.Engine
}

var _ eventstore.EventStore = EventStore{}

// NewEventStoreFromPGXPool creates an EventStore on a pgx pool.
func NewEventStoreFromPGXPool(db *pgxpool.Pool, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapter(db), options...)
}

// NewEventStoreFromPGXPoolAndReplica creates an EventStore that serves eventually consistent reads from replica.
func NewEventStoreFromPGXPoolAndReplica(db *pgxpool.Pool, replica *pgxpool.Pool, options ...Option) (EventStore, error) {
	if db == nil || replica == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewPGXAdapterWithReplica(db, replica), options...)
}

// NewEventStoreFromSQLDB creates an EventStore on a *sql.DB opened with the "postgres" driver.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapter(db, sql.LevelSerializable), options...)
}

// NewEventStoreFromSQLDBAndReplica is NewEventStoreFromSQLDB with a read replica for eventually
// consistent queries.
func NewEventStoreFromSQLDBAndReplica(db *sql.DB, replica *sql.DB, options ...Option) (EventStore, error) {
	if db == nil || replica == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLAdapterWithReplica(db, replica, sql.LevelSerializable), options...)
}

// NewEventStoreFromSQLX creates an EventStore on a *sqlx.DB opened with the "postgres" driver.
func NewEventStoreFromSQLX(db *sqlx.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	return newEventStore(adapters.NewSQLXAdapter(db, sql.LevelSerializable), options...)
}

func newEventStore(db adapters.DBAdapter, options ...Option) (EventStore, error) {
	es := EventStore{
		engine: &sqlengine.Engine{
			DB:        db,
			Dialect:   dialect{},
			TableName: defaultEventTableName,
		},
	}

	for _, option := range options {
		if err := option(&es); err != nil {
			return EventStore{}, err
		}
	}

	return es, nil
}

// Query returns all events matching filter and the max sequence number of that stream.
func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {
	return es.engine.Query(ctx, filter)
}

// Append appends the events if the stream selected by filter still has expectedMaxSequenceNumber.
// Use the same filter as for the Query the decision was based on.
func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {
	return es.engine.Append(ctx, filter, expectedMaxSequenceNumber, event, additionalEvents...)
}

// EnsureSchema creates the events table and indexes.
func (es EventStore) EnsureSchema(ctx context.Context) error {
	return es.engine.EnsureSchema(ctx)
}

func isSerializationError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlStateSerializationFailure || pgErr.Code == sqlStateDeadlockDetected
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == sqlStateSerializationFailure || string(pqErr.Code) == sqlStateDeadlockDetected
	}

	return false
}
