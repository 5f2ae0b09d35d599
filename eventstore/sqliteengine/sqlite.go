package sqliteengine

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/adapters"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/sqlengine"
)

const (
	driverName            = "sqlite"
	defaultEventTableName = "events"
	busyTimeoutMillis     = 5000
)

// EventStore is the SQLite implementation of eventstore.EventStore.
type EventStore struct {
	engine *sqlengine.Engine
}

var _ eventstore.EventStore = EventStore{}

// Open opens (and creates) the SQLite file at path with WAL journaling and a busy timeout, limited
// to one open connection.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	query := url.Values{}
	query.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", busyTimeoutMillis))
	query.Add("_pragma", "journal_mode(WAL)")
	query.Add("_pragma", "synchronous(NORMAL)")

	db, err := sql.Open(driverName, "file:"+path+"?"+query.Encode())
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)

	if err = db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return db, nil
}

// NewEventStoreFromSQLDB creates an EventStore on a *sql.DB opened with the "sqlite" driver,
// preferably through Open.
func NewEventStoreFromSQLDB(db *sql.DB, options ...Option) (EventStore, error) {
	if db == nil {
		return EventStore{}, eventstore.ErrNilDatabaseConnection
	}

	es := EventStore{
		engine: &sqlengine.Engine{
			DB:        adapters.NewSQLAdapter(db, sql.LevelDefault),
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

func (es EventStore) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {
	return es.engine.Query(ctx, filter)
}

func (es EventStore) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {
	return es.engine.Append(ctx, filter, expectedMaxSequenceNumber, event, additionalEvents...)
}

func (es EventStore) EnsureSchema(ctx context.Context) error {
	return es.engine.EnsureSchema(ctx)
}
