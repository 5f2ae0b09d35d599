package eswrapper

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/postgresengine"
	"github.com/AntonStoeckl/eventhub/eventstore/sqliteengine"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/config"
)

// Adapter type constants
const (
	typeSQLite  = "sqlite"
	typePGXPool = "pgx.pool"
	typeSQLDB   = "sql.db"
	typeSQLXDB  = "sqlx.db"

	envAdapterType = "ADAPTER_TYPE"
	envPostgresDSN = "EVENTHUB_TEST_POSTGRES_DSN"
)

// EventStore is what the tests get: the command handler surface plus schema creation.
type EventStore interface {
	shell.EventStore
	EnsureSchema(ctx context.Context) error
}

// CreateEventStore returns an empty event store with its schema in place.
func CreateEventStore(t testing.TB) EventStore {
	t.Helper()

	var es EventStore

	switch adapterType := adapterTypeFromEnv(); adapterType {
	case typeSQLite:
		es = createSQLiteEventStore(t)

	case typePGXPool, typeSQLDB, typeSQLXDB:
		es = createPostgresEventStore(t, adapterType)

	default:
		t.Fatalf("unsupported adapter type from env: %s", adapterType)
	}

	require.NoError(t, es.EnsureSchema(context.Background()), "error creating the events schema")

	return es
}

// GivenUniqueID generates UUID v7 ids, so ids of one test sort by creation.
func GivenUniqueID(t testing.TB) uuid.UUID {
	t.Helper()

	id, err := uuid.NewV7()
	require.NoError(t, err, "error in arranging test data")

	return id
}

// GivenEventsWereAppended appends domain events unconditionally, bypassing the command handlers.
func GivenEventsWereAppended(t testing.TB, es EventStore, events ...core.DomainEvent) {
	t.Helper()

	ctx := eventstore.WithStrongConsistency(context.Background())

	for _, event := range events {
		storableEvent, err := shell.StorableEventFrom(event, shell.NewCommandEventMetadata())
		require.NoError(t, err, "error in arranging test data")

		_, maxSequenceNumber, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
		require.NoError(t, err, "error in arranging test data")

		err = es.Append(ctx, eventstore.BuildEventFilter().MatchingAnyEvent(), maxSequenceNumber, storableEvent)
		require.NoError(t, err, "error in arranging test data")
	}
}

func adapterTypeFromEnv() string {
	if os.Getenv(envPostgresDSN) == "" {
		return typeSQLite
	}

	adapterType := strings.ToLower(os.Getenv(envAdapterType))
	if adapterType == "" {
		return typePGXPool
	}

	return adapterType
}

func createSQLiteEventStore(t testing.TB) EventStore {
	t.Helper()

	db, err := sqliteengine.Open(context.Background(), filepath.Join(t.TempDir(), "events.db"))
	require.NoError(t, err, "error opening sqlite database")
	t.Cleanup(func() { _ = db.Close() })

	es, err := sqliteengine.NewEventStoreFromSQLDB(db)
	require.NoError(t, err, "error creating event store")

	return es
}

func createPostgresEventStore(t testing.TB, adapterType string) EventStore {
	t.Helper()

	ctx := context.Background()
	dsn := os.Getenv(envPostgresDSN)
	table := "events_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	dropTable := fmt.Sprintf(`DROP TABLE IF EXISTS %q`, table)

	var (
		es  postgresengine.EventStore
		err error
	)

	switch adapterType {
	case typePGXPool:
		pool, poolErr := config.PostgresPGXPool(ctx, dsn)
		require.NoError(t, poolErr, "error connecting to DB pool in test setup")
		t.Cleanup(func() {
			_, _ = pool.Exec(context.Background(), dropTable)
			pool.Close()
		})

		es, err = postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithTableName(table))

	case typeSQLDB:
		db, dbErr := config.PostgresSQLDB(ctx, dsn)
		require.NoError(t, dbErr, "error connecting to DB in test setup")
		t.Cleanup(func() {
			_, _ = db.Exec(dropTable)
			_ = db.Close()
		})

		es, err = postgresengine.NewEventStoreFromSQLDB(db, postgresengine.WithTableName(table))

	case typeSQLXDB:
		db, dbErr := config.PostgresSQLX(ctx, dsn)
		require.NoError(t, dbErr, "error connecting to DB in test setup")
		t.Cleanup(func() {
			_, _ = db.Exec(dropTable)
			_ = db.Close()
		})

		es, err = postgresengine.NewEventStoreFromSQLX(db, postgresengine.WithTableName(table))
	}

	require.NoError(t, err, "error creating event store")

	return es
}
