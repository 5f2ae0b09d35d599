package app

import (
	"context"
	"fmt"

	"github.com/AntonStoeckl/eventhub/eventstore/postgresengine"
	"github.com/AntonStoeckl/eventhub/eventstore/sqliteengine"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	"github.com/AntonStoeckl/eventhub/shared/shell/config"
)

const logMsgReplicaIgnored = "the sqlx client does not support a replica, all reads go to the primary"

type eventStore interface {
	shell.EventStore
	EnsureSchema(ctx context.Context) error
}

// openEventStore returns the store and the functions that close its connections.
func openEventStore(ctx context.Context, cfg config.Config, o options) (eventStore, []func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverSQLite:
		return openSQLiteEventStore(ctx, cfg, o)

	case config.StorageDriverPostgres:
		return openPostgresEventStore(ctx, cfg, o)

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageDriver, cfg.StorageDriver)
	}
}

func openSQLiteEventStore(ctx context.Context, cfg config.Config, o options) (eventStore, []func() error, error) {
	db, err := sqliteengine.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, nil, err
	}

	closers := []func() error{db.Close}

	es, err := sqliteengine.NewEventStoreFromSQLDB(
		db,
		sqliteengine.WithContextualLogger(o.contextualLogger),
		sqliteengine.WithMetrics(o.metrics),
		sqliteengine.WithTracing(o.tracing),
	)
	if err != nil {
		return nil, closers, fmt.Errorf("create sqlite event store: %w", err)
	}

	return es, closers, nil
}

func openPostgresEventStore(ctx context.Context, cfg config.Config, o options) (eventStore, []func() error, error) {
	engineOptions := []postgresengine.Option{
		postgresengine.WithContextualLogger(o.contextualLogger),
		postgresengine.WithMetrics(o.metrics),
		postgresengine.WithTracing(o.tracing),
	}

	var (
		es      postgresengine.EventStore
		closers []func() error
		err     error
	)

	switch cfg.PostgresClient {
	case config.PostgresClientPGX:
		pool, poolErr := config.PostgresPGXPool(ctx, cfg.PostgresDSN)
		if poolErr != nil {
			return nil, nil, poolErr
		}

		closers = append(closers, closePGXPool(pool.Close))

		if cfg.PostgresReplicaDSN == "" {
			es, err = postgresengine.NewEventStoreFromPGXPool(pool, engineOptions...)
			break
		}

		replica, replicaErr := config.PostgresPGXPool(ctx, cfg.PostgresReplicaDSN)
		if replicaErr != nil {
			return nil, closers, fmt.Errorf("replica: %w", replicaErr)
		}

		closers = append(closers, closePGXPool(replica.Close))
		es, err = postgresengine.NewEventStoreFromPGXPoolAndReplica(pool, replica, engineOptions...)

	case config.PostgresClientSQLDB:
		db, dbErr := config.PostgresSQLDB(ctx, cfg.PostgresDSN)
		if dbErr != nil {
			return nil, nil, dbErr
		}

		closers = append(closers, db.Close)

		if cfg.PostgresReplicaDSN == "" {
			es, err = postgresengine.NewEventStoreFromSQLDB(db, engineOptions...)
			break
		}

		replica, replicaErr := config.PostgresSQLDB(ctx, cfg.PostgresReplicaDSN)
		if replicaErr != nil {
			return nil, closers, fmt.Errorf("replica: %w", replicaErr)
		}

		closers = append(closers, replica.Close)
		es, err = postgresengine.NewEventStoreFromSQLDBAndReplica(db, replica, engineOptions...)

	case config.PostgresClientSQLX:
		db, dbErr := config.PostgresSQLX(ctx, cfg.PostgresDSN)
		if dbErr != nil {
			return nil, nil, dbErr
		}

		closers = append(closers, db.Close)

		if cfg.PostgresReplicaDSN != "" {
			o.contextualLogger.WarnContext(ctx, logMsgReplicaIgnored)
		}

		es, err = postgresengine.NewEventStoreFromSQLX(db, engineOptions...)

	default:
		return nil, nil, fmt.Errorf("%w: %q", config.ErrUnknownPostgresClient, cfg.PostgresClient)
	}

	if err != nil {
		return nil, closers, fmt.Errorf("create postgres event store: %w", err)
	}

	return es, closers, nil
}

func closePGXPool(closePool func()) func() error {
	return func() error {
		closePool()
		return nil
	}
}
