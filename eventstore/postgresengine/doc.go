// Package postgresengine stores the EventHub event log in PostgreSQL.
//
// It works with a pgxpool.Pool, a *sql.DB opened with lib/pq, or a *sqlx.DB. Appends run in a
// serializable transaction as one INSERT ... SELECT statement that only inserts when the max sequence
// number of the filtered stream is unchanged. Reads with eventstore.WithEventualConsistency may be
// served by a replica.
//
//	pool, _ := pgxpool.New(ctx, dsn)
//	store, _ := postgresengine.NewEventStoreFromPGXPool(pool, postgresengine.WithLogger(slog.Default()))
//	_ = store.EnsureSchema(ctx)
//
//	events, maxSeq, _ := store.Query(ctx, filter)
//	err := store.Append(ctx, filter, maxSeq, newEvent)
package postgresengine
