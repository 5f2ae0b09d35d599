// Package sqliteengine stores the EventHub event log in a local SQLite file using the pure Go
// modernc.org/sqlite driver. It is the default engine and the one the tests run on.
//
// Open configures the database for a single connection, so every conditional append is serialized:
//
//	db, _ := sqliteengine.Open(ctx, "eventhub.db")
//	store, _ := sqliteengine.NewEventStoreFromSQLDB(db)
//	_ = store.EnsureSchema(ctx)
package sqliteengine
