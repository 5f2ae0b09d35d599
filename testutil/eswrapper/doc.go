// Package eswrapper creates isolated event stores for handler and facade tests.
//
// By default every call gets a fresh SQLite file in t.TempDir(). With EVENTHUB_TEST_POSTGRES_DSN set,
// ADAPTER_TYPE selects a postgres engine instead (pgx.pool, sql.db or sqlx.db), and every call gets
// a table of its own which is dropped on cleanup.
package eswrapper
