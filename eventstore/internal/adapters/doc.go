// Package adapters hides the differences between pgxpool.Pool, sql.DB and sqlx.DB behind DBAdapter,
// so that the engines can run the same generated SQL on any of them.
package adapters
