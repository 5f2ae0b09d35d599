package adapters

import "context"

// DBAdapter runs fully interpolated SQL strings.
type DBAdapter interface {
	Query(ctx context.Context, query string) (DBRows, error)
	Exec(ctx context.Context, query string) (DBResult, error)
}

type DBRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DBResult interface {
	RowsAffected() (int64, error)
}
