package adapters

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

// queryExecer is what *sql.DB and *sqlx.DB have in common.
type queryExecer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// txBeginner is implemented by *sql.DB and *sqlx.DB.
type txBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type sqlDB interface {
	queryExecer
	txBeginner
}

// SQLAdapter serves both *sql.DB (lib/pq, modernc sqlite) and *sqlx.DB.
//
// With an isolation level other than sql.LevelDefault every Exec runs in its own transaction with
// that level. Postgres needs sql.LevelSerializable for the conditional append to be atomic, SQLite
// serializes writes by itself.
type SQLAdapter struct {
	db        sqlDB
	replica   queryExecer
	isolation sql.IsolationLevel
}

func NewSQLAdapter(db *sql.DB, isolation sql.IsolationLevel) *SQLAdapter {
	return &SQLAdapter{db: db, isolation: isolation}
}

func NewSQLAdapterWithReplica(db *sql.DB, replica *sql.DB, isolation sql.IsolationLevel) *SQLAdapter {
	adapter := &SQLAdapter{db: db, isolation: isolation}
	if replica != nil {
		adapter.replica = replica
	}

	return adapter
}

func NewSQLXAdapter(db *sqlx.DB, isolation sql.IsolationLevel) *SQLAdapter {
	return &SQLAdapter{db: db, isolation: isolation}
}

func (s *SQLAdapter) Query(ctx context.Context, query string) (DBRows, error) {
	db := s.db

	if s.replica != nil && eventstore.GetConsistencyLevel(ctx) == eventstore.EventualConsistency {
		db = s.replica
	}

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (s *SQLAdapter) Exec(ctx context.Context, query string) (DBResult, error) {
	if s.isolation == sql.LevelDefault {
		result, err := s.db.ExecContext(ctx, query)
		if err != nil {
			return nil, err
		}

		return result, nil
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{Isolation: s.isolation})
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, query)
	if err != nil {
		return nil, errors.Join(err, tx.Rollback())
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, errors.Join(err, tx.Rollback())
	}

	if err = tx.Commit(); err != nil {
		return nil, err
	}

	return fixedResult(rowsAffected), nil
}

type fixedResult int64

func (r fixedResult) RowsAffected() (int64, error) {
	return int64(r), nil
}
