package sqliteengine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // registers the goqu dialect
	"github.com/doug-martin/goqu/v9/exp"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/adapters"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/sqlengine"
)

const (
	dialectSQLite     = "sqlite3"
	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	aliasVals         = "vals"
	payloadFieldEq    = "json_extract(" + colPayload + ", ?) = ?"
)

// occurred_at is stored as RFC 3339 text in UTC, which also sorts correctly.
const occurredAtLayout = time.RFC3339Nano

type dialect struct{}

func (dialect) Name() string {
	return "sqlite"
}

func (d dialect) SelectQuery(table string, filter eventstore.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectSQLite).
		From(table).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	if where := d.whereExpression(filter); where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, err := selectStmt.ToSQL()

	return sqlQuery, err
}

// AppendQuery builds
//
//	INSERT INTO events (...)
//	SELECT ... FROM (SELECT ... UNION ALL SELECT ...) AS vals
//	WHERE (SELECT COALESCE(MAX(sequence_number), 0) FROM events WHERE <filter>) = <expected>
func (d dialect) AppendQuery(
	table string,
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (string, error) {
	builder := goqu.Dialect(dialectSQLite)

	maxSeqStmt := builder.
		From(table).
		Select(goqu.COALESCE(goqu.MAX(colSequenceNumber), 0))

	if where := d.whereExpression(filter); where != nil {
		maxSeqStmt = maxSeqStmt.Where(where)
	}

	maxSeqSQL, _, err := maxSeqStmt.ToSQL()
	if err != nil {
		return "", err
	}

	var valuesStmt *goqu.SelectDataset
	for _, event := range events {
		eventStmt := builder.Select(
			goqu.V(event.EventType).As(colEventType),
			goqu.V(event.OccurredAt.UTC().Format(occurredAtLayout)).As(colOccurredAt),
			goqu.V(string(event.PayloadJSON)).As(colPayload),
			goqu.V(string(event.MetadataJSON)).As(colMetadata),
		)

		if valuesStmt == nil {
			valuesStmt = eventStmt
			continue
		}

		valuesStmt = valuesStmt.UnionAll(eventStmt)
	}

	// The literal has no args, so goqu copies maxSeqSQL verbatim.
	guard := goqu.L(fmt.Sprintf("(%s) = %d", maxSeqSQL, expectedMaxSequenceNumber))

	insertStmt := builder.
		Insert(table).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		FromQuery(
			builder.From(valuesStmt.As(aliasVals)).
				Select(colEventType, colOccurredAt, colPayload, colMetadata).
				Where(guard),
		)

	sqlQuery, _, err := insertStmt.ToSQL()

	return sqlQuery, err
}

func (dialect) whereExpression(filter eventstore.Filter) exp.Expression {
	if len(filter.Items()) == 0 {
		return nil
	}

	itemExpressions := make([]exp.Expression, 0, len(filter.Items()))

	for _, item := range filter.Items() {
		itemExpression := goqu.And()

		if len(item.EventTypes()) > 0 {
			itemExpression = itemExpression.Append(goqu.C(colEventType).In(item.EventTypes()))
		}

		if len(item.Predicates()) > 0 {
			predicateExpressions := make([]exp.Expression, 0, len(item.Predicates()))

			for _, predicate := range item.Predicates() {
				predicateExpressions = append(
					predicateExpressions,
					goqu.L(payloadFieldEq, jsonPath(predicate.Key()), predicate.Val()),
				)
			}

			if item.AllPredicatesMustMatch() {
				itemExpression = itemExpression.Append(goqu.And(predicateExpressions...))
			} else {
				itemExpression = itemExpression.Append(goqu.Or(predicateExpressions...))
			}
		}

		itemExpressions = append(itemExpressions, itemExpression)
	}

	return goqu.Or(itemExpressions...)
}

// jsonPath quotes the key so that keys with dots are not read as nested paths.
func jsonPath(key string) string {
	return `$."` + strings.ReplaceAll(key, `"`, `\"`) + `"`
}

func (dialect) SchemaQueries(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
	sequence_number INTEGER PRIMARY KEY AUTOINCREMENT,
	event_type TEXT NOT NULL,
	occurred_at TEXT NOT NULL,
	payload TEXT NOT NULL,
	metadata TEXT NOT NULL,
	appended_at TEXT NOT NULL DEFAULT (strftime('%%Y-%%m-%%dT%%H:%%M:%%fZ', 'now'))
)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %q ON %q (event_type)`, table+"_event_type_idx", table),
	}
}

func (dialect) ScanRow(rows adapters.DBRows) (sqlengine.Row, error) {
	var (
		row        sqlengine.Row
		occurredAt string
	)

	if err := rows.Scan(&row.EventType, &occurredAt, &row.PayloadJSON, &row.MetadataJSON, &row.SequenceNumber); err != nil {
		return sqlengine.Row{}, err
	}

	parsed, err := time.Parse(occurredAtLayout, occurredAt)
	if err != nil {
		return sqlengine.Row{}, err
	}

	row.OccurredAt = parsed.UTC()

	return row, nil
}

// IsConcurrencyError reports SQLITE_BUSY and its extended codes like SQLITE_BUSY_SNAPSHOT. Another
// process writing to the same file still holds the lock after the busy timeout. Conflicts within
// one process show up as zero rows affected.
func (dialect) IsConcurrencyError(err error) bool {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.Code()&0xff == sqlite3.SQLITE_BUSY
}
