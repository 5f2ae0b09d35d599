package postgresengine

import (
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // registers the goqu dialect
	"github.com/doug-martin/goqu/v9/exp"
	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/adapters"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/sqlengine"
)

const (
	dialectPostgres   = "postgres"
	colEventType      = "event_type"
	colOccurredAt     = "occurred_at"
	colPayload        = "payload"
	colMetadata       = "metadata"
	colSequenceNumber = "sequence_number"
	cteContext        = "context"
	cteVals           = "vals"
	aliasMaxSeq       = "max_seq"
	castText          = "?::text"
	castTimestamp     = "?::timestamp with time zone"
	castJsonb         = "?::jsonb"
	payloadContains   = colPayload + " @> ?::jsonb"
)

type dialect struct{}

func (dialect) Name() string {
	return dialectPostgres
}

func (d dialect) SelectQuery(table string, filter eventstore.Filter) (string, error) {
	selectStmt := goqu.Dialect(dialectPostgres).
		From(table).
		Select(colEventType, colOccurredAt, colPayload, colMetadata, colSequenceNumber).
		Order(goqu.I(colSequenceNumber).Asc())

	where, err := d.whereExpression(filter)
	if err != nil {
		return "", err
	}

	if where != nil {
		selectStmt = selectStmt.Where(where)
	}

	sqlQuery, _, err := selectStmt.ToSQL()

	return sqlQuery, err
}

// AppendQuery builds
//
//	WITH context AS (SELECT MAX(sequence_number) AS max_seq FROM events WHERE <filter>),
//	     vals AS (SELECT ... UNION ALL SELECT ...)
//	INSERT INTO events (...) SELECT vals.* FROM context, vals WHERE COALESCE(max_seq, 0) = <expected>
func (d dialect) AppendQuery(
	table string,
	events eventstore.StorableEvents,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
) (string, error) {
	builder := goqu.Dialect(dialectPostgres)

	cteStmt := builder.
		From(table).
		Select(goqu.MAX(colSequenceNumber).As(aliasMaxSeq))

	where, err := d.whereExpression(filter)
	if err != nil {
		return "", err
	}

	if where != nil {
		cteStmt = cteStmt.Where(where)
	}

	var valuesStmt *goqu.SelectDataset
	for _, event := range events {
		eventStmt := builder.Select(
			goqu.L(castText, event.EventType).As(colEventType),
			goqu.L(castTimestamp, event.OccurredAt.UTC().Format(time.RFC3339Nano)).As(colOccurredAt),
			goqu.L(castJsonb, string(event.PayloadJSON)).As(colPayload),
			goqu.L(castJsonb, string(event.MetadataJSON)).As(colMetadata),
		)

		if valuesStmt == nil {
			valuesStmt = eventStmt
			continue
		}

		valuesStmt = valuesStmt.UnionAll(eventStmt)
	}

	insertStmt := builder.
		Insert(table).
		Cols(colEventType, colOccurredAt, colPayload, colMetadata).
		With(cteContext, cteStmt).
		With(cteVals, valuesStmt).
		FromQuery(
			builder.From(cteContext, cteVals).
				Select(
					fmt.Sprintf("%s.%s", cteVals, colEventType),
					fmt.Sprintf("%s.%s", cteVals, colOccurredAt),
					fmt.Sprintf("%s.%s", cteVals, colPayload),
					fmt.Sprintf("%s.%s", cteVals, colMetadata),
				).
				Where(goqu.COALESCE(goqu.C(aliasMaxSeq), 0).Eq(goqu.V(expectedMaxSequenceNumber))),
		)

	sqlQuery, _, err := insertStmt.ToSQL()

	return sqlQuery, err
}

// whereExpression ORs the filter items. Inside an item the event types are ORed and ANDed with the
// predicates, which are matched with jsonb containment.
func (dialect) whereExpression(filter eventstore.Filter) (exp.Expression, error) {
	if len(filter.Items()) == 0 {
		return nil, nil
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
				containment, err := jsoniter.ConfigFastest.MarshalToString(map[string]string{predicate.Key(): predicate.Val()})
				if err != nil {
					return nil, err
				}

				predicateExpressions = append(predicateExpressions, goqu.L(payloadContains, containment))
			}

			if item.AllPredicatesMustMatch() {
				itemExpression = itemExpression.Append(goqu.And(predicateExpressions...))
			} else {
				itemExpression = itemExpression.Append(goqu.Or(predicateExpressions...))
			}
		}

		itemExpressions = append(itemExpressions, itemExpression)
	}

	return goqu.Or(itemExpressions...), nil
}

func (dialect) SchemaQueries(table string) []string {
	return []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %q (
	sequence_number BIGSERIAL PRIMARY KEY,
	event_type TEXT NOT NULL,
	occurred_at TIMESTAMP WITH TIME ZONE NOT NULL,
	payload JSONB NOT NULL,
	metadata JSONB NOT NULL,
	appended_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT now()
)`, table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %q ON %q (event_type)`, table+"_event_type_idx", table),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %q ON %q USING gin (payload jsonb_path_ops)`, table+"_payload_idx", table),
	}
}

func (dialect) ScanRow(rows adapters.DBRows) (sqlengine.Row, error) {
	var row sqlengine.Row

	if err := rows.Scan(&row.EventType, &row.OccurredAt, &row.PayloadJSON, &row.MetadataJSON, &row.SequenceNumber); err != nil {
		return sqlengine.Row{}, err
	}

	row.OccurredAt = row.OccurredAt.UTC()

	return row, nil
}

func (dialect) IsConcurrencyError(err error) bool {
	return isSerializationError(err)
}
