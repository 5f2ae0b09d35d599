package sqlengine

import (
	"context"
	"errors"
	"time"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/eventstore/internal/adapters"
)

const (
	logMsgBuildSelectQueryFailed   = "failed to build select query"
	logMsgBuildInsertQueryFailed   = "failed to build insert query"
	logMsgDBQueryFailed            = "database query execution failed"
	logMsgDBExecFailed             = "database execution failed during event append"
	logMsgCloseRowsFailed          = "failed to close database rows"
	logMsgScanRowFailed            = "failed to scan database row"
	logMsgBuildStorableEventFailed = "failed to build storable event from database row"
	logMsgRowsAffectedFailed       = "failed to get rows affected count"
	logMsgSchemaFailed             = "failed to create events schema"
	logMsgQueryCompleted           = "query completed"
	logMsgEventsAppended           = "events appended"
	logMsgConcurrencyConflict      = "concurrency conflict detected"
	logMsgSchemaEnsured            = "events schema ensured"
	logMsgSQLExecuted              = "executed sql for: "
	logMsgOperation                = "eventstore operation: "
	logAttrError                   = "error"
	logAttrQuery                   = "query"
	logAttrEventType               = "event_type"
	logAttrEventCount              = "event_count"
	logAttrDurationMS              = "duration_ms"
	logAttrExpectedEvents          = "expected_events"
	logAttrRowsAffected            = "rows_affected"
	logAttrExpectedSequence        = "expected_sequence"
	logAttrTable                   = "table"
	logActionQuery                 = "query"
	logActionAppend                = "append"
	logActionSchema                = "schema"
)

// Row is one scanned row of the events table.
type Row struct {
	EventType      string
	OccurredAt     time.Time
	PayloadJSON    []byte
	MetadataJSON   []byte
	SequenceNumber eventstore.MaxSequenceNumberUint
}

// Dialect generates the SQL of one database and knows how to scan its rows.
type Dialect interface {
	Name() string
	SelectQuery(table string, filter eventstore.Filter) (string, error)
	AppendQuery(
		table string,
		events eventstore.StorableEvents,
		filter eventstore.Filter,
		expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	) (string, error)
	SchemaQueries(table string) []string
	ScanRow(rows adapters.DBRows) (Row, error)

	// IsConcurrencyError reports database errors that mean "another writer won", e.g. a
	// serialization failure.
	IsConcurrencyError(err error) bool
}

// Engine is the engine independent Query/Append pipeline shared by the postgres and sqlite engines.
type Engine struct {
	DB        adapters.DBAdapter
	Dialect   Dialect
	TableName string

	Logger           eventstore.Logger
	ContextualLogger eventstore.ContextualLogger
	Metrics          eventstore.MetricsCollector
	Tracing          eventstore.TracingCollector
}

// Query returns the matching events in sequence number order and the highest sequence number among them.
func (e *Engine) Query(ctx context.Context, filter eventstore.Filter) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	error,
) {
	var empty eventstore.StorableEvents

	tracer, ctx := e.startSpan(ctx, SpanNameQuery, map[string]string{spanAttrOperation: operationQuery})
	metrics := e.startMetrics(ctx, operationQuery)
	start := time.Now()

	sqlQuery, buildErr := e.Dialect.SelectQuery(e.TableName, filter)
	if buildErr != nil {
		e.logError(ctx, logMsgBuildSelectQueryFailed, buildErr)
		metrics.recordError(errorTypeBuildQuery, time.Since(start))
		tracer.finishError(errorTypeBuildQuery)

		return empty, 0, errors.Join(eventstore.ErrBuildingQueryFailed, buildErr)
	}

	rows, queryErr := e.DB.Query(ctx, sqlQuery)
	e.logSQL(ctx, sqlQuery, logActionQuery, time.Since(start))
	if queryErr != nil {
		e.logError(ctx, logMsgDBQueryFailed, queryErr, logAttrQuery, sqlQuery)
		metrics.recordError(errorTypeDatabaseQuery, time.Since(start))
		tracer.finishError(errorTypeDatabaseQuery)

		return empty, 0, errors.Join(eventstore.ErrQueryingEventsFailed, queryErr)
	}
	defer e.closeRows(ctx, rows)

	eventStream, maxSequenceNumber, scanErrType, scanErr := e.scanRows(ctx, rows)
	if scanErr != nil {
		metrics.recordError(scanErrType, time.Since(start))
		tracer.finishError(scanErrType)

		return empty, 0, scanErr
	}

	duration := time.Since(start)
	metrics.recordQuerySuccess(len(eventStream), duration)
	tracer.finishSuccess(map[string]string{
		spanAttrEventCount:  itoa(len(eventStream)),
		spanAttrMaxSequence: utoa(maxSequenceNumber),
	})
	e.logOperation(ctx, logMsgQueryCompleted, logAttrEventCount, len(eventStream), logAttrDurationMS, toMilliseconds(duration))

	return eventStream, maxSequenceNumber, nil
}

func (e *Engine) scanRows(ctx context.Context, rows adapters.DBRows) (
	eventstore.StorableEvents,
	eventstore.MaxSequenceNumberUint,
	string,
	error,
) {
	eventStream := make(eventstore.StorableEvents, 0)
	maxSequenceNumber := eventstore.MaxSequenceNumberUint(0)

	for rows.Next() {
		row, scanErr := e.Dialect.ScanRow(rows)
		if scanErr != nil {
			e.logError(ctx, logMsgScanRowFailed, scanErr)

			return nil, 0, errorTypeRowScan, errors.Join(eventstore.ErrScanningDBRowFailed, scanErr)
		}

		event, buildErr := eventstore.BuildStorableEvent(row.EventType, row.OccurredAt, row.PayloadJSON, row.MetadataJSON)
		if buildErr != nil {
			e.logError(ctx, logMsgBuildStorableEventFailed, buildErr, logAttrEventType, row.EventType)

			return nil, 0, errorTypeBuildStorableEvent, errors.Join(eventstore.ErrBuildingStorableEventFailed, buildErr)
		}

		eventStream = append(eventStream, event)
		maxSequenceNumber = row.SequenceNumber
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		e.logError(ctx, logMsgScanRowFailed, rowsErr)

		return nil, 0, errorTypeRowScan, errors.Join(eventstore.ErrScanningDBRowFailed, rowsErr)
	}

	return eventStream, maxSequenceNumber, "", nil
}

func (e *Engine) closeRows(ctx context.Context, rows adapters.DBRows) {
	if closeErr := rows.Close(); closeErr != nil {
		e.logWarn(ctx, logMsgCloseRowsFailed, logAttrError, closeErr.Error())
	}
}

// Append stores the events atomically, but only if the max sequence number of the filtered stream
// still equals expectedMaxSequenceNumber. It returns eventstore.ErrConcurrencyConflict otherwise.
func (e *Engine) Append(
	ctx context.Context,
	filter eventstore.Filter,
	expectedMaxSequenceNumber eventstore.MaxSequenceNumberUint,
	event eventstore.StorableEvent,
	additionalEvents ...eventstore.StorableEvent,
) error {
	allEvents := append(eventstore.StorableEvents{event}, additionalEvents...)

	tracer, ctx := e.startSpan(ctx, SpanNameAppend, map[string]string{
		spanAttrOperation:   operationAppend,
		spanAttrEventCount:  itoa(len(allEvents)),
		spanAttrEventType:   event.EventType,
		spanAttrExpectedSeq: utoa(expectedMaxSequenceNumber),
	})
	metrics := e.startMetrics(ctx, operationAppend)
	start := time.Now()

	sqlQuery, buildErr := e.Dialect.AppendQuery(e.TableName, allEvents, filter, expectedMaxSequenceNumber)
	if buildErr != nil {
		e.logError(ctx, logMsgBuildInsertQueryFailed, buildErr, logAttrEventCount, len(allEvents))
		metrics.recordError(errorTypeBuildQuery, time.Since(start))
		tracer.finishError(errorTypeBuildQuery)

		return errors.Join(eventstore.ErrBuildingQueryFailed, buildErr)
	}

	result, execErr := e.DB.Exec(ctx, sqlQuery)
	e.logSQL(ctx, sqlQuery, logActionAppend, time.Since(start))
	if execErr != nil {
		if e.Dialect.IsConcurrencyError(execErr) {
			e.logOperation(ctx, logMsgConcurrencyConflict, logAttrExpectedSequence, expectedMaxSequenceNumber, logAttrError, execErr.Error())
			metrics.recordConcurrencyConflict()
			tracer.finishStatus(statusConflict)

			return eventstore.ErrConcurrencyConflict
		}

		e.logError(ctx, logMsgDBExecFailed, execErr, logAttrQuery, sqlQuery)
		metrics.recordError(errorTypeDatabaseExec, time.Since(start))
		tracer.finishError(errorTypeDatabaseExec)

		return errors.Join(eventstore.ErrAppendingEventFailed, execErr)
	}

	rowsAffected, rowsAffectedErr := result.RowsAffected()
	if rowsAffectedErr != nil {
		e.logError(ctx, logMsgRowsAffectedFailed, rowsAffectedErr)
		metrics.recordError(errorTypeRowsAffected, time.Since(start))
		tracer.finishError(errorTypeRowsAffected)

		return errors.Join(eventstore.ErrGettingRowsAffectedFailed, rowsAffectedErr)
	}

	if rowsAffected < int64(len(allEvents)) {
		e.logOperation(
			ctx,
			logMsgConcurrencyConflict,
			logAttrExpectedEvents, len(allEvents),
			logAttrRowsAffected, rowsAffected,
			logAttrExpectedSequence, expectedMaxSequenceNumber,
		)
		metrics.recordConcurrencyConflict()
		tracer.finishStatus(statusConflict)

		return eventstore.ErrConcurrencyConflict
	}

	duration := time.Since(start)
	metrics.recordAppendSuccess(len(allEvents), duration)
	tracer.finishSuccess(map[string]string{spanAttrRowsAffected: itoa(int(rowsAffected))})
	e.logOperation(ctx, logMsgEventsAppended, logAttrEventCount, len(allEvents), logAttrDurationMS, toMilliseconds(duration))

	return nil
}

// EnsureSchema creates the events table and its indexes if they do not exist yet.
func (e *Engine) EnsureSchema(ctx context.Context) error {
	for _, statement := range e.Dialect.SchemaQueries(e.TableName) {
		start := time.Now()
		_, execErr := e.DB.Exec(ctx, statement)
		e.logSQL(ctx, statement, logActionSchema, time.Since(start))

		if execErr != nil {
			e.logError(ctx, logMsgSchemaFailed, execErr, logAttrTable, e.TableName)

			return errors.Join(eventstore.ErrCreatingSchemaFailed, execErr)
		}
	}

	e.logOperation(ctx, logMsgSchemaEnsured, logAttrTable, e.TableName)

	return nil
}
