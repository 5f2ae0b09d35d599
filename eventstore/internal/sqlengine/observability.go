package sqlengine

import (
	"context"
	"math"
	"strconv"
	"time"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

const (
	MetricQueryDuration        = "eventstore_query_duration_seconds"
	MetricAppendDuration       = "eventstore_append_duration_seconds"
	MetricEventsQueried        = "eventstore_events_queried_total"
	MetricEventsAppended       = "eventstore_events_appended_total"
	MetricConcurrencyConflicts = "eventstore_concurrency_conflicts_total"
	MetricDatabaseErrors       = "eventstore_database_errors_total"

	SpanNameQuery  = "eventstore.query"
	SpanNameAppend = "eventstore.append"

	spanAttrOperation    = "operation"
	spanAttrEventCount   = "event_count"
	spanAttrEventType    = "event_type"
	spanAttrExpectedSeq  = "expected_sequence"
	spanAttrMaxSequence  = "max_sequence"
	spanAttrRowsAffected = "rows_affected"
	spanAttrErrorType    = "error_type"
	spanAttrDialect      = "db.system"

	labelStatus       = "status"
	labelConflictType = "conflict_type"

	operationQuery  = "query"
	operationAppend = "append"

	statusSuccess  = "success"
	statusError    = "error"
	statusConflict = "conflict"

	errorTypeBuildQuery         = "build_query"
	errorTypeDatabaseQuery      = "database_query"
	errorTypeDatabaseExec       = "database_exec"
	errorTypeRowScan            = "row_scan"
	errorTypeBuildStorableEvent = "build_storable_event"
	errorTypeRowsAffected       = "rows_affected"
)

/***** logging *****/

func (e *Engine) logSQL(ctx context.Context, sqlQuery string, action string, duration time.Duration) {
	args := []any{logAttrDurationMS, toMilliseconds(duration), logAttrQuery, sqlQuery}

	if e.Logger != nil {
		e.Logger.Debug(logMsgSQLExecuted+action, args...)
	}

	if e.ContextualLogger != nil {
		e.ContextualLogger.DebugContext(ctx, logMsgSQLExecuted+action, args...)
	}
}

func (e *Engine) logOperation(ctx context.Context, action string, args ...any) {
	if e.Logger != nil {
		e.Logger.Info(logMsgOperation+action, args...)
	}

	if e.ContextualLogger != nil {
		e.ContextualLogger.InfoContext(ctx, logMsgOperation+action, args...)
	}
}

func (e *Engine) logWarn(ctx context.Context, message string, args ...any) {
	if e.Logger != nil {
		e.Logger.Warn(message, args...)
	}

	if e.ContextualLogger != nil {
		e.ContextualLogger.WarnContext(ctx, message, args...)
	}
}

func (e *Engine) logError(ctx context.Context, message string, err error, args ...any) {
	allArgs := append([]any{logAttrError, err.Error()}, args...)

	if e.Logger != nil {
		e.Logger.Error(message, allArgs...)
	}

	if e.ContextualLogger != nil {
		e.ContextualLogger.ErrorContext(ctx, message, allArgs...)
	}
}

/***** tracing *****/

type spanObserver struct {
	tracing eventstore.TracingCollector
	span    eventstore.SpanContext
}

func (e *Engine) startSpan(ctx context.Context, name string, attrs map[string]string) (*spanObserver, context.Context) {
	if e.Tracing == nil {
		return &spanObserver{}, ctx
	}

	attrs[spanAttrDialect] = e.Dialect.Name()
	spanCtx, span := e.Tracing.StartSpan(ctx, name, attrs)

	return &spanObserver{tracing: e.Tracing, span: span}, spanCtx
}

func (so *spanObserver) finishSuccess(attrs map[string]string) {
	if so.span == nil {
		return
	}

	so.tracing.FinishSpan(so.span, statusSuccess, attrs)
}

func (so *spanObserver) finishError(errorType string) {
	if so.span == nil {
		return
	}

	so.tracing.FinishSpan(so.span, statusError, map[string]string{spanAttrErrorType: errorType})
}

func (so *spanObserver) finishStatus(status string) {
	if so.span == nil {
		return
	}

	so.tracing.FinishSpan(so.span, status, nil)
}

/***** metrics *****/

type metricsObserver struct {
	ctx       context.Context
	metrics   eventstore.MetricsCollector
	operation string
}

func (e *Engine) startMetrics(ctx context.Context, operation string) *metricsObserver {
	return &metricsObserver{ctx: ctx, metrics: e.Metrics, operation: operation}
}

func (mo *metricsObserver) durationMetric() string {
	if mo.operation == operationAppend {
		return MetricAppendDuration
	}

	return MetricQueryDuration
}

func (mo *metricsObserver) recordQuerySuccess(eventCount int, duration time.Duration) {
	mo.recordDuration(duration, statusSuccess)
	mo.recordValue(MetricEventsQueried, float64(eventCount))
}

func (mo *metricsObserver) recordAppendSuccess(eventCount int, duration time.Duration) {
	mo.recordDuration(duration, statusSuccess)
	mo.recordValue(MetricEventsAppended, float64(eventCount))
}

func (mo *metricsObserver) recordError(errorType string, duration time.Duration) {
	mo.recordDuration(duration, statusError)
	mo.increment(MetricDatabaseErrors, map[string]string{
		spanAttrOperation: mo.operation,
		labelStatus:       statusError,
		spanAttrErrorType: errorType,
	})
}

func (mo *metricsObserver) recordConcurrencyConflict() {
	mo.increment(MetricConcurrencyConflicts, map[string]string{
		spanAttrOperation: mo.operation,
		labelConflictType: "concurrency",
	})
}

func (mo *metricsObserver) recordDuration(duration time.Duration, status string) {
	if mo.metrics == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: mo.operation, labelStatus: status}

	if contextual, ok := mo.metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordDurationContext(mo.ctx, mo.durationMetric(), duration, labels)
		return
	}

	mo.metrics.RecordDuration(mo.durationMetric(), duration, labels)
}

func (mo *metricsObserver) recordValue(metric string, value float64) {
	if mo.metrics == nil {
		return
	}

	labels := map[string]string{spanAttrOperation: mo.operation, labelStatus: statusSuccess}

	if contextual, ok := mo.metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.RecordValueContext(mo.ctx, metric, value, labels)
		return
	}

	mo.metrics.RecordValue(metric, value, labels)
}

func (mo *metricsObserver) increment(metric string, labels map[string]string) {
	if mo.metrics == nil {
		return
	}

	if contextual, ok := mo.metrics.(eventstore.ContextualMetricsCollector); ok {
		contextual.IncrementCounterContext(mo.ctx, metric, labels)
		return
	}

	mo.metrics.IncrementCounter(metric, labels)
}

/***** helpers *****/

// toMilliseconds rounds to 3 decimal places.
func toMilliseconds(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*1000) / 1000
}

func itoa(i int) string {
	return strconv.Itoa(i)
}

func utoa(u eventstore.MaxSequenceNumberUint) string {
	return strconv.FormatUint(uint64(u), 10)
}
