package oteladapters

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/log"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

const (
	attrTraceID = "trace_id"
	attrSpanID  = "span_id"
)

// SlogBridgeLogger is an eventstore.ContextualLogger backed by *slog.Logger.
type SlogBridgeLogger struct {
	logger *slog.Logger
}

var _ eventstore.ContextualLogger = (*SlogBridgeLogger)(nil)

// NewSlogBridgeLogger sends log records to the global OpenTelemetry LoggerProvider through the
// otelslog bridge, which correlates them with the span found in the context.
func NewSlogBridgeLogger(name string, options ...otelslog.Option) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: otelslog.NewLogger(name, options...)}
}

// NewTraceCorrelatingLogger writes to handler and adds trace_id and span_id attributes whenever the
// context carries a valid span. Use it when logs go to stdout instead of an OTel collector.
func NewTraceCorrelatingLogger(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(traceCorrelatingHandler{next: handler})}
}

func (l *SlogBridgeLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.logger.DebugContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, args...)
}

func (l *SlogBridgeLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, args...)
}

type traceCorrelatingHandler struct {
	next slog.Handler
}

func (h traceCorrelatingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h traceCorrelatingHandler) Handle(ctx context.Context, record slog.Record) error {
	if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
		record = record.Clone()
		record.AddAttrs(
			slog.String(attrTraceID, spanCtx.TraceID().String()),
			slog.String(attrSpanID, spanCtx.SpanID().String()),
		)
	}

	return h.next.Handle(ctx, record)
}

func (h traceCorrelatingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceCorrelatingHandler{next: h.next.WithAttrs(attrs)}
}

func (h traceCorrelatingHandler) WithGroup(name string) slog.Handler {
	return traceCorrelatingHandler{next: h.next.WithGroup(name)}
}

// OTelLogger emits records through the OpenTelemetry logs API directly.
type OTelLogger struct {
	logger log.Logger
}

var _ eventstore.ContextualLogger = (*OTelLogger)(nil)

func NewOTelLogger(logger log.Logger) *OTelLogger {
	return &OTelLogger{logger: logger}
}

func (l *OTelLogger) DebugContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityDebug, "DEBUG", msg, args)
}

func (l *OTelLogger) InfoContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityInfo, "INFO", msg, args)
}

func (l *OTelLogger) WarnContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityWarn, "WARN", msg, args)
}

func (l *OTelLogger) ErrorContext(ctx context.Context, msg string, args ...any) {
	l.emit(ctx, log.SeverityError, "ERROR", msg, args)
}

func (l *OTelLogger) emit(ctx context.Context, severity log.Severity, severityText string, msg string, args []any) {
	var record log.Record
	record.SetSeverity(severity)
	record.SetSeverityText(severityText)
	record.SetBody(log.StringValue(msg))
	record.AddAttributes(toLogAttributes(args)...)

	l.logger.Emit(ctx, record)
}

// toLogAttributes reads args as slog style key/value pairs. A trailing key without a value and
// pairs with a non-string key are skipped.
func toLogAttributes(args []any) []log.KeyValue {
	attrs := make([]log.KeyValue, 0, len(args)/2)

	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}

		attrs = append(attrs, toLogAttribute(key, args[i+1]))
	}

	return attrs
}

func toLogAttribute(key string, value any) log.KeyValue {
	switch v := value.(type) {
	case string:
		return log.String(key, v)
	case int:
		return log.Int(key, v)
	case int64:
		return log.Int64(key, v)
	case uint:
		return log.Int64(key, int64(v))
	case float64:
		return log.Float64(key, v)
	case bool:
		return log.Bool(key, v)
	case error:
		return log.String(key, v.Error())
	case fmt.Stringer:
		return log.String(key, v.String())
	default:
		return log.String(key, fmt.Sprint(v))
	}
}
