package app

import (
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/eventhub/eventstore/oteladapters"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// Option configures Open.
type Option func(*options)

type options struct {
	now              func() time.Time
	logHandler       slog.Handler
	contextualLogger shell.ContextualLogger
	metrics          shell.MetricsCollector
	tracing          shell.TracingCollector
}

// WithClock replaces time.Now for event timestamps and session tokens.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLogHandler sends the logs of the engines and handlers to handler, with trace_id and span_id
// attributes added when a span is active. The default is JSON on stderr at the configured level.
func WithLogHandler(handler slog.Handler) Option {
	return func(o *options) {
		o.logHandler = handler
	}
}

// WithOTelLogBridge sends the logs to the global OpenTelemetry LoggerProvider instead.
func WithOTelLogBridge(name string) Option {
	return func(o *options) {
		o.contextualLogger = oteladapters.NewSlogBridgeLogger(name)
	}
}

// WithMetrics records engine and handler metrics with meter.
func WithMetrics(meter metric.Meter) Option {
	return func(o *options) {
		o.metrics = oteladapters.NewMetricsCollector(meter)
	}
}

// WithTracing creates spans for every command, query and database operation with tracer.
func WithTracing(tracer trace.Tracer) Option {
	return func(o *options) {
		o.tracing = oteladapters.NewTracingCollector(tracer)
	}
}
