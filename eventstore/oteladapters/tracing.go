package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

const attrStatus = "status"

// TracingCollector starts OpenTelemetry spans for event store operations and command and query
// handlers.
type TracingCollector struct {
	tracer trace.Tracer
}

var _ eventstore.TracingCollector = (*TracingCollector)(nil)

func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(toAttributes(attrs)...))

	return spanCtx, &OTelSpanContext{span: span}
}

// FinishSpan sets the final attributes and the status, then ends the span. Spans that were not
// started by a TracingCollector are ignored.
func (t *TracingCollector) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	otelSpan, ok := spanCtx.(*OTelSpanContext)
	if !ok {
		return
	}

	otelSpan.span.SetAttributes(toAttributes(attrs)...)
	otelSpan.SetStatus(status)
	otelSpan.span.End()
}

// OTelSpanContext wraps a trace.Span.
type OTelSpanContext struct {
	span trace.Span
}

var _ eventstore.SpanContext = (*OTelSpanContext)(nil)

// SetStatus maps the status strings used by the engines and handlers to OTel codes. Business
// outcomes like "idempotent" or "capacity_exceeded" are not errors of the operation, they end up
// as a status attribute on an unset span status.
func (s *OTelSpanContext) SetStatus(status string) {
	switch status {
	case "success":
		s.span.SetStatus(codes.Ok, "")
	case "error":
		s.span.SetStatus(codes.Error, "operation failed")
	case "conflict":
		s.span.SetStatus(codes.Error, "concurrency conflict")
	case "canceled":
		s.span.SetStatus(codes.Error, "operation canceled")
	case "timeout":
		s.span.SetStatus(codes.Error, "operation timed out")
	default:
		s.span.SetAttributes(attribute.String(attrStatus, status))
	}
}

func (s *OTelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}
