package testdoubles

import (
	"context"
	"maps"
	"sync"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

// SpySpanContext is the span handed out by TracingCollectorSpy.
type SpySpanContext struct {
	mu         sync.Mutex
	name       string
	status     string
	attributes map[string]string
}

func (c *SpySpanContext) SetStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = status
}

func (c *SpySpanContext) AddAttribute(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.attributes[key] = value
}

// SpySpanRecord is a finished span.
type SpySpanRecord struct {
	Name       string
	Status     string
	Attributes map[string]string
}

// TracingCollectorSpy captures spans. Only finished spans are recorded.
type TracingCollectorSpy struct {
	mu      sync.Mutex
	started int
	spans   []SpySpanRecord
}

func NewTracingCollectorSpy() *TracingCollectorSpy {
	return &TracingCollectorSpy{}
}

func (s *TracingCollectorSpy) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, eventstore.SpanContext) {
	s.mu.Lock()
	s.started++
	s.mu.Unlock()

	attributes := maps.Clone(attrs)
	if attributes == nil {
		attributes = make(map[string]string)
	}

	return ctx, &SpySpanContext{name: name, attributes: attributes}
}

func (s *TracingCollectorSpy) FinishSpan(spanCtx eventstore.SpanContext, status string, attrs map[string]string) {
	span, ok := spanCtx.(*SpySpanContext)
	if !ok {
		return
	}

	span.mu.Lock()
	attributes := maps.Clone(span.attributes)
	maps.Copy(attributes, attrs)
	record := SpySpanRecord{Name: span.name, Status: status, Attributes: attributes}
	span.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.spans = append(s.spans, record)
}

// StartedSpanCount includes spans that were never finished.
func (s *TracingCollectorSpy) StartedSpanCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.started
}

// FinishedSpans returns a copy of all finished spans in finish order.
func (s *TracingCollectorSpy) FinishedSpans() []SpySpanRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	spans := make([]SpySpanRecord, len(s.spans))
	copy(spans, s.spans)

	return spans
}
