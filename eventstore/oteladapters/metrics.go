package oteladapters

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

const unitSeconds = "s"

// MetricsCollector maps durations to histograms (in seconds), counters to Int64Counters and values
// to gauges. Instruments are created on first use and cached by name. It is safe for concurrent use.
type MetricsCollector struct {
	meter metric.Meter

	mu         sync.RWMutex
	histograms map[string]metric.Float64Histogram
	counters   map[string]metric.Int64Counter
	gauges     map[string]metric.Float64Gauge
}

var (
	_ eventstore.MetricsCollector           = (*MetricsCollector)(nil)
	_ eventstore.ContextualMetricsCollector = (*MetricsCollector)(nil)
)

func NewMetricsCollector(meter metric.Meter) *MetricsCollector {
	return &MetricsCollector{
		meter:      meter,
		histograms: make(map[string]metric.Float64Histogram),
		counters:   make(map[string]metric.Int64Counter),
		gauges:     make(map[string]metric.Float64Gauge),
	}
}

func (m *MetricsCollector) RecordDuration(name string, duration time.Duration, labels map[string]string) {
	m.RecordDurationContext(context.Background(), name, duration, labels)
}

func (m *MetricsCollector) RecordDurationContext(ctx context.Context, name string, duration time.Duration, labels map[string]string) {
	histogram, ok := m.histogram(name)
	if !ok {
		return
	}

	histogram.Record(ctx, duration.Seconds(), metric.WithAttributes(toAttributes(labels)...))
}

func (m *MetricsCollector) IncrementCounter(name string, labels map[string]string) {
	m.IncrementCounterContext(context.Background(), name, labels)
}

func (m *MetricsCollector) IncrementCounterContext(ctx context.Context, name string, labels map[string]string) {
	counter, ok := m.counter(name)
	if !ok {
		return
	}

	counter.Add(ctx, 1, metric.WithAttributes(toAttributes(labels)...))
}

func (m *MetricsCollector) RecordValue(name string, value float64, labels map[string]string) {
	m.RecordValueContext(context.Background(), name, value, labels)
}

func (m *MetricsCollector) RecordValueContext(ctx context.Context, name string, value float64, labels map[string]string) {
	gauge, ok := m.gauge(name)
	if !ok {
		return
	}

	gauge.Record(ctx, value, metric.WithAttributes(toAttributes(labels)...))
}

func (m *MetricsCollector) histogram(name string) (metric.Float64Histogram, bool) {
	return cachedInstrument(&m.mu, m.histograms, name, func() (metric.Float64Histogram, error) {
		return m.meter.Float64Histogram(name, metric.WithUnit(unitSeconds))
	})
}

func (m *MetricsCollector) counter(name string) (metric.Int64Counter, bool) {
	return cachedInstrument(&m.mu, m.counters, name, func() (metric.Int64Counter, error) {
		return m.meter.Int64Counter(name)
	})
}

func (m *MetricsCollector) gauge(name string) (metric.Float64Gauge, bool) {
	return cachedInstrument(&m.mu, m.gauges, name, func() (metric.Float64Gauge, error) {
		return m.meter.Float64Gauge(name)
	})
}

// cachedInstrument returns false if the meter refuses to create the instrument, e.g. for an
// invalid name. The measurement is dropped in that case.
func cachedInstrument[T any](mu *sync.RWMutex, cache map[string]T, name string, create func() (T, error)) (T, bool) {
	mu.RLock()
	instrument, found := cache[name]
	mu.RUnlock()

	if found {
		return instrument, true
	}

	mu.Lock()
	defer mu.Unlock()

	if instrument, found = cache[name]; found {
		return instrument, true
	}

	instrument, err := create()
	if err != nil {
		var zero T
		return zero, false
	}

	cache[name] = instrument

	return instrument, true
}

func toAttributes(labels map[string]string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, len(labels))
	for key, value := range labels {
		attrs = append(attrs, attribute.String(key, value))
	}

	return attrs
}
