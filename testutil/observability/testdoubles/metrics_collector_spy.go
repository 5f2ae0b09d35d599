package testdoubles

import (
	"maps"
	"sync"
	"time"
)

const (
	kindDuration = "duration"
	kindCounter  = "counter"
	kindValue    = "value"
)

// MetricsCollectorSpy captures metrics calls. It only implements the non-contextual
// eventstore.MetricsCollector, which also covers the fallback path of the callers.
type MetricsCollectorSpy struct {
	mu      sync.Mutex
	records []SpyMetricRecord
}

// SpyMetricRecord represents one recorded metrics call.
type SpyMetricRecord struct {
	Kind     string
	Metric   string
	Duration time.Duration
	Value    float64
	Labels   map[string]string
}

func NewMetricsCollectorSpy() *MetricsCollectorSpy {
	return &MetricsCollectorSpy{}
}

func (s *MetricsCollectorSpy) RecordDuration(metric string, duration time.Duration, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: kindDuration, Metric: metric, Duration: duration, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) IncrementCounter(metric string, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: kindCounter, Metric: metric, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) RecordValue(metric string, value float64, labels map[string]string) {
	s.record(SpyMetricRecord{Kind: kindValue, Metric: metric, Value: value, Labels: maps.Clone(labels)})
}

func (s *MetricsCollectorSpy) record(record SpyMetricRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
}

// Records returns a copy of all captured records in call order.
func (s *MetricsCollectorSpy) Records() []SpyMetricRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyMetricRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasDurationRecordForMetric starts a fluent check for a duration record.
func (s *MetricsCollectorSpy) HasDurationRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcher(kindDuration, metric)
}

// HasCounterRecordForMetric starts a fluent check for a counter record.
func (s *MetricsCollectorSpy) HasCounterRecordForMetric(metric string) *MetricRecordMatcher {
	return s.matcher(kindCounter, metric)
}

// CountCounterRecordsForMetric counts how many counter records exist for metric.
func (s *MetricsCollectorSpy) CountCounterRecordsForMetric(metric string) int {
	return len(s.matcher(kindCounter, metric).candidates)
}

func (s *MetricsCollectorSpy) matcher(kind, metric string) *MetricRecordMatcher {
	candidates := make([]SpyMetricRecord, 0)

	for _, record := range s.Records() {
		if record.Kind == kind && record.Metric == metric {
			candidates = append(candidates, record)
		}
	}

	return &MetricRecordMatcher{candidates: candidates}
}

// MetricRecordMatcher narrows down the records of one metric. Assert is true if any record
// matches all conditions.
type MetricRecordMatcher struct {
	candidates []SpyMetricRecord
}

func (m *MetricRecordMatcher) WithLabel(key, value string) *MetricRecordMatcher {
	matching := make([]SpyMetricRecord, 0, len(m.candidates))

	for _, record := range m.candidates {
		if record.Labels[key] == value {
			matching = append(matching, record)
		}
	}

	m.candidates = matching

	return m
}

func (m *MetricRecordMatcher) WithStatus(status string) *MetricRecordMatcher {
	return m.WithLabel("status", status)
}

func (m *MetricRecordMatcher) Assert() bool {
	return len(m.candidates) > 0
}
