// Package testdoubles provides spies for the observability interfaces of package eventstore:
//   - MetricsCollectorSpy: captures durations, counters and values with their labels
//   - TracingCollectorSpy: captures started and finished spans
//   - ContextualLoggerSpy: captures log records of all levels
//
// The spies are safe for concurrent use.
package testdoubles
