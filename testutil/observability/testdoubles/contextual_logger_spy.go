package testdoubles

import (
	"context"
	"sync"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// ContextualLoggerSpy captures contextual logging calls. It also satisfies eventstore.Logger.
type ContextualLoggerSpy struct {
	mu      sync.Mutex
	records []SpyLogRecord
}

// SpyLogRecord represents one recorded log call.
type SpyLogRecord struct {
	Level   string
	Message string
	Args    []any
}

func NewContextualLoggerSpy() *ContextualLoggerSpy {
	return &ContextualLoggerSpy{}
}

func (s *ContextualLoggerSpy) DebugContext(_ context.Context, msg string, args ...any) {
	s.record(LevelDebug, msg, args)
}

func (s *ContextualLoggerSpy) InfoContext(_ context.Context, msg string, args ...any) {
	s.record(LevelInfo, msg, args)
}

func (s *ContextualLoggerSpy) WarnContext(_ context.Context, msg string, args ...any) {
	s.record(LevelWarn, msg, args)
}

func (s *ContextualLoggerSpy) ErrorContext(_ context.Context, msg string, args ...any) {
	s.record(LevelError, msg, args)
}

func (s *ContextualLoggerSpy) Debug(msg string, args ...any) { s.record(LevelDebug, msg, args) }
func (s *ContextualLoggerSpy) Info(msg string, args ...any)  { s.record(LevelInfo, msg, args) }
func (s *ContextualLoggerSpy) Warn(msg string, args ...any)  { s.record(LevelWarn, msg, args) }
func (s *ContextualLoggerSpy) Error(msg string, args ...any) { s.record(LevelError, msg, args) }

func (s *ContextualLoggerSpy) record(level, msg string, args []any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, SpyLogRecord{Level: level, Message: msg, Args: args})
}

// Records returns a copy of all captured records in call order.
func (s *ContextualLoggerSpy) Records() []SpyLogRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := make([]SpyLogRecord, len(s.records))
	copy(records, s.records)

	return records
}

// HasLog checks if a record with level and message was captured.
func (s *ContextualLoggerSpy) HasLog(level, message string) bool {
	for _, record := range s.Records() {
		if record.Level == level && record.Message == message {
			return true
		}
	}

	return false
}

func (s *ContextualLoggerSpy) HasInfoLog(message string) bool {
	return s.HasLog(LevelInfo, message)
}

func (s *ContextualLoggerSpy) HasWarnLog(message string) bool {
	return s.HasLog(LevelWarn, message)
}

func (s *ContextualLoggerSpy) HasErrorLog(message string) bool {
	return s.HasLog(LevelError, message)
}
