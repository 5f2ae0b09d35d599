package observable

import (
	"context"
	"time"

	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// CommandWrapper instruments any core command handler with metrics, tracing and logging.
// Business logic and retries stay in the wrapped handler.
type CommandWrapper[C shell.Command, V any] struct {
	coreHandler      shell.CoreCommandHandler[C, V]
	commandType      string
	metricsCollector shell.MetricsCollector
	tracingCollector shell.TracingCollector
	contextualLogger shell.ContextualLogger
	logger           shell.Logger
}

// NewCommandWrapper creates a new observable wrapper around the core command handler.
func NewCommandWrapper[C shell.Command, V any](
	coreHandler shell.CoreCommandHandler[C, V],
	opts ...CommandOption[C, V],
) (*CommandWrapper[C, V], error) {
	// Extract command type from a zero-value instance
	var zeroCommand C

	wrapper := &CommandWrapper[C, V]{
		coreHandler: coreHandler,
		commandType: zeroCommand.CommandType(),
	}

	for _, opt := range opts {
		if err := opt(wrapper); err != nil {
			return nil, err
		}
	}

	return wrapper, nil
}

// Handle delegates to the core handler and translates its HandlerResult and error into metrics,
// a finished span and log records.
func (w *CommandWrapper[C, V]) Handle(ctx context.Context, command C) (V, shell.HandlerResult, error) {
	commandStart := time.Now()
	ctx, span := shell.StartCommandSpan(ctx, w.tracingCollector, w.commandType)
	shell.LogCommandStart(ctx, w.logger, w.contextualLogger, w.commandType)

	value, result, err := w.coreHandler.Handle(ctx, command)

	duration := time.Since(commandStart)
	status := shell.CommandStatusFor(result, err)

	shell.RecordRetryMetrics(ctx, w.metricsCollector, w.commandType, result)
	shell.RecordCommandMetrics(ctx, w.metricsCollector, w.commandType, status, duration)
	shell.FinishSpan(w.tracingCollector, span, status, duration, err)
	shell.LogCommandOutcome(ctx, w.logger, w.contextualLogger, w.commandType, status, duration, err)

	return value, result, err
}

// CommandOption defines a functional option for configuring CommandWrapper.
type CommandOption[C shell.Command, V any] func(*CommandWrapper[C, V]) error

// WithCommandMetrics sets the metrics collector for the CommandWrapper.
func WithCommandMetrics[C shell.Command, V any](collector shell.MetricsCollector) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.metricsCollector = collector
		return nil
	}
}

// WithCommandTracing sets the tracing collector for the CommandWrapper.
func WithCommandTracing[C shell.Command, V any](collector shell.TracingCollector) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.tracingCollector = collector
		return nil
	}
}

// WithCommandContextualLogging sets the contextual logger for the CommandWrapper.
func WithCommandContextualLogging[C shell.Command, V any](logger shell.ContextualLogger) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.contextualLogger = logger
		return nil
	}
}

// WithCommandLogging sets the basic logger, used only if no contextual logger is set.
func WithCommandLogging[C shell.Command, V any](logger shell.Logger) CommandOption[C, V] {
	return func(w *CommandWrapper[C, V]) error {
		w.logger = logger
		return nil
	}
}
