package createevent

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
type CommandHandler struct {
	eventStore   shell.EventStore
	retryOptions []shell.RetryOption
}

// Option configures a CommandHandler.
type Option func(*CommandHandler)

// WithRetryOptions sets a custom retry configuration for the handler.
func WithRetryOptions(opts ...shell.RetryOption) Option {
	return func(h *CommandHandler) {
		h.retryOptions = opts
	}
}

// NewCommandHandler creates a new CommandHandler with optional configuration.
func NewCommandHandler(eventStore shell.EventStore, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle returns the created Event.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.EventState, shell.HandlerResult, error) {
	var (
		event        core.EventState
		isIdempotent bool
	)

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		event, isIdempotent, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return core.EventState{}, shell.NewErrorResult(retryMetrics), shell.ClassifyError(err)
	}

	if isIdempotent {
		return event, shell.NewIdempotentResult(retryMetrics), nil
	}

	return event, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.EventState, bool, error) {
	filter := BuildEventFilter(command)
	eventID := command.EventID.String()

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return core.EventState{}, false, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.EventState{}, false, err
	}

	result := Decide(history, command)

	if err = result.HasError(); err != nil {
		return core.EventState{}, false, err
	}

	if result.IsIdempotent() {
		return core.ProjectEventState(history, eventID), true, nil
	}

	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandEventMetadata())
	if err != nil {
		return core.EventState{}, false, err
	}

	if err = h.eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return core.EventState{}, false, err
	}

	return core.ProjectEventState(append(history, result.Event), eventID), false, nil
}
