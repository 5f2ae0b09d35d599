package registerforevent

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core event sourcing workflow: Query -> Unmarshal -> Decide -> Append.
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

// Handle validates and then runs the Query -> Decide -> Append cycle with retries.
// It returns the Registration of the user for the Event, merged with earlier registrations.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.RegistrationState, shell.HandlerResult, error) {
	if err := Validate(command); err != nil {
		return core.RegistrationState{}, shell.NewErrorResult(shell.RetryMetrics{Attempts: 1, LastErrorType: shell.ErrorTypeOther}), err
	}

	var registration core.RegistrationState

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		registration, execErr = h.executeCommand(retryCtx, command)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return core.RegistrationState{}, shell.NewErrorResult(retryMetrics), shell.ClassifyError(err)
	}

	return registration, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command) (core.RegistrationState, error) {
	filter := BuildEventFilter(command)

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return core.RegistrationState{}, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.RegistrationState{}, err
	}

	result := Decide(history, command)

	if err = result.HasError(); err != nil {
		return core.RegistrationState{}, err
	}

	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandEventMetadata())
	if err != nil {
		return core.RegistrationState{}, err
	}

	if err = h.eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return core.RegistrationState{}, err
	}

	return core.ProjectRegistration(
		append(history, result.Event),
		command.EventID.String(),
		command.UserID.String(),
	), nil
}
