package resetpassword

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// PasswordHasher is what the CommandHandler needs to hash passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
type CommandHandler struct {
	eventStore   shell.EventStore
	hasher       PasswordHasher
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
func NewCommandHandler(eventStore shell.EventStore, hasher PasswordHasher, opts ...Option) CommandHandler {
	handler := CommandHandler{
		eventStore: eventStore,
		hasher:     hasher,
	}

	for _, opt := range opts {
		opt(&handler)
	}

	return handler
}

// Handle validates, hashes the new password once and runs the Query -> Decide -> Append cycle with retries.
func (h CommandHandler) Handle(ctx context.Context, command Command) (shell.NoValue, shell.HandlerResult, error) {
	if err := Validate(command); err != nil {
		return shell.NoValue{}, shell.NewErrorResult(shell.RetryMetrics{Attempts: 1, LastErrorType: shell.ErrorTypeOther}), err
	}

	passwordHash, err := h.hasher.Hash(command.NewPassword)
	if err != nil {
		return shell.NoValue{}, shell.NewErrorResult(shell.RetryMetrics{Attempts: 1, LastErrorType: shell.ErrorTypeOther}), shell.ClassifyError(err)
	}

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		return h.executeCommand(retryCtx, command, passwordHash)
	}, h.retryOptions...)

	if err != nil {
		return shell.NoValue{}, shell.NewErrorResult(retryMetrics), shell.ClassifyError(err)
	}

	return shell.NoValue{}, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command, passwordHash string) error {
	filter := BuildEventFilter(command.Email)

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return err
	}

	result := Decide(history, command, passwordHash)

	if err = result.HasError(); err != nil {
		return err
	}

	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandEventMetadata())
	if err != nil {
		return err
	}

	return h.eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent)
}
