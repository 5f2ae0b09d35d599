package signupuser

import (
	"context"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// PasswordHasher is what the CommandHandler needs to hash passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// CommandHandler orchestrates the complete command processing workflow with pure business logic and retry.
// It handles the core event sourcing workflow: Query -> Unmarshal -> Decide -> Append.
// External wrappers handle all observability concerns.
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

// Handle validates, hashes the password once and then runs the Query -> Decide -> Append cycle with retries.
// It returns the created user.
func (h CommandHandler) Handle(ctx context.Context, command Command) (core.UserState, shell.HandlerResult, error) {
	if err := Validate(command); err != nil {
		return core.UserState{}, shell.NewErrorResult(shell.RetryMetrics{Attempts: 1, LastErrorType: shell.ErrorTypeOther}), err
	}

	passwordHash, err := h.hasher.Hash(command.Password)
	if err != nil {
		return core.UserState{}, shell.NewErrorResult(shell.RetryMetrics{Attempts: 1, LastErrorType: shell.ErrorTypeOther}), shell.ClassifyError(err)
	}

	var (
		user         core.UserState
		isIdempotent bool
	)

	retryMetrics, err := shell.RetryWithExponentialBackoff(ctx, func(retryCtx context.Context) error {
		var execErr error
		user, isIdempotent, execErr = h.executeCommand(retryCtx, command, passwordHash)

		return execErr
	}, h.retryOptions...)

	if err != nil {
		return core.UserState{}, shell.NewErrorResult(retryMetrics), shell.ClassifyError(err)
	}

	if isIdempotent {
		return user, shell.NewIdempotentResult(retryMetrics), nil
	}

	return user, shell.NewSuccessResult(retryMetrics), nil
}

// executeCommand contains the core command processing logic that can be retried.
func (h CommandHandler) executeCommand(ctx context.Context, command Command, passwordHash string) (core.UserState, bool, error) {
	filter := BuildEventFilter(command.Profile.Email)

	ctx = eventstore.WithStrongConsistency(ctx)

	storableEvents, maxSequenceNumber, err := h.eventStore.Query(ctx, filter)
	if err != nil {
		return core.UserState{}, false, err
	}

	history, err := shell.DomainEventsFrom(storableEvents)
	if err != nil {
		return core.UserState{}, false, err
	}

	result := Decide(history, command, passwordHash)

	if err = result.HasError(); err != nil {
		return core.UserState{}, false, err
	}

	if result.IsIdempotent() {
		return core.ProjectUser(history, command.UserID.String()), true, nil
	}

	storableEvent, err := shell.StorableEventFrom(result.Event, shell.NewCommandEventMetadata())
	if err != nil {
		return core.UserState{}, false, err
	}

	if err = h.eventStore.Append(ctx, filter, maxSequenceNumber, storableEvent); err != nil {
		return core.UserState{}, false, err
	}

	return core.ProjectUser(append(history, result.Event), command.UserID.String()), false, nil
}
