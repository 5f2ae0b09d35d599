package updateuserprofile

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	user            core.UserState
	newEmailIsTaken bool
}

// Decide implements the business logic to determine whether a profile should be updated.
//
// Business Rules:
//
//	GIVEN: A user with UserID
//	WHEN: UpdateUserProfile command is received
//	THEN: UserProfileUpdated event with the merged profile is generated
//	ERROR: NotFound if the user does not exist
//	ERROR: ValidationError if firstName, lastName or email would become blank
//	ERROR: "An account with this email already exists" if another user holds the new email
//	IDEMPOTENCY: If the merged profile equals the current one, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command)

	if !s.user.Exists {
		return core.ErrorDecision(core.NotFoundError("user"))
	}

	current := s.user.Profile()
	updated := command.Changes.ApplyTo(current)

	if err := core.ValidateProfile(updated); err != nil {
		return core.ErrorDecision(err)
	}

	if updated == current {
		return core.IdempotentDecision()
	}

	if s.newEmailIsTaken {
		return core.ErrorDecision(core.NewValidationError(core.FieldEmail, core.ReasonEmailTaken))
	}

	return core.SuccessDecision(
		core.BuildUserProfileUpdated(command.UserID, current.Email, updated, command.OccurredAt),
	)
}

func project(history core.DomainEvents, command Command) state {
	userID := command.UserID.String()
	s := state{user: core.ProjectUser(history, userID)}

	if command.Changes.Email != nil && *command.Changes.Email != s.user.Email {
		owner, taken := core.EmailOwner(history, *command.Changes.Email)
		s.newEmailIsTaken = taken && owner != userID
	}

	return s
}

// BuildEventFilter creates the filter for the events of the user plus, for an email change, all
// user events that carried the new address.
func BuildEventFilter(command Command) eventstore.Filter {
	userEvents := eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
			core.UserPasswordResetEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", command.UserID.String()),
		)

	if command.Changes.Email == nil {
		return userEvents.Finalize()
	}

	return userEvents.
		OrMatching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("Email", *command.Changes.Email),
			eventstore.P("PreviousEmail", *command.Changes.Email),
		).
		Finalize()
}
