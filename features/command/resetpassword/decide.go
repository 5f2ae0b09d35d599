package resetpassword

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Validate checks the confirmation first and then the length.
func Validate(command Command) error {
	if command.NewPassword != command.Confirmation {
		return core.NewValidationError(core.FieldPasswordConfirm, core.ReasonPasswordsMismatch)
	}

	return core.ValidatePassword(command.NewPassword)
}

// Decide implements the business logic to determine whether a password should be reset.
//
// Business Rules:
//
//	GIVEN: An email, a new password with its confirmation and the bcrypt hash of the new password
//	WHEN: ResetPassword command is received
//	THEN: UserPasswordReset event is generated for the account holding the email
//	ERROR: "Passwords do not match" or "Password must be at least 6 characters"
//	ERROR: NotFound if no account holds the email
func Decide(history core.DomainEvents, command Command, passwordHash string) core.DecisionResult {
	if err := Validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	owner, found := core.EmailOwner(history, command.Email)
	if !found {
		return core.ErrorDecision(core.NotFoundError("user"))
	}

	userID, err := uuid.Parse(owner)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(
		core.BuildUserPasswordReset(userID, command.Email, passwordHash, command.OccurredAt),
	)
}

// BuildEventFilter creates the filter for all user events that ever carried the email address,
// including earlier resets of it.
func BuildEventFilter(email string) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("Email", email),
			eventstore.P("PreviousEmail", email),
		).
		OrMatching().
		AnyEventTypeOf(
			core.UserPasswordResetEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("Email", email),
		).
		Finalize()
}
