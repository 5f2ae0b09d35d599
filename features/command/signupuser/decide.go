package signupuser

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	emailIsTaken    bool
	userIDIsTheSame bool
}

// Validate checks the input in form order. It needs no history and runs before the password is hashed.
func Validate(command Command) error {
	err := core.RequireAll(
		core.RequiredField{Field: core.FieldFirstName, Value: command.Profile.FirstName, Reason: core.ReasonFirstNameRequired},
		core.RequiredField{Field: core.FieldLastName, Value: command.Profile.LastName, Reason: core.ReasonLastNameRequired},
		core.RequiredField{Field: core.FieldEmail, Value: command.Profile.Email, Reason: core.ReasonEmailRequired},
	)
	if err != nil {
		return err
	}

	return core.ValidatePassword(command.Password)
}

// Decide implements the business logic to determine whether a user account should be created.
//
// Business Rules:
//
//	GIVEN: A profile, a password and its bcrypt hash
//	WHEN: SignUpUser command is received
//	THEN: UserSignedUp event is generated
//	ERROR: ValidationError for the first missing field or a password shorter than 6 characters
//	ERROR: "An account with this email already exists" if another user holds the email
//	IDEMPOTENCY: If this user id already holds the email, no event generated (no-op)
func Decide(history core.DomainEvents, command Command, passwordHash string) core.DecisionResult {
	if err := Validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	s := project(history, command)

	if s.userIDIsTheSame {
		return core.IdempotentDecision()
	}

	if s.emailIsTaken {
		return core.ErrorDecision(core.NewValidationError(core.FieldEmail, core.ReasonEmailTaken))
	}

	return core.SuccessDecision(
		core.BuildUserSignedUp(command.UserID, command.Profile, passwordHash, command.OccurredAt),
	)
}

func project(history core.DomainEvents, command Command) state {
	owner, taken := core.EmailOwner(history, command.Profile.Email)

	return state{
		emailIsTaken:    taken,
		userIDIsTheSame: taken && owner == command.UserID.String(),
	}
}

// BuildEventFilter creates the filter for all user events that ever carried the email address.
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
		Finalize()
}
