package startsession

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	userExists bool
	session    core.SessionState
}

// Decide implements the business logic to determine whether a session should be started.
//
// Business Rules:
//
//	GIVEN: A user with UserID
//	WHEN: StartSession command is received
//	THEN: SessionStarted event is generated, it replaces an active session of any user
//	ERROR: NotFound if the user does not exist
//	IDEMPOTENCY: If this session is already active, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	s := project(history, command)

	if !s.userExists {
		return core.ErrorDecision(core.NotFoundError("user"))
	}

	if s.session.Active && s.session.SessionID == command.SessionID.String() {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildSessionStarted(command.SessionID, command.UserID, command.OccurredAt),
	)
}

func project(history core.DomainEvents, command Command) state {
	return state{
		userExists: core.ProjectUser(history, command.UserID.String()).Exists,
		session:    core.ProjectSession(history),
	}
}

// BuildEventFilter creates the filter for the session slot plus the sign up of the user.
func BuildEventFilter(command Command) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.SessionStartedEventType,
			core.SessionEndedEventType,
		).
		OrMatching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", command.UserID.String()),
		).
		Finalize()
}
