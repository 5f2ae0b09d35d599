package endsession

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Decide implements the business logic to determine whether the active session should be ended.
//
// Business Rules:
//
//	GIVEN: The session slot
//	WHEN: EndSession command is received
//	THEN: SessionEnded event is generated for the active session
//	IDEMPOTENCY: If no session is active, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	session := core.ProjectSession(history)

	if !session.Active {
		return core.IdempotentDecision()
	}

	sessionID, err := uuid.Parse(session.SessionID)
	if err != nil {
		return core.ErrorDecision(err)
	}

	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return core.ErrorDecision(err)
	}

	return core.SuccessDecision(core.BuildSessionEnded(sessionID, userID, command.OccurredAt))
}

// BuildEventFilter creates the filter for the session slot.
func BuildEventFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.SessionStartedEventType,
			core.SessionEndedEventType,
		).
		Finalize()
}
