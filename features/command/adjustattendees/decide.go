package adjustattendees

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Decide implements the business logic to determine whether the attendee counter should move.
//
// Business Rules:
//
//	GIVEN: An existing Event
//	WHEN: AdjustAttendees command is received
//	THEN: EventAttendeesAdjusted event is generated with the clamped delta
//	CLAMPING: Attendees stay within [tickets held by registrations, capacity]
//	ERROR: NotFound if the Event is unknown or deleted
//	IDEMPOTENCY: If the clamped delta is zero, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	event := core.ProjectEventState(history, command.EventID.String())

	if !event.Exists() {
		return core.ErrorDecision(core.NotFoundError("event"))
	}

	effectiveDelta := event.AdjustedAttendees(command.Delta) - event.Attendees

	if effectiveDelta == 0 {
		return core.IdempotentDecision()
	}

	return core.SuccessDecision(
		core.BuildEventAttendeesAdjusted(command.EventID, effectiveDelta, command.OccurredAt),
	)
}

// BuildEventFilter creates the filter for every event that moves the attendee counter of the Event.
func BuildEventFilter(command Command) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
			core.EventDeletedEventType,
			core.EventAttendeesAdjustedEventType,
			core.TicketsRegisteredEventType,
			core.RegistrationCanceledEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("EventID", command.EventID.String()),
		).
		Finalize()
}
