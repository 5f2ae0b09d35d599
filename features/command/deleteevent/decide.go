package deleteevent

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Decide implements the business logic to determine whether an Event should be deleted.
//
// Business Rules:
//
//	GIVEN: An Event created by DeletedBy
//	WHEN: DeleteEvent command is received
//	THEN: EventDeleted event is generated
//	ERROR: NotFound if the Event was created by somebody else
//	IDEMPOTENCY: If the Event is unknown or already deleted, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	event := core.ProjectEventState(history, command.EventID.String())

	if !event.Exists() {
		return core.IdempotentDecision()
	}

	if event.CreatedBy != command.DeletedBy.String() {
		return core.ErrorDecision(core.NotFoundError("event"))
	}

	return core.SuccessDecision(
		core.BuildEventDeleted(command.EventID, command.DeletedBy, command.OccurredAt),
	)
}

// BuildEventFilter creates the filter for the creation and deletion of the Event.
func BuildEventFilter(command Command) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
			core.EventDeletedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("EventID", command.EventID.String()),
		).
		Finalize()
}
