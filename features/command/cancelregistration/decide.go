package cancelregistration

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Decide implements the business logic to determine whether a Registration can be canceled.
//
// Business Rules:
//
//	GIVEN: A Registration of UserID for EventID
//	WHEN: CancelRegistration command is received
//	THEN: RegistrationCanceled event is generated with the ticket count of the Registration
//	ERROR: NotFound if the user has no Registration for the Event
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	registration := core.ProjectRegistration(history, command.EventID.String(), command.UserID.String())

	if !registration.Exists {
		return core.ErrorDecision(core.NotFoundError("registration"))
	}

	return core.SuccessDecision(
		core.BuildRegistrationCanceled(command.EventID, command.UserID, registration.TicketCount, command.OccurredAt),
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
