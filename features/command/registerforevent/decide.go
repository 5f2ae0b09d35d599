package registerforevent

import (
	"fmt"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Validate checks the contact details in form order and then the ticket count. It needs no history.
func Validate(command Command) error {
	if err := core.ValidateContactDetails(command.Contact); err != nil {
		return err
	}

	if command.TicketCount < 1 {
		return core.NewValidationError(core.FieldTicketCount, core.ReasonTicketCountTooLow)
	}

	return nil
}

// Decide implements the business logic to determine whether tickets can be registered.
//
// Business Rules:
//
//	GIVEN: An existing Event with spotsRemaining = capacity - attendees
//	WHEN: RegisterForEvent command is received
//	THEN: TicketsRegistered event is generated
//	ERROR: ValidationError for the first missing contact field or a ticket count below 1
//	ERROR: NotFound if the Event is unknown or deleted
//	ERROR: CapacityExceeded if fewer spots remain than tickets are requested
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := Validate(command); err != nil {
		return core.ErrorDecision(err)
	}

	event := core.ProjectEventState(history, command.EventID.String())

	if !event.Exists() {
		return core.ErrorDecision(core.NotFoundError("event"))
	}

	if spots := event.SpotsRemaining(); spots < command.TicketCount {
		return core.ErrorDecision(fmt.Errorf("%w: %d spots remaining", core.ErrCapacityExceeded, spots))
	}

	return core.SuccessDecision(
		core.BuildTicketsRegistered(
			command.EventID,
			command.UserID,
			event.Title,
			command.TicketCount,
			command.Contact,
			command.OccurredAt,
		),
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
