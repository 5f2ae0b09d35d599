package createevent

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// state represents the current state projected from the event history.
type state struct {
	eventExists bool
	creator     core.UserState
}

// Decide implements the business logic to determine whether an Event should be created.
//
// Business Rules:
//
//	GIVEN: A draft and the id of the creating user
//	WHEN: CreateEvent command is received
//	THEN: EventCreated event is generated with the creator's full name as organizer
//	ERROR: ValidationError for the first invalid field of the draft
//	ERROR: NotFound if the creating user does not exist
//	IDEMPOTENCY: If an Event with this id already exists, no event generated (no-op)
func Decide(history core.DomainEvents, command Command) core.DecisionResult {
	if err := core.ValidateEventDraft(command.Draft); err != nil {
		return core.ErrorDecision(err)
	}

	s := project(history, command)

	if s.eventExists {
		return core.IdempotentDecision()
	}

	if !s.creator.Exists {
		return core.ErrorDecision(core.NotFoundError("user"))
	}

	return core.SuccessDecision(
		core.BuildEventCreated(
			command.EventID,
			command.Draft,
			core.FullName(s.creator.FirstName, s.creator.LastName),
			command.CreatedBy,
			command.OccurredAt,
		),
	)
}

func project(history core.DomainEvents, command Command) state {
	return state{
		eventExists: core.ProjectEventState(history, command.EventID.String()).Created,
		creator:     core.ProjectUser(history, command.CreatedBy.String()),
	}
}

// BuildEventFilter creates the filter for an earlier creation with the same id plus the profile
// events of the creator.
func BuildEventFilter(command Command) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.EventCreatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("EventID", command.EventID.String()),
		).
		OrMatching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", command.CreatedBy.String()),
		).
		Finalize()
}
