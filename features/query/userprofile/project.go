package userprofile

import (
	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectUserProfile implements the query logic to read one user.
//
// Query Logic:
//
//	GIVEN: A user with UserID
//	WHEN: UserProfile query is executed
//	THEN: the current UserState is returned
//	ERROR: NotFound if the user never signed up
func ProjectUserProfile(history core.DomainEvents, query Query) (core.UserState, error) {
	user := core.ProjectUser(history, query.UserID.String())

	if !user.Exists {
		return core.UserState{}, core.NotFoundError("user")
	}

	return user, nil
}

// BuildEventFilter creates the filter for all events of the user.
func BuildEventFilter(userID uuid.UUID) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
			core.UserPasswordResetEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID.String()),
		).
		Finalize()
}
