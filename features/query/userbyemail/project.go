package userbyemail

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectEmailOwner returns the id of the user holding the queried address.
func ProjectEmailOwner(history core.DomainEvents, query Query) (core.UserIDString, error) {
	owner, found := core.EmailOwner(history, query.Email)
	if !found {
		return "", core.NotFoundError("user")
	}

	return owner, nil
}

// ProjectUser returns the user with ownerID, who must still hold the queried address.
func ProjectUser(history core.DomainEvents, query Query, ownerID core.UserIDString) (core.UserState, error) {
	user := core.ProjectUser(history, ownerID)

	if !user.Exists || user.Email != query.Email {
		return core.UserState{}, core.NotFoundError("user")
	}

	return user, nil
}

// BuildEmailFilter creates the filter for all user events that ever carried the email address.
func BuildEmailFilter(email string) eventstore.Filter {
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

// BuildUserFilter creates the filter for all events of one user.
func BuildUserFilter(userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
			core.UserPasswordResetEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID),
		).
		Finalize()
}
