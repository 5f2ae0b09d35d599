package currentsession

import (
	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// ProjectCurrentSession joins the session slot with the current profile of its user.
//
// Query Logic:
//
//	GIVEN: The session slot and the events of its user
//	WHEN: CurrentSession query is executed
//	THEN: the active Session with the current email and names is returned
//	EXCLUDES: sessions of users that do not exist
func ProjectCurrentSession(session core.SessionState, userHistory core.DomainEvents) CurrentSession {
	if !session.Active {
		return CurrentSession{}
	}

	user := core.ProjectUser(userHistory, session.UserID)
	if !user.Exists {
		return CurrentSession{}
	}

	return CurrentSession{
		Session: Session{
			SessionID: session.SessionID,
			UserID:    user.UserID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
		},
		Active: true,
	}
}

// BuildSessionFilter creates the filter for the session slot.
func BuildSessionFilter() eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.SessionStartedEventType,
			core.SessionEndedEventType,
		).
		Finalize()
}

// BuildUserFilter creates the filter for the profile events of one user.
func BuildUserFilter(userID core.UserIDString) eventstore.Filter {
	return eventstore.BuildEventFilter().
		Matching().
		AnyEventTypeOf(
			core.UserSignedUpEventType,
			core.UserProfileUpdatedEventType,
		).
		AndAnyPredicateOf(
			eventstore.P("UserID", userID),
		).
		Finalize()
}
