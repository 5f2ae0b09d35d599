package app

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/features/query/currentsession"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// Session is the identity of the signed in user, always read with the current profile.
type Session = currentsession.Session

// sessionIdentity resolves the user that operations act as.
type sessionIdentity struct {
	currentSession shell.CoreQueryHandler[currentsession.Query, currentsession.CurrentSession]
}

func (i sessionIdentity) session(ctx context.Context) (Session, bool, error) {
	current, err := i.currentSession.Handle(ctx, currentsession.BuildQuery())
	if err != nil {
		return Session{}, false, err
	}

	return current.Session, current.Active, nil
}

// userID fails with core.ErrNotSignedIn for an empty session slot.
func (i sessionIdentity) userID(ctx context.Context) (uuid.UUID, error) {
	session, active, err := i.session(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	if !active {
		return uuid.Nil, core.ErrNotSignedIn
	}

	userID, err := uuid.Parse(session.UserID)
	if err != nil {
		return uuid.Nil, errors.Join(core.ErrStorageUnavailable, err)
	}

	return userID, nil
}
