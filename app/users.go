package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/features/command/endsession"
	"github.com/AntonStoeckl/eventhub/features/command/resetpassword"
	"github.com/AntonStoeckl/eventhub/features/command/signupuser"
	"github.com/AntonStoeckl/eventhub/features/command/startsession"
	"github.com/AntonStoeckl/eventhub/features/command/updateuserprofile"
	"github.com/AntonStoeckl/eventhub/features/query/userbyemail"
	"github.com/AntonStoeckl/eventhub/features/query/userprofile"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

// Users is the user and session store. There is one session slot per App.
type Users struct {
	handlers handlerBundle
	hasher   shell.PasswordHasher
	tokens   shell.SessionTokens
	identity sessionIdentity
	now      func() time.Time
}

// CreateUser signs up a new user. The email must not be taken.
func (u *Users) CreateUser(ctx context.Context, profile core.UserProfile, password string) (User, error) {
	command := signupuser.BuildCommand(uuid.New(), profile, password, u.now())
	user, _, err := u.handlers.signUpUser.Handle(ctx, command)

	return user, err
}

// FindByEmail matches the email exactly, case included.
func (u *Users) FindByEmail(ctx context.Context, email string) (User, error) {
	return u.handlers.userByEmail.Handle(ctx, userbyemail.BuildQuery(email))
}

func (u *Users) FindByID(ctx context.Context, userID uuid.UUID) (User, error) {
	return u.handlers.userProfile.Handle(ctx, userprofile.BuildQuery(userID))
}

// Update applies the non-nil fields of changes. A changed email must not be taken. The session
// reflects the change on its next read.
func (u *Users) Update(ctx context.Context, userID uuid.UUID, changes core.ProfileChanges) (User, error) {
	command := updateuserprofile.BuildCommand(userID, changes, u.now())
	user, _, err := u.handlers.updateUserProfile.Handle(ctx, command)

	return user, err
}

// GetSession returns false for an empty slot.
func (u *Users) GetSession(ctx context.Context) (Session, bool, error) {
	return u.identity.session(ctx)
}

// SetSession signs userID in, replacing any prior session.
func (u *Users) SetSession(ctx context.Context, userID uuid.UUID) (Session, error) {
	command := startsession.BuildCommand(uuid.New(), userID, u.now())
	if _, _, err := u.handlers.startSession.Handle(ctx, command); err != nil {
		return Session{}, err
	}

	session, active, err := u.identity.session(ctx)
	if err != nil {
		return Session{}, err
	}

	if !active {
		return Session{}, core.ErrNotSignedIn
	}

	return session, nil
}

// ClearSession succeeds for an empty slot, too.
func (u *Users) ClearSession(ctx context.Context) error {
	_, _, err := u.handlers.endSession.Handle(ctx, endsession.BuildCommand(u.now()))

	return err
}

// ResetPassword returns false if no account holds email.
func (u *Users) ResetPassword(ctx context.Context, email, newPassword, confirmation string) (bool, error) {
	command := resetpassword.BuildCommand(email, newPassword, confirmation, u.now())

	_, _, err := u.handlers.resetPassword.Handle(ctx, command)
	switch {
	case errors.Is(err, core.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	return true, nil
}

// Login checks the password, fills the session slot and returns a signed session token.
func (u *Users) Login(ctx context.Context, email, password string) (Session, string, error) {
	user, err := u.FindByEmail(ctx, email)
	if errors.Is(err, core.ErrNotFound) {
		return Session{}, "", core.ErrInvalidCredentials
	}

	if err != nil {
		return Session{}, "", err
	}

	if !u.hasher.Matches(user.PasswordHash, password) {
		return Session{}, "", core.ErrInvalidCredentials
	}

	userID, err := uuid.Parse(user.UserID)
	if err != nil {
		return Session{}, "", errors.Join(core.ErrStorageUnavailable, err)
	}

	session, err := u.SetSession(ctx, userID)
	if err != nil {
		return Session{}, "", err
	}

	token, err := u.tokens.Issue(session.SessionID, session.UserID)
	if err != nil {
		return Session{}, "", err
	}

	return session, token, nil
}

// SessionFromToken returns the session of a valid token. A token of a session that has since
// ended or been replaced fails with core.ErrNotSignedIn.
func (u *Users) SessionFromToken(ctx context.Context, token string) (Session, error) {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return Session{}, err
	}

	session, active, err := u.identity.session(ctx)
	if err != nil {
		return Session{}, err
	}

	if !active || session.SessionID != claims.SessionID || session.UserID != claims.Subject {
		return Session{}, core.ErrNotSignedIn
	}

	return session, nil
}
