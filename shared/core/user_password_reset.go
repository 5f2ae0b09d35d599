package core

import (
	"time"

	"github.com/google/uuid"
)

// UserPasswordResetEventType is the event type identifier.
const UserPasswordResetEventType = "UserPasswordReset"

// UserPasswordReset replaces the password hash of the user holding Email.
type UserPasswordReset struct {
	UserID       UserIDString
	Email        string
	PasswordHash string
	OccurredAt   OccurredAtTS
}

// BuildUserPasswordReset creates a new UserPasswordReset event.
func BuildUserPasswordReset(userID uuid.UUID, email string, passwordHash string, occurredAt time.Time) UserPasswordReset {
	return UserPasswordReset{
		UserID:       userID.String(),
		Email:        email,
		PasswordHash: passwordHash,
		OccurredAt:   ToOccurredAt(occurredAt),
	}
}

func (e UserPasswordReset) IsEventType() string {
	return UserPasswordResetEventType
}

func (e UserPasswordReset) HasOccurredAt() time.Time {
	return e.OccurredAt
}
