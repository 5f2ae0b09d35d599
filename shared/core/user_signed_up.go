package core

import (
	"time"

	"github.com/google/uuid"
)

// UserSignedUpEventType is the event type identifier.
const UserSignedUpEventType = "UserSignedUp"

// UserSignedUp is the creation of a user account. PasswordHash is a bcrypt hash.
type UserSignedUp struct {
	UserID             UserIDString
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              string
	Company            string
	DietaryPreferences string
	OccurredAt         OccurredAtTS
}

// UserProfile holds the editable profile fields shared by several user events.
type UserProfile struct {
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	Company            string
	DietaryPreferences string
}

// BuildUserSignedUp creates a new UserSignedUp event.
func BuildUserSignedUp(userID uuid.UUID, profile UserProfile, passwordHash string, occurredAt time.Time) UserSignedUp {
	return UserSignedUp{
		UserID:             userID.String(),
		Email:              profile.Email,
		PasswordHash:       passwordHash,
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		Phone:              profile.Phone,
		Company:            profile.Company,
		DietaryPreferences: profile.DietaryPreferences,
		OccurredAt:         ToOccurredAt(occurredAt),
	}
}

func (e UserSignedUp) IsEventType() string {
	return UserSignedUpEventType
}

func (e UserSignedUp) HasOccurredAt() time.Time {
	return e.OccurredAt
}
