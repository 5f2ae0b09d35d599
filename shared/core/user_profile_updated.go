package core

import (
	"time"

	"github.com/google/uuid"
)

// UserProfileUpdatedEventType is the event type identifier.
const UserProfileUpdatedEventType = "UserProfileUpdated"

// UserProfileUpdated replaces all profile fields of a user.
// PreviousEmail is part of the payload so that email lookups of the old address see the change.
type UserProfileUpdated struct {
	UserID             UserIDString
	PreviousEmail      string
	Email              string
	FirstName          string
	LastName           string
	Phone              string
	Company            string
	DietaryPreferences string
	OccurredAt         OccurredAtTS
}

// BuildUserProfileUpdated creates a new UserProfileUpdated event.
func BuildUserProfileUpdated(userID uuid.UUID, previousEmail string, profile UserProfile, occurredAt time.Time) UserProfileUpdated {
	return UserProfileUpdated{
		UserID:             userID.String(),
		PreviousEmail:      previousEmail,
		Email:              profile.Email,
		FirstName:          profile.FirstName,
		LastName:           profile.LastName,
		Phone:              profile.Phone,
		Company:            profile.Company,
		DietaryPreferences: profile.DietaryPreferences,
		OccurredAt:         ToOccurredAt(occurredAt),
	}
}

func (e UserProfileUpdated) IsEventType() string {
	return UserProfileUpdatedEventType
}

func (e UserProfileUpdated) HasOccurredAt() time.Time {
	return e.OccurredAt
}
