package core

import (
	"time"
)

// UserState is the projection of one User.
type UserState struct {
	UserID             UserIDString
	Email              string
	PasswordHash       string
	FirstName          string
	LastName           string
	Phone              string
	Company            string
	DietaryPreferences string
	CreatedAt          time.Time

	Exists bool
}

// Profile returns the editable fields.
func (s UserState) Profile() UserProfile {
	return UserProfile{
		Email:              s.Email,
		FirstName:          s.FirstName,
		LastName:           s.LastName,
		Phone:              s.Phone,
		Company:            s.Company,
		DietaryPreferences: s.DietaryPreferences,
	}
}

// Apply folds one event of this user into the state.
func (s UserState) Apply(event DomainEvent) UserState {
	switch e := event.(type) {
	case UserSignedUp:
		if s.Exists || e.UserID != s.UserID {
			return s
		}

		return UserState{
			UserID:             e.UserID,
			Email:              e.Email,
			PasswordHash:       e.PasswordHash,
			FirstName:          e.FirstName,
			LastName:           e.LastName,
			Phone:              e.Phone,
			Company:            e.Company,
			DietaryPreferences: e.DietaryPreferences,
			CreatedAt:          e.OccurredAt,
			Exists:             true,
		}

	case UserProfileUpdated:
		if s.Exists && e.UserID == s.UserID {
			s.Email = e.Email
			s.FirstName = e.FirstName
			s.LastName = e.LastName
			s.Phone = e.Phone
			s.Company = e.Company
			s.DietaryPreferences = e.DietaryPreferences
		}

	case UserPasswordReset:
		if s.Exists && e.UserID == s.UserID {
			s.PasswordHash = e.PasswordHash
		}
	}

	return s
}

// ProjectUser replays the history of userID.
func ProjectUser(history DomainEvents, userID UserIDString) UserState {
	state := UserState{UserID: userID}

	for _, event := range history {
		state = state.Apply(event)
	}

	return state
}

// EmailOwner returns the user currently holding email.
//
// history must contain every user event whose Email or PreviousEmail equals email.
// Matching is exact and case-sensitive.
func EmailOwner(history DomainEvents, email string) (UserIDString, bool) {
	owner := ""

	for _, event := range history {
		switch e := event.(type) {
		case UserSignedUp:
			if e.Email == email {
				owner = e.UserID
			}

		case UserProfileUpdated:
			switch {
			case e.Email == email:
				owner = e.UserID
			case e.PreviousEmail == email && owner == e.UserID:
				owner = ""
			}
		}
	}

	return owner, owner != ""
}
