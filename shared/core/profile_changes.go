package core

// ProfileChanges is a partial profile update. A nil field keeps the current value.
type ProfileChanges struct {
	FirstName          *string
	LastName           *string
	Email              *string
	Phone              *string
	Company            *string
	DietaryPreferences *string
}

// ApplyTo returns profile with the non-nil fields replaced.
func (c ProfileChanges) ApplyTo(profile UserProfile) UserProfile {
	replace := func(target *string, value *string) {
		if value != nil {
			*target = *value
		}
	}

	replace(&profile.FirstName, c.FirstName)
	replace(&profile.LastName, c.LastName)
	replace(&profile.Email, c.Email)
	replace(&profile.Phone, c.Phone)
	replace(&profile.Company, c.Company)
	replace(&profile.DietaryPreferences, c.DietaryPreferences)

	return profile
}
