package core

import (
	"strings"
)

// MinPasswordLength is the minimum number of characters of a password.
const MinPasswordLength = 6

// MaxPasswordBytes is the longest input bcrypt accepts.
const MaxPasswordBytes = 72

// MaxEventCapacity bounds capacity so that prices of a full event fit into an int.
const MaxEventCapacity = 1_000_000

// User facing validation messages.
const (
	ReasonFirstNameRequired   = "First name is required"
	ReasonLastNameRequired    = "Last name is required"
	ReasonEmailRequired       = "Email is required"
	ReasonPhoneRequired       = "Phone number is required"
	ReasonPasswordTooShort    = "Password must be at least 6 characters"
	ReasonPasswordTooLong     = "Password must be at most 72 bytes"
	ReasonPasswordsMismatch   = "Passwords do not match"
	ReasonEmailTaken          = "An account with this email already exists"
	ReasonTicketCountTooLow   = "Ticket count must be at least 1"
	ReasonTitleRequired       = "Event title is required"
	ReasonDateRequired        = "Event date is required"
	ReasonLocationRequired    = "Event location is required"
	ReasonDescriptionRequired = "Event description is required"
	ReasonCapacityTooLow      = "Capacity must be at least 1"
	ReasonCapacityTooHigh     = "Capacity must be at most 1000000"
	ReasonCategoryInvalid     = "Category is invalid"
)

// RequiredField is one entry of a RequireAll check.
type RequiredField struct {
	Field  string
	Value  string
	Reason string
}

// IsBlank is true for empty and whitespace-only values.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// RequireAll returns a *ValidationError for the first blank field, or nil.
func RequireAll(fields ...RequiredField) error {
	for _, f := range fields {
		if IsBlank(f.Value) {
			return NewValidationError(f.Field, f.Reason)
		}
	}

	return nil
}

// ValidatePassword counts characters for the minimum and bytes for the maximum.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return NewValidationError(FieldPassword, ReasonPasswordTooShort)
	}

	if len(password) > MaxPasswordBytes {
		return NewValidationError(FieldPassword, ReasonPasswordTooLong)
	}

	return nil
}

// ValidateContactDetails checks the registration form in display order.
func ValidateContactDetails(contact ContactDetails) error {
	return RequireAll(
		RequiredField{Field: FieldFirstName, Value: contact.FirstName, Reason: ReasonFirstNameRequired},
		RequiredField{Field: FieldLastName, Value: contact.LastName, Reason: ReasonLastNameRequired},
		RequiredField{Field: FieldEmail, Value: contact.Email, Reason: ReasonEmailRequired},
		RequiredField{Field: FieldPhone, Value: contact.Phone, Reason: ReasonPhoneRequired},
	)
}

// ValidateEventDraft checks the create event form in display order.
func ValidateEventDraft(draft EventDraft) error {
	err := RequireAll(
		RequiredField{Field: FieldTitle, Value: draft.Title, Reason: ReasonTitleRequired},
		RequiredField{Field: FieldDate, Value: draft.Date, Reason: ReasonDateRequired},
		RequiredField{Field: FieldLocation, Value: draft.Location, Reason: ReasonLocationRequired},
		RequiredField{Field: FieldDescription, Value: draft.Description, Reason: ReasonDescriptionRequired},
	)
	if err != nil {
		return err
	}

	if draft.Capacity < 1 {
		return NewValidationError(FieldCapacity, ReasonCapacityTooLow)
	}

	if draft.Capacity > MaxEventCapacity {
		return NewValidationError(FieldCapacity, ReasonCapacityTooHigh)
	}

	if !IsValidEventCategory(draft.Category) {
		return NewValidationError(FieldCategory, ReasonCategoryInvalid)
	}

	return nil
}

// ValidateProfile checks the required profile fields.
func ValidateProfile(profile UserProfile) error {
	return RequireAll(
		RequiredField{Field: FieldFirstName, Value: profile.FirstName, Reason: ReasonFirstNameRequired},
		RequiredField{Field: FieldLastName, Value: profile.LastName, Reason: ReasonLastNameRequired},
		RequiredField{Field: FieldEmail, Value: profile.Email, Reason: ReasonEmailRequired},
	)
}
