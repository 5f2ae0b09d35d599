package core

import (
	"errors"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")

	// ErrCapacityExceeded is returned when fewer spots remain than tickets were requested.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrNotFound is returned for unknown users, events and registrations.
	ErrNotFound = errors.New("not found")

	// ErrStorageUnavailable wraps every failure of the event log, including exhausted retries and
	// canceled contexts.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrInvalidCredentials is returned by login for an unknown email or a wrong password.
	ErrInvalidCredentials = errors.New("Invalid email or password") //nolint:staticcheck // shown to users as is

	// ErrNotSignedIn is returned by operations that act as the current session identity when the
	// session slot is empty.
	ErrNotSignedIn = errors.New("not signed in")
)

// Field names used in validation errors.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldPassword        = "password"
	FieldPasswordConfirm = "confirmPassword"
	FieldTicketCount     = "ticketCount"
	FieldTitle           = "title"
	FieldDate            = "date"
	FieldLocation        = "location"
	FieldDescription     = "description"
	FieldCapacity        = "capacity"
	FieldCategory        = "category"
)

// ValidationError names the first field that failed validation. Reason is a user facing message.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrValidation) true for any *ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError adds what was not found to ErrNotFound.
func NotFoundError(what string) error {
	return errors.Join(ErrNotFound, errors.New(what+" not found"))
}
