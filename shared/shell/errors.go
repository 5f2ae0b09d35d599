package shell

import (
	"errors"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

// IsBusinessError is true for the recoverable outcomes of the domain.
func IsBusinessError(err error) bool {
	return errors.Is(err, core.ErrValidation) ||
		errors.Is(err, core.ErrCapacityExceeded) ||
		errors.Is(err, core.ErrNotFound) ||
		errors.Is(err, core.ErrInvalidCredentials) ||
		errors.Is(err, core.ErrNotSignedIn)
}

// ClassifyError is applied to every error leaving a handler. Business errors pass unchanged,
// everything else (database errors, context errors, exhausted retries) is joined with
// core.ErrStorageUnavailable. The cause stays matchable with errors.Is.
func ClassifyError(err error) error {
	if err == nil || IsBusinessError(err) || errors.Is(err, core.ErrStorageUnavailable) {
		return err
	}

	return errors.Join(core.ErrStorageUnavailable, err)
}
