package shell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

func Test_ClassifyError(t *testing.T) {
	testCases := []struct {
		name               string
		err                error
		expectStorageError bool
	}{
		{name: "validation", err: core.NewValidationError(core.FieldEmail, "Email is required")},
		{name: "capacity", err: core.ErrCapacityExceeded},
		{name: "not found", err: core.NotFoundError("event")},
		{name: "credentials", err: core.ErrInvalidCredentials},
		{name: "not signed in", err: core.ErrNotSignedIn},
		{name: "database", err: errors.Join(eventstore.ErrQueryingEventsFailed, errors.New("boom")), expectStorageError: true},
		{name: "exhausted retries", err: eventstore.ErrConcurrencyConflict, expectStorageError: true},
		{name: "canceled", err: context.Canceled, expectStorageError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			classified := shell.ClassifyError(tc.err)

			assert.ErrorIs(t, classified, tc.err)
			assert.Equal(t, tc.expectStorageError, errors.Is(classified, core.ErrStorageUnavailable))
		})
	}

	assert.NoError(t, shell.ClassifyError(nil))
}
