package deleteevent_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/deleteevent"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func Test_Decide(t *testing.T) {
	now := time.Now()
	eventID := uuid.New()
	creatorID := uuid.New()
	created := core.BuildEventCreated(eventID, core.EventDraft{Title: "Go Meetup", Capacity: 10, Category: "meetup"}, "Ada Lovelace", creatorID, now.Add(-time.Hour))
	deleted := core.BuildEventDeleted(eventID, creatorID, now.Add(-time.Minute))

	testCases := []struct {
		name             string
		history          core.DomainEvents
		deletedBy        uuid.UUID
		expectSuccess    bool
		expectIdempotent bool
	}{
		{name: "creator deletes", history: core.DomainEvents{created}, deletedBy: creatorID, expectSuccess: true},
		{name: "unknown event", history: core.DomainEvents{}, deletedBy: creatorID, expectIdempotent: true},
		{name: "already deleted", history: core.DomainEvents{created, deleted}, deletedBy: creatorID, expectIdempotent: true},
		{name: "somebody else", history: core.DomainEvents{created}, deletedBy: uuid.New()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := deleteevent.Decide(tc.history, deleteevent.BuildCommand(eventID, tc.deletedBy, now))

			// assert
			switch {
			case tc.expectSuccess:
				require.True(t, result.HasEventToAppend())
				assert.Equal(t, core.EventDeletedEventType, result.Event.IsEventType())

			case tc.expectIdempotent:
				assert.True(t, result.IsIdempotent())

			default:
				assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
			}
		})
	}
}
