package cancelregistration_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/cancelregistration"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func Test_Decide(t *testing.T) {
	now := time.Now()
	eventID := uuid.New()
	userID := uuid.New()
	contact := core.ContactDetails{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "1"}
	created := core.BuildEventCreated(eventID, core.EventDraft{Title: "Go Meetup", Capacity: 10, Category: "meetup"}, "Grace Hopper", uuid.New(), now.Add(-time.Hour))
	three := core.BuildTicketsRegistered(eventID, userID, "Go Meetup", 3, contact, now.Add(-time.Minute))
	two := core.BuildTicketsRegistered(eventID, userID, "Go Meetup", 2, contact, now.Add(-time.Minute))
	canceled := core.BuildRegistrationCanceled(eventID, userID, 5, now.Add(-time.Second))
	somebodyElse := core.BuildTicketsRegistered(eventID, uuid.New(), "Go Meetup", 1, contact, now.Add(-time.Minute))

	testCases := []struct {
		name                string
		history             core.DomainEvents
		expectedTicketCount int
	}{
		{name: "merged registration", history: core.DomainEvents{created, three, two}, expectedTicketCount: 5},
		{name: "after the event was deleted", history: core.DomainEvents{created, three, core.BuildEventDeleted(eventID, uuid.New(), now)}, expectedTicketCount: 3},
		{name: "registered again after a cancel", history: core.DomainEvents{created, three, two, canceled, two}, expectedTicketCount: 2},
		{name: "no registration", history: core.DomainEvents{created, somebodyElse}},
		{name: "already canceled", history: core.DomainEvents{created, three, two, canceled}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := cancelregistration.Decide(tc.history, cancelregistration.BuildCommand(eventID, userID, now))

			// assert
			if tc.expectedTicketCount == 0 {
				assert.ErrorIs(t, result.HasError(), core.ErrNotFound)
				return
			}

			require.True(t, result.HasEventToAppend())
			event, ok := result.Event.(core.RegistrationCanceled)
			require.True(t, ok)
			assert.Equal(t, tc.expectedTicketCount, event.TicketCount)
		})
	}
}
