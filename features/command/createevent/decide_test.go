package createevent_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/createevent"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func givenDraft() core.EventDraft {
	return core.EventDraft{
		Title:       "Go Meetup",
		Date:        "2026-11-05",
		Location:    "Berlin",
		Category:    "meetup",
		Description: "Talks about event sourcing",
		Capacity:    50,
	}
}

func Test_Decide(t *testing.T) {
	now := time.Now()
	eventID := uuid.New()
	creatorID := uuid.New()
	signedUp := core.BuildUserSignedUp(creatorID, core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}, "hash", now.Add(-time.Hour))
	renamed := core.BuildUserProfileUpdated(creatorID, "ada@example.com", core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "King"}, now.Add(-time.Minute))
	alreadyCreated := core.BuildEventCreated(eventID, givenDraft(), "Ada Lovelace", creatorID, now.Add(-time.Minute))

	withoutTitle := givenDraft()
	withoutTitle.Title = ""
	zeroCapacity := givenDraft()
	zeroCapacity.Capacity = 0
	unknownCategory := givenDraft()
	unknownCategory.Category = "party"

	testCases := []struct {
		name              string
		history           core.DomainEvents
		draft             core.EventDraft
		expectedOrganizer string
		expectIdempotent  bool
		expectedErr       error
		expectedReason    string
	}{
		{name: "valid draft", history: core.DomainEvents{signedUp}, draft: givenDraft(), expectedOrganizer: "Ada Lovelace"},
		{name: "organizer uses the current profile", history: core.DomainEvents{signedUp, renamed}, draft: givenDraft(), expectedOrganizer: "Ada King"},
		{name: "same id again", history: core.DomainEvents{signedUp, alreadyCreated}, draft: givenDraft(), expectIdempotent: true},
		{name: "unknown creator", history: core.DomainEvents{}, draft: givenDraft(), expectedErr: core.ErrNotFound},
		{name: "missing title", history: core.DomainEvents{signedUp}, draft: withoutTitle, expectedErr: core.ErrValidation, expectedReason: core.ReasonTitleRequired},
		{name: "zero capacity", history: core.DomainEvents{signedUp}, draft: zeroCapacity, expectedErr: core.ErrValidation, expectedReason: core.ReasonCapacityTooLow},
		{name: "unknown category", history: core.DomainEvents{signedUp}, draft: unknownCategory, expectedErr: core.ErrValidation, expectedReason: core.ReasonCategoryInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := createevent.Decide(tc.history, createevent.BuildCommand(eventID, creatorID, tc.draft, now))

			// assert
			switch {
			case tc.expectedOrganizer != "":
				require.True(t, result.HasEventToAppend())
				event, ok := result.Event.(core.EventCreated)
				require.True(t, ok)
				assert.Equal(t, tc.expectedOrganizer, event.Organizer)
				assert.Equal(t, creatorID.String(), event.CreatedBy)
				assert.Equal(t, core.DefaultEventImage, event.Image)

			case tc.expectIdempotent:
				assert.True(t, result.IsIdempotent())

			default:
				assert.ErrorIs(t, result.HasError(), tc.expectedErr)
				if tc.expectedReason != "" {
					assert.EqualError(t, result.HasError(), tc.expectedReason)
				}
			}
		})
	}
}
