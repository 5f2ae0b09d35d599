package updateuserprofile_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/updateuserprofile"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func ptr(s string) *string {
	return &s
}

func Test_Decide(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	otherUserID := uuid.New()
	profile := core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}
	signedUp := core.BuildUserSignedUp(userID, profile, "hash", now.Add(-time.Hour))
	otherSignedUp := core.BuildUserSignedUp(otherUserID, core.UserProfile{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}, "hash", now.Add(-time.Hour))

	testCases := []struct {
		name             string
		history          core.DomainEvents
		changes          core.ProfileChanges
		expectedProfile  *core.UserProfile
		expectIdempotent bool
		expectedErr      error
		expectedReason   string
	}{
		{
			name:            "change phone",
			history:         core.DomainEvents{signedUp},
			changes:         core.ProfileChanges{Phone: ptr("+49 30 1234")},
			expectedProfile: &core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace", Phone: "+49 30 1234"},
		},
		{
			name:            "change email to a free one",
			history:         core.DomainEvents{signedUp, otherSignedUp},
			changes:         core.ProfileChanges{Email: ptr("countess@example.com")},
			expectedProfile: &core.UserProfile{Email: "countess@example.com", FirstName: "Ada", LastName: "Lovelace"},
		},
		{
			name:           "change email to a taken one",
			history:        core.DomainEvents{signedUp, otherSignedUp},
			changes:        core.ProfileChanges{Email: ptr("grace@example.com")},
			expectedErr:    core.ErrValidation,
			expectedReason: core.ReasonEmailTaken,
		},
		{
			name:           "blank first name",
			history:        core.DomainEvents{signedUp},
			changes:        core.ProfileChanges{FirstName: ptr(" ")},
			expectedErr:    core.ErrValidation,
			expectedReason: core.ReasonFirstNameRequired,
		},
		{
			name:             "nothing changes",
			history:          core.DomainEvents{signedUp},
			changes:          core.ProfileChanges{FirstName: ptr("Ada")},
			expectIdempotent: true,
		},
		{
			name:        "unknown user",
			history:     core.DomainEvents{otherSignedUp},
			changes:     core.ProfileChanges{Phone: ptr("123")},
			expectedErr: core.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := updateuserprofile.Decide(tc.history, updateuserprofile.BuildCommand(userID, tc.changes, now))

			// assert
			switch {
			case tc.expectedProfile != nil:
				require.True(t, result.HasEventToAppend())
				event, ok := result.Event.(core.UserProfileUpdated)
				require.True(t, ok)
				assert.Equal(t, "ada@example.com", event.PreviousEmail)
				assert.Equal(t, *tc.expectedProfile, core.ProjectUser(core.DomainEvents{signedUp, event}, userID.String()).Profile())

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
