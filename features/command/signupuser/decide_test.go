package signupuser_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/signupuser"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

const passwordHash = "$2a$04$hash"

func givenProfile(email string) core.UserProfile {
	return core.UserProfile{Email: email, FirstName: "Ada", LastName: "Lovelace"}
}

func Test_Decide(t *testing.T) {
	now := time.Now()
	userID := uuid.New()
	otherUserID := uuid.New()

	testCases := []struct {
		name             string
		history          core.DomainEvents
		command          signupuser.Command
		expectSuccess    bool
		expectIdempotent bool
		expectedReason   string
	}{
		{
			name:          "fresh email",
			command:       signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "secret1", now),
			expectSuccess: true,
		},
		{
			name: "email held by another user",
			history: core.DomainEvents{
				core.BuildUserSignedUp(otherUserID, givenProfile("ada@example.com"), passwordHash, now.Add(-time.Hour)),
			},
			command:        signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "secret1", now),
			expectedReason: core.ReasonEmailTaken,
		},
		{
			name: "email released by a profile update",
			history: core.DomainEvents{
				core.BuildUserSignedUp(otherUserID, givenProfile("ada@example.com"), passwordHash, now.Add(-2*time.Hour)),
				core.BuildUserProfileUpdated(otherUserID, "ada@example.com", givenProfile("countess@example.com"), now.Add(-time.Hour)),
			},
			command:       signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "secret1", now),
			expectSuccess: true,
		},
		{
			name: "email differs only in case",
			history: core.DomainEvents{
				core.BuildUserSignedUp(otherUserID, givenProfile("Ada@Example.com"), passwordHash, now.Add(-time.Hour)),
			},
			command:       signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "secret1", now),
			expectSuccess: true,
		},
		{
			name: "same user signs up again",
			history: core.DomainEvents{
				core.BuildUserSignedUp(userID, givenProfile("ada@example.com"), passwordHash, now.Add(-time.Hour)),
			},
			command:          signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "secret1", now),
			expectIdempotent: true,
		},
		{
			name:           "missing last name",
			command:        signupuser.BuildCommand(userID, core.UserProfile{Email: "ada@example.com", FirstName: "Ada"}, "secret1", now),
			expectedReason: core.ReasonLastNameRequired,
		},
		{
			name:           "short password",
			command:        signupuser.BuildCommand(userID, givenProfile("ada@example.com"), "12345", now),
			expectedReason: core.ReasonPasswordTooShort,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// act
			result := signupuser.Decide(tc.history, tc.command, passwordHash)

			// assert
			switch {
			case tc.expectSuccess:
				require.True(t, result.HasEventToAppend())
				event, ok := result.Event.(core.UserSignedUp)
				require.True(t, ok)
				assert.Equal(t, userID.String(), event.UserID)
				assert.Equal(t, passwordHash, event.PasswordHash)
				assert.Equal(t, tc.command.Profile.Email, event.Email)

			case tc.expectIdempotent:
				assert.True(t, result.IsIdempotent())
				assert.NoError(t, result.HasError())

			default:
				assert.ErrorIs(t, result.HasError(), core.ErrValidation)
				assert.EqualError(t, result.HasError(), tc.expectedReason)
				assert.Nil(t, result.Event)
			}
		})
	}
}
