package shell_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/shared/shell"
)

func Test_SessionTokens_IssueThenParse(t *testing.T) {
	// arrange
	tokens, err := shell.NewSessionTokens([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	sessionID := uuid.NewString()
	userID := uuid.NewString()

	// act
	token, err := tokens.Issue(sessionID, userID)
	require.NoError(t, err)
	claims, err := tokens.Parse(token)

	// assert
	require.NoError(t, err)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, userID, claims.Subject)
}

func Test_SessionTokens_Parse_Rejects(t *testing.T) {
	issuedAt := time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

	tokens, err := shell.NewSessionTokens([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	tokens = tokens.WithClock(func() time.Time { return issuedAt })

	otherSecret, err := shell.NewSessionTokens([]byte("other-secret"), time.Hour)
	require.NoError(t, err)

	token, err := tokens.Issue(uuid.NewString(), uuid.NewString())
	require.NoError(t, err)

	testCases := []struct {
		name   string
		parser shell.SessionTokens
		token  string
	}{
		{name: "expired", parser: tokens.WithClock(func() time.Time { return issuedAt.Add(2 * time.Hour) }), token: token},
		{name: "wrong secret", parser: otherSecret.WithClock(func() time.Time { return issuedAt }), token: token},
		{name: "garbage", parser: tokens, token: "not-a-token"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, parseErr := tc.parser.Parse(tc.token)

			assert.ErrorIs(t, parseErr, shell.ErrInvalidSessionToken)
		})
	}
}

func Test_NewSessionTokens_InvalidConfig(t *testing.T) {
	_, err := shell.NewSessionTokens(nil, time.Hour)
	assert.ErrorIs(t, err, shell.ErrEmptySessionSecret)

	_, err = shell.NewSessionTokens([]byte("s"), 0)
	assert.ErrorIs(t, err, shell.ErrNonPositiveSessionTTL)
}
