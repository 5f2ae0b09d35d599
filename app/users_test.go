package app_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
)

func Test_Users_CreateUser_StoresAHashNotThePassword(t *testing.T) {
	// setup
	a := givenApp(t)

	// act
	user := givenUser(t, a, "Ada", "ada@example.com")

	// assert
	assert.NotEqual(t, givenPassword, user.PasswordHash)
	assert.NotEmpty(t, user.PasswordHash)
	assert.True(t, user.Exists)
}

func Test_Users_CreateUser_WithTakenEmail_Fails(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")

	// act
	_, err := a.Users.CreateUser(
		t.Context(),
		core.UserProfile{Email: "ada@example.com", FirstName: "Grace", LastName: "Hopper"},
		givenPassword,
	)

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.EqualError(t, err, "An account with this email already exists")
}

func Test_Users_FindByEmail_IsCaseSensitive(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")

	// act
	_, err := a.Users.FindByEmail(t.Context(), "Ada@example.com")

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_Users_Update_RefreshesTheSession(t *testing.T) {
	// setup
	a := givenApp(t)
	user := givenSignedInUser(t, a, "Ada", "ada@example.com")
	firstName := "Augusta"
	email := "augusta@example.com"

	// act
	updated, err := a.Users.Update(t.Context(), uuid.MustParse(user.UserID), core.ProfileChanges{FirstName: &firstName, Email: &email})

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Augusta", updated.FirstName)

	session, active, err := a.Users.GetSession(t.Context())
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, "Augusta", session.FirstName)
	assert.Equal(t, "augusta@example.com", session.Email)

	_, err = a.Users.FindByEmail(t.Context(), "ada@example.com")
	assert.ErrorIs(t, err, core.ErrNotFound)
}

func Test_Users_SetSession_ReplacesThePriorSession(t *testing.T) {
	// setup
	a := givenApp(t)
	givenSignedInUser(t, a, "Ada", "ada@example.com")
	grace := givenUser(t, a, "Grace", "grace@example.com")

	// act
	session, err := a.Users.SetSession(t.Context(), uuid.MustParse(grace.UserID))

	// assert
	require.NoError(t, err)
	assert.Equal(t, grace.UserID, session.UserID)

	current, active, err := a.Users.GetSession(t.Context())
	require.NoError(t, err)
	assert.True(t, active)
	assert.Equal(t, session, current)
}

func Test_Users_ClearSession(t *testing.T) {
	// setup
	a := givenApp(t)
	givenSignedInUser(t, a, "Ada", "ada@example.com")

	// act
	require.NoError(t, a.Users.ClearSession(t.Context()))
	require.NoError(t, a.Users.ClearSession(t.Context()))

	// assert
	_, active, err := a.Users.GetSession(t.Context())
	require.NoError(t, err)
	assert.False(t, active)
}

func Test_Users_ResetPassword_OnlyChangesTheLoginOfThatEmail(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")
	givenUser(t, a, "Grace", "grace@example.com")

	// act
	reset, err := a.Users.ResetPassword(t.Context(), "ada@example.com", "newsecret", "newsecret")

	// assert
	require.NoError(t, err)
	assert.True(t, reset)

	_, _, err = a.Users.Login(t.Context(), "ada@example.com", givenPassword)
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)

	_, _, err = a.Users.Login(t.Context(), "ada@example.com", "newsecret")
	assert.NoError(t, err)

	_, _, err = a.Users.Login(t.Context(), "grace@example.com", givenPassword)
	assert.NoError(t, err)
}

func Test_Users_ResetPassword_UnknownEmail(t *testing.T) {
	// setup
	a := givenApp(t)

	// act
	reset, err := a.Users.ResetPassword(t.Context(), "nobody@example.com", "newsecret", "newsecret")

	// assert
	assert.NoError(t, err)
	assert.False(t, reset)
}

func Test_Users_ResetPassword_WithMismatchedConfirmation_Fails(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")

	// act
	reset, err := a.Users.ResetPassword(t.Context(), "ada@example.com", "newsecret", "other")

	// assert
	assert.False(t, reset)
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.EqualError(t, err, "Passwords do not match")
}

func Test_Users_Login_WithUnknownEmail_Fails(t *testing.T) {
	// setup
	a := givenApp(t)

	// act
	_, _, err := a.Users.Login(t.Context(), "nobody@example.com", givenPassword)

	// assert
	assert.ErrorIs(t, err, core.ErrInvalidCredentials)
	assert.EqualError(t, err, "Invalid email or password")
}

func Test_Users_SessionFromToken(t *testing.T) {
	// setup
	a := givenApp(t)
	user := givenUser(t, a, "Ada", "ada@example.com")

	// act
	session, token, err := a.Users.Login(t.Context(), "ada@example.com", givenPassword)
	require.NoError(t, err)

	fromToken, err := a.Users.SessionFromToken(t.Context(), token)

	// assert
	require.NoError(t, err)
	assert.Equal(t, user.UserID, session.UserID)
	assert.Equal(t, session, fromToken)
}

func Test_Users_SessionFromToken_AfterLogout_Fails(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")
	_, token, err := a.Users.Login(t.Context(), "ada@example.com", givenPassword)
	require.NoError(t, err)

	// act
	require.NoError(t, a.Users.ClearSession(t.Context()))
	_, err = a.Users.SessionFromToken(t.Context(), token)

	// assert
	assert.ErrorIs(t, err, core.ErrNotSignedIn)
}

func Test_Users_SessionFromToken_WithForgedToken_Fails(t *testing.T) {
	// setup
	a := givenApp(t)

	// act
	_, err := a.Users.SessionFromToken(t.Context(), "not.a.token")

	// assert
	assert.ErrorIs(t, err, shell.ErrInvalidSessionToken)
}

func Test_Users_PasswordLongerThan72Bytes_IsAValidationError(t *testing.T) {
	// setup
	a := givenApp(t)
	givenUser(t, a, "Ada", "ada@example.com")
	tooLong := strings.Repeat("a", 73)

	// act
	_, createErr := a.Users.CreateUser(
		t.Context(),
		core.UserProfile{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
		tooLong,
	)
	reset, resetErr := a.Users.ResetPassword(t.Context(), "ada@example.com", tooLong, tooLong)

	// assert
	assert.ErrorIs(t, createErr, core.ErrValidation)
	assert.NotErrorIs(t, createErr, core.ErrStorageUnavailable)
	assert.EqualError(t, createErr, core.ReasonPasswordTooLong)

	assert.False(t, reset)
	assert.ErrorIs(t, resetErr, core.ErrValidation)
	assert.NotErrorIs(t, resetErr, core.ErrStorageUnavailable)

	_, _, err := a.Users.Login(t.Context(), "ada@example.com", givenPassword)
	assert.NoError(t, err)
}
