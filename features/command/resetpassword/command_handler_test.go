package resetpassword_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/features/command/resetpassword"
	"github.com/AntonStoeckl/eventhub/features/command/signupuser"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	. "github.com/AntonStoeckl/eventhub/testutil/eswrapper" //nolint:revive
)

func Test_CommandHandler_Handle_OnlyTouchesTheGivenEmail(t *testing.T) {
	// setup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	hasher := shell.NewPasswordHasher(bcrypt.MinCost)
	es := CreateEventStore(t)
	signUpHandler := signupuser.NewCommandHandler(es, hasher)
	handler := resetpassword.NewCommandHandler(es, hasher)

	// arrange
	ada, _, err := signUpHandler.Handle(ctx, signupuser.BuildCommand(GivenUniqueID(t), core.UserProfile{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"}, "secret1", time.Now()))
	require.NoError(t, err)
	grace, _, err := signUpHandler.Handle(ctx, signupuser.BuildCommand(GivenUniqueID(t), core.UserProfile{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"}, "secret1", time.Now()))
	require.NoError(t, err)

	// act
	_, result, err := handler.Handle(ctx, resetpassword.BuildCommand("ada@example.com", "secret2", "secret2", time.Now()))

	// assert
	require.NoError(t, err)
	assert.False(t, result.Idempotent)

	storableEvents, _, err := es.Query(eventstore.WithStrongConsistency(ctx), eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)
	history, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err)

	adaAfter := core.ProjectUser(history, ada.UserID)
	graceAfter := core.ProjectUser(history, grace.UserID)
	assert.True(t, hasher.Matches(adaAfter.PasswordHash, "secret2"))
	assert.False(t, hasher.Matches(adaAfter.PasswordHash, "secret1"))
	assert.Equal(t, grace.PasswordHash, graceAfter.PasswordHash)
}

func Test_CommandHandler_Handle_Error_UnknownEmail(t *testing.T) {
	// setup
	ctx := context.Background()
	es := CreateEventStore(t)
	handler := resetpassword.NewCommandHandler(es, shell.NewPasswordHasher(bcrypt.MinCost))

	// act
	_, _, err := handler.Handle(ctx, resetpassword.BuildCommand("nobody@example.com", "secret2", "secret2", time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
	events, _, err := es.Query(ctx, eventstore.BuildEventFilter().MatchingAnyEvent())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func Test_CommandHandler_Handle_Error_Mismatch(t *testing.T) {
	// setup
	handler := resetpassword.NewCommandHandler(CreateEventStore(t), shell.NewPasswordHasher(bcrypt.MinCost))

	// act
	_, _, err := handler.Handle(context.Background(), resetpassword.BuildCommand("ada@example.com", "secret2", "secret", time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrValidation)
	assert.EqualError(t, err, core.ReasonPasswordsMismatch)
}
