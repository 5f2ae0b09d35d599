package cancelregistration_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/features/command/cancelregistration"
	"github.com/AntonStoeckl/eventhub/features/command/registerforevent"
	"github.com/AntonStoeckl/eventhub/shared/core"
	"github.com/AntonStoeckl/eventhub/shared/shell"
	. "github.com/AntonStoeckl/eventhub/testutil/eswrapper" //nolint:revive
)

func givenEventWasCreated(t *testing.T, ctx context.Context, es EventStore, capacity int) uuid.UUID {
	t.Helper()

	eventID := GivenUniqueID(t)
	created := core.BuildEventCreated(eventID, core.EventDraft{Title: "Go Meetup", Capacity: capacity, Category: "meetup"}, "Grace Hopper", GivenUniqueID(t), time.Now())
	storableEvent, err := shell.StorableEventFrom(created, shell.NewCommandEventMetadata())
	require.NoError(t, err)
	require.NoError(t, es.Append(ctx, eventstore.BuildEventFilter().MatchingAnyEvent(), 0, storableEvent))

	return eventID
}

func eventHistory(t *testing.T, ctx context.Context, es EventStore, eventID uuid.UUID) core.DomainEvents {
	t.Helper()

	storableEvents, _, err := es.Query(ctx, cancelregistration.BuildEventFilter(cancelregistration.Command{EventID: eventID}))
	require.NoError(t, err)
	history, err := shell.DomainEventsFrom(storableEvents)
	require.NoError(t, err)

	return history
}

func Test_CommandHandler_Handle_RegisterCancelRegister(t *testing.T) {
	// setup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	es := CreateEventStore(t)
	register := registerforevent.NewCommandHandler(es)
	handler := cancelregistration.NewCommandHandler(es)
	contact := core.ContactDetails{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com", Phone: "1"}

	// arrange
	eventID := givenEventWasCreated(t, ctx, es, 100)
	userID := GivenUniqueID(t)
	_, _, err := register.Handle(ctx, registerforevent.BuildCommand(eventID, GivenUniqueID(t), 4, contact, time.Now()))
	require.NoError(t, err)
	_, _, err = register.Handle(ctx, registerforevent.BuildCommand(eventID, userID, 3, contact, time.Now()))
	require.NoError(t, err)
	_, _, err = register.Handle(ctx, registerforevent.BuildCommand(eventID, userID, 2, contact, time.Now()))
	require.NoError(t, err)
	require.Equal(t, 9, core.ProjectEventState(eventHistory(t, ctx, es, eventID), eventID.String()).Attendees)

	// act
	_, _, err = handler.Handle(ctx, cancelregistration.BuildCommand(eventID, userID, time.Now()))

	// assert
	require.NoError(t, err)
	history := eventHistory(t, ctx, es, eventID)
	assert.Equal(t, 4, core.ProjectEventState(history, eventID.String()).Attendees)
	assert.False(t, core.ProjectRegistration(history, eventID.String(), userID.String()).Exists)

	// act
	registration, _, err := register.Handle(ctx, registerforevent.BuildCommand(eventID, userID, 1, contact, time.Now()))

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1, registration.TicketCount)
	assert.Equal(t, 5, core.ProjectEventState(eventHistory(t, ctx, es, eventID), eventID.String()).Attendees)
}

func Test_CommandHandler_Handle_Error_NoRegistration_AppendsNothing(t *testing.T) {
	// setup
	ctx := context.Background()
	es := CreateEventStore(t)
	handler := cancelregistration.NewCommandHandler(es)

	// arrange
	eventID := givenEventWasCreated(t, ctx, es, 10)

	// act
	_, _, err := handler.Handle(ctx, cancelregistration.BuildCommand(eventID, GivenUniqueID(t), time.Now()))

	// assert
	assert.ErrorIs(t, err, core.ErrNotFound)
	assert.Len(t, eventHistory(t, ctx, es, eventID), 1)
}
