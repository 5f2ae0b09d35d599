package endsession_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/eventhub/features/command/endsession"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

func Test_Decide_ActiveSession_GeneratesSessionEnded(t *testing.T) {
	// arrange
	sessionID, userID := uuid.New(), uuid.New()
	history := core.DomainEvents{core.BuildSessionStarted(sessionID, userID, time.Now())}

	// act
	result := endsession.Decide(history, endsession.BuildCommand(time.Now()))

	// assert
	require.True(t, result.HasEventToAppend())
	assert.Equal(t, core.SessionEndedEventType, result.Event.IsEventType())
	assert.False(t, core.ProjectSession(append(history, result.Event)).Active)
}

func Test_Decide_EmptySlot_IsIdempotent(t *testing.T) {
	sessionID, userID := uuid.New(), uuid.New()

	for name, history := range map[string]core.DomainEvents{
		"never started": {},
		"already ended": {
			core.BuildSessionStarted(sessionID, userID, time.Now()),
			core.BuildSessionEnded(sessionID, userID, time.Now()),
		},
	} {
		t.Run(name, func(t *testing.T) {
			result := endsession.Decide(history, endsession.BuildCommand(time.Now()))

			assert.True(t, result.IsIdempotent())
		})
	}
}
