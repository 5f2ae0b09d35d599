package startsession

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "StartSession"
)

// Command represents the intent to fill the session slot with a user.
type Command struct {
	SessionID  uuid.UUID
	UserID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(sessionID uuid.UUID, userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		SessionID:  sessionID,
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
