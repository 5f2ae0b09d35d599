package cancelregistration

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "CancelRegistration"
)

// Command represents the intent of a user to give back all tickets for an Event.
type Command struct {
	EventID    uuid.UUID
	UserID     uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(eventID uuid.UUID, userID uuid.UUID, occurredAt time.Time) Command {
	return Command{
		EventID:    eventID,
		UserID:     userID,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
