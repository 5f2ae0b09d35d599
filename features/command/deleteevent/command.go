package deleteevent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "DeleteEvent"
)

// Command represents the intent of a user to delete one of their Events.
type Command struct {
	EventID    uuid.UUID
	DeletedBy  uuid.UUID
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(eventID uuid.UUID, deletedBy uuid.UUID, occurredAt time.Time) Command {
	return Command{
		EventID:    eventID,
		DeletedBy:  deletedBy,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
