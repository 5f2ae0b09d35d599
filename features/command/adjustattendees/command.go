package adjustattendees

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "AdjustAttendees"
)

// Command represents the intent to move the attendee counter of an Event by Delta.
type Command struct {
	EventID    uuid.UUID
	Delta      int
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(eventID uuid.UUID, delta int, occurredAt time.Time) Command {
	return Command{
		EventID:    eventID,
		Delta:      delta,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
