package createevent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "CreateEvent"
)

// Command represents the intent to create an Event.
type Command struct {
	EventID    uuid.UUID
	CreatedBy  uuid.UUID
	Draft      core.EventDraft
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(eventID uuid.UUID, createdBy uuid.UUID, draft core.EventDraft, occurredAt time.Time) Command {
	return Command{
		EventID:    eventID,
		CreatedBy:  createdBy,
		Draft:      draft,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
