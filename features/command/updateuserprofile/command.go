package updateuserprofile

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "UpdateUserProfile"
)

// Command represents the intent to change profile fields of a user.
type Command struct {
	UserID     uuid.UUID
	Changes    core.ProfileChanges
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, changes core.ProfileChanges, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		Changes:    changes,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
