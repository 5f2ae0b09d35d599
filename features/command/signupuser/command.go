package signupuser

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "SignUpUser"
)

// Command represents the intent to create a user account.
type Command struct {
	UserID     uuid.UUID
	Profile    core.UserProfile
	Password   string
	OccurredAt core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(userID uuid.UUID, profile core.UserProfile, password string, occurredAt time.Time) Command {
	return Command{
		UserID:     userID,
		Profile:    profile,
		Password:   password,
		OccurredAt: core.ToOccurredAt(occurredAt),
	}
}
