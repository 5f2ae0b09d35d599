package resetpassword

import (
	"time"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "ResetPassword"
)

// Command represents the intent to replace the password of the account holding Email.
type Command struct {
	Email        string
	NewPassword  string
	Confirmation string
	OccurredAt   core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(email, newPassword, confirmation string, occurredAt time.Time) Command {
	return Command{
		Email:        email,
		NewPassword:  newPassword,
		Confirmation: confirmation,
		OccurredAt:   core.ToOccurredAt(occurredAt),
	}
}
