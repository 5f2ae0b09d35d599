package registerforevent

import (
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/shared/core"
)

const (
	commandType = "RegisterForEvent"
)

// Command represents the intent of a user to claim TicketCount spots of an Event.
type Command struct {
	EventID     uuid.UUID
	UserID      uuid.UUID
	TicketCount int
	Contact     core.ContactDetails
	OccurredAt  core.OccurredAtTS
}

// CommandType returns the type identifier for this command, used for observability and routing.
func (c Command) CommandType() string {
	return commandType
}

// BuildCommand creates a new Command with the provided parameters.
func BuildCommand(
	eventID uuid.UUID,
	userID uuid.UUID,
	ticketCount int,
	contact core.ContactDetails,
	occurredAt time.Time,
) Command {
	return Command{
		EventID:     eventID,
		UserID:      userID,
		TicketCount: ticketCount,
		Contact:     contact,
		OccurredAt:  core.ToOccurredAt(occurredAt),
	}
}
