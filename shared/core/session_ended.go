package core

import (
	"time"

	"github.com/google/uuid"
)

// SessionEndedEventType is the event type identifier.
const SessionEndedEventType = "SessionEnded"

// SessionEnded clears the session slot.
type SessionEnded struct {
	SessionID  SessionIDString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildSessionEnded creates a new SessionEnded event.
func BuildSessionEnded(sessionID uuid.UUID, userID uuid.UUID, occurredAt time.Time) SessionEnded {
	return SessionEnded{
		SessionID:  sessionID.String(),
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e SessionEnded) IsEventType() string {
	return SessionEndedEventType
}

func (e SessionEnded) HasOccurredAt() time.Time {
	return e.OccurredAt
}
