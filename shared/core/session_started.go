package core

import (
	"time"

	"github.com/google/uuid"
)

// SessionStartedEventType is the event type identifier.
const SessionStartedEventType = "SessionStarted"

// SessionStarted fills the session slot with UserID. It replaces any session that was active before.
type SessionStarted struct {
	SessionID  SessionIDString
	UserID     UserIDString
	OccurredAt OccurredAtTS
}

// BuildSessionStarted creates a new SessionStarted event.
func BuildSessionStarted(sessionID uuid.UUID, userID uuid.UUID, occurredAt time.Time) SessionStarted {
	return SessionStarted{
		SessionID:  sessionID.String(),
		UserID:     userID.String(),
		OccurredAt: ToOccurredAt(occurredAt),
	}
}

func (e SessionStarted) IsEventType() string {
	return SessionStartedEventType
}

func (e SessionStarted) HasOccurredAt() time.Time {
	return e.OccurredAt
}
