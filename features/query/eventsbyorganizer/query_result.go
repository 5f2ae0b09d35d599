package eventsbyorganizer

import (
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// OrganizerEvents holds the Events of one organizer, newest first.
type OrganizerEvents struct {
	OrganizerID core.UserIDString
	Events      []core.EventState
	Count       int
}
