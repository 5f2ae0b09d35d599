package eventdetails

import (
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// EventDetails is an Event as shown on its detail page.
type EventDetails struct {
	Event          core.EventState
	SpotsRemaining int
}
