package registrationsofuser

import (
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Stats are the totals shown on the dashboard. TotalSpent includes the service fee.
type Stats struct {
	EventsRegistered int
	TotalTickets     int
	TotalSpent       int
}

// Dashboard holds the Registrations of a user, newest first.
type Dashboard struct {
	UserID        core.UserIDString
	Registrations []core.RegistrationState
	Stats         Stats
}
