package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/features/query/registrationsofuser"
)

type (
	Dashboard      = registrationsofuser.Dashboard
	DashboardStats = registrationsofuser.Stats
)

// Registrations reads the Registrations of the signed in user.
type Registrations struct {
	handlers handlerBundle
	identity sessionIdentity
}

// ListForCurrentUser returns the Registrations newest first, with their totals.
func (r *Registrations) ListForCurrentUser(ctx context.Context) (Dashboard, error) {
	userID, err := r.identity.userID(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	return r.handlers.registrationsOfUser.Handle(ctx, registrationsofuser.BuildQuery(userID))
}

// ForEvent returns false if the signed in user holds no tickets for eventID.
func (r *Registrations) ForEvent(ctx context.Context, eventID uuid.UUID) (Registration, bool, error) {
	dashboard, err := r.ListForCurrentUser(ctx)
	if err != nil {
		return Registration{}, false, err
	}

	for _, registration := range dashboard.Registrations {
		if registration.EventID == eventID.String() {
			return registration, true, nil
		}
	}

	return Registration{}, false, nil
}
