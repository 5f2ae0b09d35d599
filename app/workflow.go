package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/features/command/cancelregistration"
	"github.com/AntonStoeckl/eventhub/features/command/registerforevent"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// Workflow registers the signed in user for Events and cancels their Registrations. Each call
// appends one event, so the attendee counter and the Registrations never disagree.
type Workflow struct {
	handlers handlerBundle
	identity sessionIdentity
	pricing  core.Pricing
	now      func() time.Time
}

// Register buys ticketCount tickets. A repeat registration adds to the existing one. It returns
// the merged Registration and the price of this purchase.
func (w *Workflow) Register(
	ctx context.Context,
	eventID uuid.UUID,
	ticketCount int,
	contact core.ContactDetails,
) (Registration, Quote, error) {
	userID, err := w.identity.userID(ctx)
	if err != nil {
		return Registration{}, Quote{}, err
	}

	command := registerforevent.BuildCommand(eventID, userID, ticketCount, contact, w.now())

	registration, _, err := w.handlers.registerForEvent.Handle(ctx, command)
	if err != nil {
		return Registration{}, Quote{}, err
	}

	return registration, w.pricing.QuoteFor(ticketCount), nil
}

// Cancel removes the Registration and gives its tickets back, even for a deleted Event.
func (w *Workflow) Cancel(ctx context.Context, eventID uuid.UUID) error {
	userID, err := w.identity.userID(ctx)
	if err != nil {
		return err
	}

	_, _, err = w.handlers.cancelRegistration.Handle(ctx, cancelregistration.BuildCommand(eventID, userID, w.now()))

	return err
}
