package app

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/AntonStoeckl/eventhub/features/command/adjustattendees"
	"github.com/AntonStoeckl/eventhub/features/command/createevent"
	"github.com/AntonStoeckl/eventhub/features/command/deleteevent"
	"github.com/AntonStoeckl/eventhub/features/query/eventcatalog"
	"github.com/AntonStoeckl/eventhub/features/query/eventdetails"
	"github.com/AntonStoeckl/eventhub/features/query/eventsbyorganizer"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

// EventDetails is an Event with its remaining spots.
type EventDetails = eventdetails.EventDetails

// Events is the event store. Create and Delete act as the signed in user.
type Events struct {
	handlers handlerBundle
	identity sessionIdentity
	now      func() time.Time
}

// Create makes the signed in user the organizer of a new Event.
func (e *Events) Create(ctx context.Context, draft core.EventDraft) (Event, error) {
	userID, err := e.identity.userID(ctx)
	if err != nil {
		return Event{}, err
	}

	event, _, err := e.handlers.createEvent.Handle(ctx, createevent.BuildCommand(uuid.New(), userID, draft, e.now()))

	return event, err
}

// AdjustAttendees moves the attendee counter by delta, clamped to [0, capacity]. It returns false
// for an unknown or deleted Event.
func (e *Events) AdjustAttendees(ctx context.Context, eventID uuid.UUID, delta int) (bool, error) {
	_, _, err := e.handlers.adjustAttendees.Handle(ctx, adjustattendees.BuildCommand(eventID, delta, e.now()))
	switch {
	case errors.Is(err, core.ErrNotFound):
		return false, nil
	case err != nil:
		return false, err
	}

	return true, nil
}

// ListByOrganizer returns the Events userID created, newest first.
func (e *Events) ListByOrganizer(ctx context.Context, userID uuid.UUID) ([]Event, error) {
	result, err := e.handlers.eventsByOrganizer.Handle(ctx, eventsbyorganizer.BuildQuery(userID))
	if err != nil {
		return nil, err
	}

	return result.Events, nil
}

func (e *Events) FindByID(ctx context.Context, eventID uuid.UUID) (EventDetails, error) {
	return e.handlers.eventDetails.Handle(ctx, eventdetails.BuildQuery(eventID))
}

// Delete removes an Event of the signed in user. It returns false if the Event was already
// deleted. Events of other users are not found.
func (e *Events) Delete(ctx context.Context, eventID uuid.UUID) (bool, error) {
	userID, err := e.identity.userID(ctx)
	if err != nil {
		return false, err
	}

	_, result, err := e.handlers.deleteEvent.Handle(ctx, deleteevent.BuildCommand(eventID, userID, e.now()))
	if err != nil {
		return false, err
	}

	return !result.Idempotent, nil
}

// Catalog searches title and location case-insensitively. A category of "" or "all" matches all.
func (e *Events) Catalog(ctx context.Context, search, category string) ([]Event, error) {
	result, err := e.handlers.eventCatalog.Handle(ctx, eventcatalog.BuildQuery(search, category))
	if err != nil {
		return nil, err
	}

	return result.Events, nil
}
