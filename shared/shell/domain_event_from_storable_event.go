package shell

import (
	"errors"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/eventhub/eventstore"
	"github.com/AntonStoeckl/eventhub/shared/core"
)

var (
	// ErrMappingToDomainEventFailed is returned when domain event conversion fails.
	ErrMappingToDomainEventFailed = errors.New("mapping to domain event failed")

	// ErrMappingToDomainEventUnknownEventType is returned for unrecognized event types.
	ErrMappingToDomainEventUnknownEventType = errors.New("unknown event type")
)

// DomainEventsFrom converts multiple StorableEvents to DomainEvents.
func DomainEventsFrom(storableEvents eventstore.StorableEvents) (core.DomainEvents, error) {
	domainEvents := make(core.DomainEvents, 0, len(storableEvents))

	for _, storableEvent := range storableEvents {
		domainEvent, err := DomainEventFrom(storableEvent)
		if err != nil {
			return nil, err
		}

		domainEvents = append(domainEvents, domainEvent)
	}

	return domainEvents, nil
}

// DomainEventFrom converts a StorableEvent to its corresponding DomainEvent.
func DomainEventFrom(storableEvent eventstore.StorableEvent) (core.DomainEvent, error) {
	switch storableEvent.EventType {
	case core.UserSignedUpEventType:
		return unmarshalPayload[core.UserSignedUp](storableEvent.PayloadJSON)

	case core.UserProfileUpdatedEventType:
		return unmarshalPayload[core.UserProfileUpdated](storableEvent.PayloadJSON)

	case core.UserPasswordResetEventType:
		return unmarshalPayload[core.UserPasswordReset](storableEvent.PayloadJSON)

	case core.SessionStartedEventType:
		return unmarshalPayload[core.SessionStarted](storableEvent.PayloadJSON)

	case core.SessionEndedEventType:
		return unmarshalPayload[core.SessionEnded](storableEvent.PayloadJSON)

	case core.EventCreatedEventType:
		return unmarshalPayload[core.EventCreated](storableEvent.PayloadJSON)

	case core.EventDeletedEventType:
		return unmarshalPayload[core.EventDeleted](storableEvent.PayloadJSON)

	case core.EventAttendeesAdjustedEventType:
		return unmarshalPayload[core.EventAttendeesAdjusted](storableEvent.PayloadJSON)

	case core.TicketsRegisteredEventType:
		return unmarshalPayload[core.TicketsRegistered](storableEvent.PayloadJSON)

	case core.RegistrationCanceledEventType:
		return unmarshalPayload[core.RegistrationCanceled](storableEvent.PayloadJSON)
	}

	return nil, errors.Join(ErrMappingToDomainEventFailed, ErrMappingToDomainEventUnknownEventType)
}

func unmarshalPayload[E core.DomainEvent](payloadJSON []byte) (core.DomainEvent, error) {
	var payload E

	if err := jsoniter.ConfigFastest.Unmarshal(payloadJSON, &payload); err != nil {
		return nil, errors.Join(ErrMappingToDomainEventFailed, err)
	}

	return payload, nil
}
