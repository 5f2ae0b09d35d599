package eventstore_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/eventhub/eventstore"
)

func Test_BuildStorableEvent(t *testing.T) {
	occurredAt := time.Unix(0, 0).UTC()

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{name: "valid payload and metadata", payloadJSON: []byte(`{"EventID":"e-1"}`), metadataJSON: []byte(`{}`)},
		{name: "invalid payload", payloadJSON: []byte(`{"EventID":`), metadataJSON: []byte(`{}`), expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "empty payload", payloadJSON: []byte(``), metadataJSON: []byte(`{}`), expectedErr: eventstore.ErrInvalidPayloadJSON},
		{name: "invalid metadata", payloadJSON: []byte(`{}`), metadataJSON: []byte(`nope`), expectedErr: eventstore.ErrInvalidMetadataJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := eventstore.BuildStorableEvent("EventCreated", occurredAt, tt.payloadJSON, tt.metadataJSON)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Empty(t, event)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "EventCreated", event.EventType)
			assert.Equal(t, occurredAt, event.OccurredAt)
			assert.Equal(t, tt.payloadJSON, event.PayloadJSON)
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata(t *testing.T) {
	event, err := eventstore.BuildStorableEventWithEmptyMetadata("SessionEnded", time.Unix(0, 0).UTC(), []byte(`{"SessionID":"s-1"}`))

	assert.NoError(t, err)
	assert.Equal(t, []byte("{}"), event.MetadataJSON)
}

func Test_ConsistencyLevel_FromContext(t *testing.T) {
	ctx := t.Context()

	assert.Equal(t, eventstore.StrongConsistency, eventstore.GetConsistencyLevel(ctx))
	assert.Equal(t, eventstore.EventualConsistency, eventstore.GetConsistencyLevel(eventstore.WithEventualConsistency(ctx)))
	assert.Equal(t, eventstore.StrongConsistency, eventstore.GetConsistencyLevel(eventstore.WithStrongConsistency(ctx)))
	assert.Equal(t, "eventual", eventstore.EventualConsistency.String())
}
