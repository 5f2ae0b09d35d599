package oteladapters

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/log"
)

func Test_toLogAttributes(t *testing.T) {
	// act
	attrs := toLogAttributes([]any{
		"event_type", "TicketsRegistered",
		"event_count", 2,
		"duration_ms", 1.25,
		"retry", true,
		"error", errors.New("boom"),
		42, "non string key",
		"dangling",
	})

	// assert
	require.Len(t, attrs, 5)
	assert.Equal(t, "event_type", attrs[0].Key)
	assert.Equal(t, "TicketsRegistered", attrs[0].Value.AsString())
	assert.Equal(t, log.KindInt64, attrs[1].Value.Kind())
	assert.Equal(t, int64(2), attrs[1].Value.AsInt64())
	assert.Equal(t, log.KindFloat64, attrs[2].Value.Kind())
	assert.Equal(t, log.KindBool, attrs[3].Value.Kind())
	assert.Equal(t, "boom", attrs[4].Value.AsString())
}
