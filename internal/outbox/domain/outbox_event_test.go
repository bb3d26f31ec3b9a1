package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOutboxEvent(t *testing.T) {
	t.Run("Success_EncodesPayload", func(t *testing.T) {
		event, err := NewOutboxEvent("lead.captured", map[string]any{"lead_id": "abc"})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, event.ID)
		assert.Equal(t, uuid.Version(7), event.ID.Version())
		assert.Equal(t, "lead.captured", event.EventType)
		assert.JSONEq(t, `{"lead_id":"abc"}`, event.Payload)
		assert.Equal(t, OutboxEventStatusPending, event.Status)
		assert.Zero(t, event.Retries)
	})

	t.Run("Error_UnsupportedPayload", func(t *testing.T) {
		event, err := NewOutboxEvent("lead.captured", map[string]any{"ch": make(chan int)})

		assert.Nil(t, event)
		assert.ErrorContains(t, err, "lead.captured")
	})
}

func TestOutboxEvent_MarkFailed(t *testing.T) {
	event := &OutboxEvent{Status: OutboxEventStatusPending}

	event.MarkFailed(errors.New("topic unavailable"), 2)
	assert.Equal(t, 1, event.Retries)
	assert.Equal(t, OutboxEventStatusPending, event.Status)
	require.NotNil(t, event.LastError)
	assert.Equal(t, "topic unavailable", *event.LastError)

	event.MarkFailed(errors.New("topic unavailable again"), 2)
	assert.Equal(t, 2, event.Retries)
	assert.Equal(t, OutboxEventStatusFailed, event.Status)
	assert.Equal(t, "topic unavailable again", *event.LastError)
}

func TestOutboxEvent_MarkProcessed(t *testing.T) {
	now := time.Date(2025, 1, 23, 10, 0, 0, 0, time.UTC)
	event := &OutboxEvent{Status: OutboxEventStatusPending}

	event.MarkProcessed(now)

	assert.Equal(t, OutboxEventStatusProcessed, event.Status)
	require.NotNil(t, event.ProcessedAt)
	assert.Equal(t, now, *event.ProcessedAt)
}
