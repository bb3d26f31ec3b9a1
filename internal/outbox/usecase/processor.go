package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"gocloud.dev/pubsub"

	"github.com/allisson/leadlink/internal/outbox/domain"
)

// Message metadata keys set on every published event.
const (
	MetadataEventID   = "event_id"
	MetadataEventType = "event_type"
)

// PubSubEventProcessor publishes each event's JSON payload to a gocloud.dev pub/sub topic.
type PubSubEventProcessor struct {
	topic  *pubsub.Topic
	logger *slog.Logger
}

// NewPubSubEventProcessor creates a processor sending to topic. The caller owns the topic
// and shuts it down.
func NewPubSubEventProcessor(topic *pubsub.Topic, logger *slog.Logger) *PubSubEventProcessor {
	return &PubSubEventProcessor{topic: topic, logger: logger}
}

// Process sends the event and waits for the broker to accept it.
func (p *PubSubEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	msg := &pubsub.Message{
		Body: []byte(event.Payload),
		Metadata: map[string]string{
			MetadataEventID:   event.ID.String(),
			MetadataEventType: event.EventType,
		},
	}

	if err := p.topic.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.EventType, err)
	}

	p.logger.Debug("published outbox event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.EventType),
	)
	return nil
}

// LoggingEventProcessor only logs events. It is used when no topic is configured.
type LoggingEventProcessor struct {
	logger *slog.Logger
}

// NewLoggingEventProcessor creates a LoggingEventProcessor.
func NewLoggingEventProcessor(logger *slog.Logger) *LoggingEventProcessor {
	return &LoggingEventProcessor{logger: logger}
}

// Process logs the event and never fails.
func (p *LoggingEventProcessor) Process(ctx context.Context, event *domain.OutboxEvent) error {
	p.logger.Info("outbox event",
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", event.EventType),
		slog.String("payload", event.Payload),
	)
	return nil
}
