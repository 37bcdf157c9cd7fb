package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/localbiz/marketplace-api/internal/logger"
)

// Domain event types published to Kafka.
const (
	EventUserRegistered  = "user.registered"
	EventBusinessCreated = "business.created"
	EventBusinessUpdated = "business.updated"
	EventBusinessDeleted = "business.deleted"
	EventMediaCreated    = "media.created"
	EventMediaDeleted    = "media.deleted"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Event is the envelope for a domain event.
type Event struct {
	Type       string    `json:"type"`
	EntityID   string    `json:"entity_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload,omitempty"`
}

// publishEvent publishes a domain event to Kafka. Publishing is best-effort:
// failures are logged and never fail the originating request.
func publishEvent(ctx context.Context, w KafkaWriter, eventType, entityID string, payload any) {
	if w == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event", eventType, "entity_id", entityID)
		return
	}

	data, err := json.Marshal(Event{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	})
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event", eventType, "entity_id", entityID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entityID),
		Value: data,
	}

	if err := w.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event", eventType, "entity_id", entityID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event", eventType, "entity_id", entityID)
	}
}
