// Package eventbus delivers domain events either in-process or through a
// RabbitMQ topic exchange, depending on deployment configuration.
package eventbus

import (
	"context"
	"encoding/json"
	"time"

	"github.com/felixgeelhaar/lifeflow/internal/shared/domain"
	"github.com/google/uuid"
)

// Publisher defines the interface for publishing events to a message broker.
type Publisher interface {
	// Publish sends a message to the event bus.
	Publish(ctx context.Context, routingKey string, payload []byte) error

	// Close closes the publisher connection.
	Close() error
}

// Envelope is the wire representation of a domain event.
type Envelope struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   uuid.UUID       `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
}

// NewEnvelope wraps a domain event for publishing.
func NewEnvelope(event domain.DomainEvent) (*Envelope, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return &Envelope{
		EventID:       event.EventID(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		RoutingKey:    event.RoutingKey(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	}, nil
}

// PublishEvents marshals and publishes a batch of domain events.
// Publish failures are returned to the caller; partial delivery is possible.
func PublishEvents(ctx context.Context, pub Publisher, events []domain.DomainEvent) error {
	for _, event := range events {
		env, err := NewEnvelope(event)
		if err != nil {
			return err
		}
		body, err := json.Marshal(env)
		if err != nil {
			return err
		}
		if err := pub.Publish(ctx, env.RoutingKey, body); err != nil {
			return err
		}
	}
	return nil
}
