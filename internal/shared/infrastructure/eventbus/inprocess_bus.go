package eventbus

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"
)

// HandlerFunc handles a consumed event envelope.
type HandlerFunc func(ctx context.Context, env *Envelope) error

// InProcessEventBus is an in-memory event bus for local mode (no RabbitMQ).
// Events are delivered synchronously to registered handlers.
type InProcessEventBus struct {
	handlers map[string][]HandlerFunc
	logger   *slog.Logger
	mu       sync.Mutex
}

// NewInProcessEventBus creates a new in-process event bus.
func NewInProcessEventBus(logger *slog.Logger) *InProcessEventBus {
	if logger == nil {
		logger = slog.Default()
	}
	return &InProcessEventBus{
		handlers: make(map[string][]HandlerFunc),
		logger:   logger,
	}
}

// Subscribe registers a handler for a routing key.
func (b *InProcessEventBus) Subscribe(routingKey string, handler HandlerFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[routingKey] = append(b.handlers[routingKey], handler)
}

// Publish dispatches an event synchronously to all registered handlers.
// Handler errors are logged, not returned; local mode never fails a publish.
func (b *InProcessEventBus) Publish(ctx context.Context, routingKey string, payload []byte) error {
	b.mu.Lock()
	handlers := b.handlers[routingKey]
	b.mu.Unlock()

	env := &Envelope{}
	if err := json.Unmarshal(payload, env); err != nil {
		b.logger.Error("failed to unmarshal event payload",
			"routing_key", routingKey,
			"error", err,
		)
		return nil
	}
	if env.RoutingKey == "" {
		env.RoutingKey = routingKey
	}

	start := time.Now()
	for _, handler := range handlers {
		if err := handler(ctx, env); err != nil {
			b.logger.Error("event handler failed",
				"routing_key", routingKey,
				"event_id", env.EventID,
				"error", err,
			)
		}
	}

	b.logger.Debug("event dispatched",
		"routing_key", routingKey,
		"event_id", env.EventID,
		"handlers", len(handlers),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// Close implements Publisher. The in-process bus holds no resources.
func (b *InProcessEventBus) Close() error {
	return nil
}
