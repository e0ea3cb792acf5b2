// Package notify fans emergency events out to responder channels. The
// default transport is a Redis pub/sub channel consumed by downstream
// dispatch clients; deployments without Redis fall back to a no-op
// publisher so the alert lifecycle never depends on the broker.
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"campus-safety/internal/config"
)

// Event is the payload published for responder-facing notifications
type Event struct {
	Kind       string    `json:"kind"`
	ResourceID string    `json:"resource_id"`
	Summary    string    `json:"summary"`
	Severity   string    `json:"severity,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Notifier publishes responder-facing events
type Notifier interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// RedisNotifier publishes events to a Redis pub/sub channel
type RedisNotifier struct {
	client  *redis.Client
	channel string
}

// NewRedisNotifier connects to Redis and verifies the connection
func NewRedisNotifier(cfg config.RedisConfig) (*RedisNotifier, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisNotifier{client: client, channel: cfg.Channel}, nil
}

// Publish serializes the event and publishes it to the configured channel
func (n *RedisNotifier) Publish(ctx context.Context, event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Close closes the underlying Redis connection
func (n *RedisNotifier) Close() error {
	return n.client.Close()
}

// NopNotifier discards events. Used when no broker is configured so
// callers never need a nil check.
type NopNotifier struct{}

func (NopNotifier) Publish(ctx context.Context, event Event) error { return nil }
func (NopNotifier) Close() error                                   { return nil }

// FromConfig returns a Redis notifier when enabled, else a no-op one
func FromConfig(cfg config.RedisConfig) Notifier {
	if !cfg.Enabled {
		return NopNotifier{}
	}
	notifier, err := NewRedisNotifier(cfg)
	if err != nil {
		slog.Warn("Redis notifier unavailable, falling back to no-op publisher", "error", err)
		return NopNotifier{}
	}
	slog.Info("Redis notifier connected", "addr", cfg.Addr, "channel", cfg.Channel)
	return notifier
}
