// Package notifier publishes domain events to a Redis channel. Publishing is
// strictly best effort: the API never fails or blocks a request because the
// notification side-channel is down.
package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/user/newswire-go/config"
)

const publishTimeout = 2 * time.Second

// Emitter is the event side-channel the services depend on. Emit reports
// whether the event was handed off for delivery; callers may surface the flag
// but must not treat false as an error.
type Emitter interface {
	Emit(eventType string, payload map[string]interface{}) bool
}

// Notifier publishes JSON event envelopes to a single Redis channel.
type Notifier struct {
	client  *redis.Client
	channel string
	log     *zap.Logger
}

// New connects to Redis and returns a notifier. When the address is empty or
// the server is unreachable the notifier still works, it just reports every
// emit as not delivered.
func New(cfg *config.RedisConfig, log *zap.Logger) *Notifier {
	n := &Notifier{channel: cfg.Channel, log: log}
	if cfg.Addr == "" {
		log.Info("notifier disabled, no redis address configured")
		return n
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn("notifier could not reach redis, events will be dropped",
			zap.String("addr", cfg.Addr), zap.Error(err))
		_ = client.Close()
		return n
	}

	n.client = client
	log.Info("notifier connected", zap.String("addr", cfg.Addr), zap.String("channel", cfg.Channel))
	return n
}

// Emit publishes an event envelope with the given type and payload. The
// publish happens in a detached goroutine so request handling never waits on
// Redis. Returns false when the notifier is disabled or the envelope cannot
// be encoded.
func (n *Notifier) Emit(eventType string, payload map[string]interface{}) bool {
	if n.client == nil {
		n.log.Debug("event dropped, notifier disabled", zap.String("type", eventType))
		return false
	}

	envelope := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		envelope[k] = v
	}
	envelope["type"] = eventType

	body, err := json.Marshal(envelope)
	if err != nil {
		n.log.Warn("event dropped, marshal failed", zap.String("type", eventType), zap.Error(err))
		return false
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		if err := n.client.Publish(ctx, n.channel, body).Err(); err != nil {
			n.log.Warn("event publish failed", zap.String("type", eventType), zap.Error(err))
		}
	}()
	return true
}

// Close releases the Redis connection.
func (n *Notifier) Close() error {
	if n.client == nil {
		return nil
	}
	return n.client.Close()
}
