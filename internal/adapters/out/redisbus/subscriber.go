package redisbus

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// Subscriber bridges a Redis pub/sub channel into a Go channel of envelopes.
type Subscriber struct {
	client *redis.Client
}

// NewSubscriber creates a subscriber over the given Redis client.
func NewSubscriber(client *redis.Client) *Subscriber {
	return &Subscriber{client: client}
}

// Subscribe listens on the channel backing the given room and delivers decoded
// envelopes until ctx is cancelled. Messages that fail to decode are logged
// and skipped rather than tearing the stream down.
func (s *Subscriber) Subscribe(ctx context.Context, room string) (<-chan Envelope, error) {
	pubsub := s.client.Subscribe(ctx, ChannelFor(room))

	// Confirm the subscription before handing the channel out.
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, err
	}

	out := make(chan Envelope)
	go func() {
		defer close(out)
		defer func() { _ = pubsub.Close() }()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}

				var envelope Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
					slog.Warn("dropping malformed event", "channel", msg.Channel, "error", err)
					continue
				}

				select {
				case out <- envelope:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
