// Package redisbus fans order lifecycle events out to interested clients over
// Redis pub/sub. Every room maps to one Redis channel, so any number of API
// instances can serve live streams while sharing a single Redis.
package redisbus

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// channelPrefix namespaces event channels within the shared Redis.
const channelPrefix = "events:"

// ChannelFor maps a room name to its Redis pub/sub channel.
func ChannelFor(room string) string {
	return channelPrefix + room
}

// Envelope is the wire format carried on each channel. The payload stays raw
// so subscribers can forward it verbatim without re-marshalling.
type Envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
}

// publishClient is the slice of redis.Client the publisher needs.
type publishClient interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// Publisher implements ports.EventPublisher over Redis pub/sub.
type Publisher struct {
	client publishClient
}

// NewPublisher creates a Redis-backed event publisher.
func NewPublisher(client publishClient) *Publisher {
	return &Publisher{client: client}
}

// Publish sends one event to the channel backing the given room. Delivery is
// fire-and-forget: Redis pub/sub keeps no history, clients that are not
// subscribed at publish time simply miss the event.
func (p *Publisher) Publish(ctx context.Context, room string, event string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	envelope, err := json.Marshal(Envelope{Event: event, Payload: body})
	if err != nil {
		return err
	}

	return p.client.Publish(ctx, ChannelFor(room), envelope).Err()
}
