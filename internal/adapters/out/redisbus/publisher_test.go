package redisbus

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPublishClient struct {
	mock.Mock
}

func (m *MockPublishClient) Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd {
	args := m.Called(ctx, channel, message)
	cmd := redis.NewIntCmd(ctx)
	if err := args.Error(0); err != nil {
		cmd.SetErr(err)
	}
	return cmd
}

func Test_Publisher_Publish_WrapsPayloadInEnvelope(t *testing.T) {
	// Arrange
	ctx := context.Background()
	client := new(MockPublishClient)

	var sent []byte
	client.On("Publish", ctx, "events:order-123", mock.Anything).
		Run(func(args mock.Arguments) {
			sent = args.Get(2).([]byte)
		}).
		Return(nil).Once()

	publisher := NewPublisher(client)

	// Act
	err := publisher.Publish(ctx, "order-123", "ORDER_UPDATED", map[string]string{
		"orderId": "order-123",
		"status":  "PREPARING",
	})

	// Assert
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(sent, &envelope))
	assert.Equal(t, "ORDER_UPDATED", envelope.Event)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(envelope.Payload, &payload))
	assert.Equal(t, "PREPARING", payload["status"])

	client.AssertExpectations(t)
}

func Test_Publisher_Publish_ReturnsRedisError(t *testing.T) {
	// Arrange
	ctx := context.Background()
	client := new(MockPublishClient)
	client.On("Publish", ctx, "events:kitchen-9", mock.Anything).
		Return(errors.New("connection refused")).Once()

	publisher := NewPublisher(client)

	// Act
	err := publisher.Publish(ctx, "kitchen-9", "NEW_ORDER", map[string]string{"orderId": "o1"})

	// Assert
	assert.ErrorContains(t, err, "connection refused")
	client.AssertExpectations(t)
}

func Test_Publisher_Publish_RejectsUnmarshallablePayload(t *testing.T) {
	// Arrange
	publisher := NewPublisher(new(MockPublishClient))

	// Act
	err := publisher.Publish(context.Background(), "order-1", "NEW_ORDER", make(chan int))

	// Assert
	assert.Error(t, err)
}

func Test_ChannelFor_PrefixesRoomName(t *testing.T) {
	assert.Equal(t, "events:abc", ChannelFor("abc"))
}
