package event

import (
	"context"
	"encoding/json"
	"fmt"

	"todo-api/internal/domain/model"
)

// ChannelClient is the subset of the redis client used to publish events.
type ChannelClient interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Ping(ctx context.Context) error
	Close() error
}

type RedisPublisher struct {
	client  ChannelClient
	channel string
}

var _ Publisher = (*RedisPublisher)(nil)

func NewRedisPublisher(client ChannelClient, channel string) *RedisPublisher {
	return &RedisPublisher{client: client, channel: channel}
}

func (publisher *RedisPublisher) Publish(ctx context.Context, event model.TodoEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to serialize event %s: %w", event.Type, err)
	}
	if err := publisher.client.Publish(ctx, publisher.channel, payload); err != nil {
		return fmt.Errorf("failed to publish event %s on %s: %w", event.Type, publisher.channel, err)
	}
	return nil
}

func (publisher *RedisPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	if err := publisher.client.Ping(ctx); err != nil {
		return model.ComponentDown(err)
	}
	return model.ComponentUp(map[string]string{
		"driver":  "redis",
		"channel": publisher.channel,
	})
}

func (publisher *RedisPublisher) Close() error {
	return publisher.client.Close()
}
