package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

type fakeChannelClient struct {
	channel  string
	messages [][]byte
	err      error
	pingErr  error
	closed   bool
}

func (f *fakeChannelClient) Publish(_ context.Context, channel string, message interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.channel = channel
	f.messages = append(f.messages, message.([]byte))
	return nil
}

func (f *fakeChannelClient) Ping(context.Context) error { return f.pingErr }

func (f *fakeChannelClient) Close() error {
	f.closed = true
	return nil
}

type fakeQueueSender struct {
	queue  string
	bodies []any
	urlErr error
}

func (f *fakeQueueSender) SendMessage(_ context.Context, queueName string, body any) error {
	f.queue = queueName
	f.bodies = append(f.bodies, body)
	return nil
}

func (f *fakeQueueSender) LookupQueueURL(_ context.Context, queueName string) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "http://localhost:4566/000000000000/" + queueName, nil
}

func sampleEvent() model.TodoEvent {
	return model.NewTodoEvent(model.TodoCreated, 1, 10, &entity.Todo{ID: 10, Title: "Buy milk", OwnerID: 1})
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher()

	assert.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	assert.Equal(t, model.StatusUnknown, publisher.Health(context.Background()).Status)
	assert.NoError(t, publisher.Close())
}

func TestRedisPublisher_PublishesJSON(t *testing.T) {
	client := &fakeChannelClient{}
	publisher := NewRedisPublisher(client, "todo-api::todo-events")

	require.NoError(t, publisher.Publish(context.Background(), sampleEvent()))
	require.Len(t, client.messages, 1)
	assert.Equal(t, "todo-api::todo-events", client.channel)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(client.messages[0], &decoded))
	assert.Equal(t, "todo.created", decoded["type"])
	assert.Equal(t, float64(10), decoded["todo_id"])
	assert.Equal(t, float64(1), decoded["user_id"])
	assert.Equal(t, "Buy milk", decoded["todo"].(map[string]any)["title"])
}

func TestRedisPublisher_WrapsErrors(t *testing.T) {
	cause := errors.New("connection refused")
	publisher := NewRedisPublisher(&fakeChannelClient{err: cause}, "events")

	err := publisher.Publish(context.Background(), sampleEvent())
	assert.ErrorIs(t, err, cause)
}

func TestRedisPublisher_Health(t *testing.T) {
	client := &fakeChannelClient{}
	publisher := NewRedisPublisher(client, "events")
	assert.Equal(t, model.StatusUp, publisher.Health(context.Background()).Status)

	client.pingErr = errors.New("i/o timeout")
	health := publisher.Health(context.Background())
	assert.Equal(t, model.StatusDown, health.Status)
	assert.Equal(t, "i/o timeout", health.Details["message"])

	require.NoError(t, publisher.Close())
	assert.True(t, client.closed)
}

func TestSQSPublisher(t *testing.T) {
	sender := &fakeQueueSender{}
	publisher := NewSQSPublisher(sender, "todo-events")

	event := sampleEvent()
	require.NoError(t, publisher.Publish(context.Background(), event))
	assert.Equal(t, "todo-events", sender.queue)
	assert.Equal(t, []any{event}, sender.bodies)

	health := publisher.Health(context.Background())
	assert.Equal(t, model.StatusUp, health.Status)
	assert.Equal(t, "todo-events", health.Details["queue"])

	sender.urlErr = errors.New("queue does not exist")
	assert.Equal(t, model.StatusDown, publisher.Health(context.Background()).Status)
}
