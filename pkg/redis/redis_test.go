package redis

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, NewRedisConfig().Validate())
	assert.Error(t, NewRedisConfig().WithHost("").Validate())
	assert.Error(t, NewRedisConfig().WithPort(0).Validate())
	assert.Error(t, NewRedisConfig().WithDatabase(16).Validate())
	assert.Error(t, NewRedisConfig().WithDialTimeout(-time.Second).Validate())
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(NewRedisConfig().WithPort(70000))
	assert.Error(t, err)

	client, err := NewClient(NewRedisConfig().WithHost("cache").WithPort(6380).WithMaxActive(4))
	require.NoError(t, err)
	defer client.Close()
	assert.Equal(t, "cache:6380", client.GetConfig().Addr())
	assert.NotNil(t, client.Stats())
}

func TestPublisher_ChannelName(t *testing.T) {
	client, err := NewClient(nil)
	require.NoError(t, err)
	defer client.Close()

	assert.Equal(t, "todo-api::todo-events", NewPublisher(client, "todo-api").ChannelName("todo-events"))
	assert.Equal(t, "todo-events", NewPublisher(client, "").ChannelName("todo-events"))
}
