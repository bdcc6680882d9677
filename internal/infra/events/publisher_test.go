package events

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-api/internal/domain/gateway/event"
	"todo-api/pkg/resource"
)

func loadProperties(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "application.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	require.NoError(t, resource.Init(path))
}

func TestNewPublisher_DefaultsToNoop(t *testing.T) {
	loadProperties(t, `app: {}`)

	publisher, err := NewPublisher(context.Background())
	require.NoError(t, err)
	assert.IsType(t, event.NoopPublisher{}, publisher)
}

func TestNewPublisher_Redis(t *testing.T) {
	loadProperties(t, `
app:
  events:
    driver: redis
    redis:
      host: cache
      port: 6380
      namespace: todo-api
      channel: todo-events
`)

	publisher, err := NewPublisher(context.Background())
	require.NoError(t, err)
	defer publisher.Close()
	assert.IsType(t, &event.RedisPublisher{}, publisher)
	assert.Equal(t, "cache:6380", redisConfigFromResource().Addr())
}

func TestNewPublisher_SQSRequiresQueue(t *testing.T) {
	loadProperties(t, `
app:
  events:
    driver: sqs
`)

	_, err := NewPublisher(context.Background())
	assert.ErrorContains(t, err, "queue-name")
}

func TestNewPublisher_SQS(t *testing.T) {
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")
	loadProperties(t, `
app:
  cloud:
    aws-region: us-east-1
    aws-endpoint: http://localhost:4566
    aws-access-key-id: test
    aws-secret-access-key: test
  events:
    driver: sqs
    sqs:
      queue-name: todo-events
`)

	publisher, err := NewPublisher(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &event.SQSPublisher{}, publisher)
}

func TestNewPublisher_UnknownDriver(t *testing.T) {
	loadProperties(t, `
app:
  events:
    driver: kafka
`)

	_, err := NewPublisher(context.Background())
	assert.ErrorContains(t, err, "kafka")
}
