package events

import (
	"context"
	"fmt"
	"strings"

	"todo-api/internal/domain/gateway/event"
	"todo-api/internal/infra/aws"
	"todo-api/pkg/redis"
	"todo-api/pkg/resource"
	"todo-api/pkg/sqs"
)

const (
	DriverNone  = "none"
	DriverRedis = "redis"
	DriverSQS   = "sqs"
)

// NewPublisher builds the publisher selected by app.events.driver.
func NewPublisher(ctx context.Context) (event.Publisher, error) {
	driver := strings.ToLower(resource.GetStringOrDefault("app.events.driver", DriverNone))

	switch driver {
	case DriverNone:
		return event.NewNoopPublisher(), nil
	case DriverRedis:
		return newRedisPublisher()
	case DriverSQS:
		return newSQSPublisher(ctx)
	default:
		return nil, fmt.Errorf("unknown events driver %q", driver)
	}
}

func redisConfigFromResource() *redis.Config {
	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.events.redis.host", "localhost")).
		WithPassword(resource.GetString("app.events.redis.password")).
		WithDatabase(resource.GetInt("app.events.redis.database"))
	if port := resource.GetInt("app.events.redis.port"); port != 0 {
		config.WithPort(port)
	}
	if timeout := resource.GetDuration("app.events.redis.dial-timeout"); timeout > 0 {
		config.WithDialTimeout(timeout)
	}
	return config
}

func newRedisPublisher() (event.Publisher, error) {
	client, err := redis.NewClient(redisConfigFromResource())
	if err != nil {
		return nil, err
	}
	namespaced := redis.NewPublisher(client, resource.GetString("app.events.redis.namespace"))
	channel := resource.GetStringOrDefault("app.events.redis.channel", "todo-events")
	return event.NewRedisPublisher(namespaced, channel), nil
}

func newSQSPublisher(ctx context.Context) (event.Publisher, error) {
	queueName := resource.GetString("app.events.sqs.queue-name")
	if queueName == "" {
		return nil, fmt.Errorf("app.events.sqs.queue-name is required for the sqs events driver")
	}
	cfg, err := aws.LoadConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	sender := sqs.NewSender(aws.NewSqsClient(cfg))
	return event.NewSQSPublisher(sender, queueName), nil
}
