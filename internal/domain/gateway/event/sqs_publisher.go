package event

import (
	"context"

	"todo-api/internal/domain/model"
)

// QueueSender is the subset of the SQS sender used to publish events.
type QueueSender interface {
	SendMessage(ctx context.Context, queueName string, body any) error
	LookupQueueURL(ctx context.Context, queueName string) (string, error)
}

type SQSPublisher struct {
	sender    QueueSender
	queueName string
}

var _ Publisher = (*SQSPublisher)(nil)

func NewSQSPublisher(sender QueueSender, queueName string) *SQSPublisher {
	return &SQSPublisher{sender: sender, queueName: queueName}
}

func (publisher *SQSPublisher) Publish(ctx context.Context, event model.TodoEvent) error {
	return publisher.sender.SendMessage(ctx, publisher.queueName, event)
}

func (publisher *SQSPublisher) Health(ctx context.Context) model.ComponentHealthStatus {
	url, err := publisher.sender.LookupQueueURL(ctx, publisher.queueName)
	if err != nil {
		return model.ComponentDown(err)
	}
	return model.ComponentUp(map[string]string{
		"driver":    "sqs",
		"queue":     publisher.queueName,
		"queue_url": url,
	})
}

func (publisher *SQSPublisher) Close() error {
	return nil
}
