package event

import (
	"context"

	"todo-api/internal/domain/model"
)

// Publisher announces committed todo changes to an external channel.
type Publisher interface {
	Publish(ctx context.Context, event model.TodoEvent) error
	Health(ctx context.Context) model.ComponentHealthStatus
	Close() error
}

// NoopPublisher drops every event. It is used when events are disabled.
type NoopPublisher struct{}

var _ Publisher = NoopPublisher{}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

func (NoopPublisher) Publish(context.Context, model.TodoEvent) error {
	return nil
}

func (NoopPublisher) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{
		Status:  model.StatusUnknown,
		Details: map[string]string{"message": "events disabled"},
	}
}

func (NoopPublisher) Close() error {
	return nil
}
