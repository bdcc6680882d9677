package model

import (
	"time"

	"todo-api/internal/domain/entity"
)

type TodoEventType string

const (
	TodoCreated TodoEventType = "todo.created"
	TodoUpdated TodoEventType = "todo.updated"
	TodoDeleted TodoEventType = "todo.deleted"
)

// TodoEvent describes a committed change to a todo. Todo is nil for deletions.
type TodoEvent struct {
	Type       TodoEventType `json:"type"`
	TodoID     int64         `json:"todo_id"`
	OwnerID    int64         `json:"user_id"`
	Todo       *entity.Todo  `json:"todo,omitempty"`
	OccurredAt time.Time     `json:"occurred_at"`
}

func NewTodoEvent(eventType TodoEventType, ownerID int64, todoID int64, todo *entity.Todo) TodoEvent {
	return TodoEvent{
		Type:       eventType,
		TodoID:     todoID,
		OwnerID:    ownerID,
		Todo:       todo,
		OccurredAt: time.Now().UTC(),
	}
}
