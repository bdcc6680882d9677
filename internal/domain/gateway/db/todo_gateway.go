package db

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// TodoGateway is the record store for todos. Every call is scoped to ownerID and issues one statement.
// FindByID and UpdateByID return (nil, nil) when no row matches; DeleteByID returns the number of rows removed.
type TodoGateway interface {
	FindAll(ctx context.Context, ownerID int64) ([]entity.Todo, error)
	FindByID(ctx context.Context, ownerID int64, id int64) (*entity.Todo, error)
	Create(ctx context.Context, ownerID int64, dto model.CreateTodoDTO) (*entity.Todo, error)
	UpdateByID(ctx context.Context, ownerID int64, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(ctx context.Context, ownerID int64, id int64) (int64, error)
}
