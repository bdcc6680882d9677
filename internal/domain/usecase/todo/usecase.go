package todo

import (
	"context"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// UseCase runs the todo operations for one owner. Errors match ErrValidation, ErrNotFound or ErrStorage.
type UseCase interface {
	FindAll(ctx context.Context, ownerID int64) ([]entity.Todo, error)
	FindByID(ctx context.Context, ownerID int64, id int64) (*entity.Todo, error)
	Create(ctx context.Context, ownerID int64, dto model.CreateTodoDTO) (*entity.Todo, error)
	UpdateByID(ctx context.Context, ownerID int64, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error)
	DeleteByID(ctx context.Context, ownerID int64, id int64) error
}
