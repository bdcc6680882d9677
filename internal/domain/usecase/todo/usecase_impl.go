package todo

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/gateway/event"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/validation"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const (
	defaultPriority int32 = 1
	publishTimeout        = 5 * time.Second
)

type todoUseCase struct {
	gateway   db.TodoGateway
	publisher event.Publisher
	validator *validation.Validator
}

func NewTodoUseCase(gateway db.TodoGateway, publisher event.Publisher, validator *validation.Validator) UseCase {
	if publisher == nil {
		publisher = event.NewNoopPublisher()
	}
	if validator == nil {
		validator = validation.New()
	}
	return &todoUseCase{
		gateway:   gateway,
		publisher: publisher,
		validator: validator,
	}
}

func (uc *todoUseCase) FindAll(ctx context.Context, ownerID int64) ([]entity.Todo, error) {
	todos, err := uc.gateway.FindAll(ctx, ownerID)
	if err != nil {
		return nil, storageFailure("find all", err)
	}
	return todos, nil
}

func (uc *todoUseCase) FindByID(ctx context.Context, ownerID int64, id int64) (*entity.Todo, error) {
	todo, err := uc.gateway.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, storageFailure("find by id", err)
	}
	if todo == nil {
		return nil, notFound(id)
	}
	return todo, nil
}

func (uc *todoUseCase) Create(ctx context.Context, ownerID int64, dto model.CreateTodoDTO) (*entity.Todo, error) {
	if err := uc.validate(dto); err != nil {
		return nil, err
	}
	if dto.Priority == nil {
		priority := defaultPriority
		dto.Priority = &priority
	}

	todo, err := uc.gateway.Create(ctx, ownerID, dto)
	if err != nil {
		return nil, storageFailure("create", err)
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoCreated, ownerID, todo.ID, todo))
	return todo, nil
}

func (uc *todoUseCase) UpdateByID(ctx context.Context, ownerID int64, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	if err := uc.validate(dto); err != nil {
		return nil, err
	}

	todo, err := uc.gateway.UpdateByID(ctx, ownerID, id, dto)
	if err != nil {
		return nil, storageFailure("update", err)
	}
	if todo == nil {
		return nil, notFound(id)
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoUpdated, ownerID, todo.ID, todo))
	return todo, nil
}

func (uc *todoUseCase) DeleteByID(ctx context.Context, ownerID int64, id int64) error {
	affected, err := uc.gateway.DeleteByID(ctx, ownerID, id)
	if err != nil {
		return storageFailure("delete", err)
	}
	if affected == 0 {
		return notFound(id)
	}

	uc.publish(ctx, model.NewTodoEvent(model.TodoDeleted, ownerID, id, nil))
	return nil
}

func (uc *todoUseCase) validate(payload any) error {
	err := uc.validator.Validate(payload)
	if err == nil {
		return nil
	}

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		return NewValidationError(fieldErr.Field, msg.GetMessage("todo.validation."+fieldErr.Rule, fieldErr.Field))
	}
	return NewValidationError("", err.Error())
}

// publish never fails the operation; the change is already committed.
// It outlives a cancelled request so a disconnecting client does not drop the event.
func (uc *todoUseCase) publish(ctx context.Context, todoEvent model.TodoEvent) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	if err := uc.publisher.Publish(ctx, todoEvent); err != nil {
		log.Warn(msg.GetMessage("todo.warn.event-failed", todoEvent.Type, todoEvent.TodoID),
			zap.String("event_type", string(todoEvent.Type)),
			zap.Int64("todo_id", todoEvent.TodoID),
			zap.Error(err))
	}
}
