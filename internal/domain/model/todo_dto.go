package model

import "todo-api/internal/domain/entity"

// CreateTodoDTO is the create payload. Priority is left nil when omitted so the use case can apply its default.
type CreateTodoDTO struct {
	Title    string            `json:"title" validate:"notblank" example:"Buy milk"`
	Text     *string           `json:"todo_text" example:"two litres"`
	Priority *int32            `json:"priority" example:"2"`
	DueDate  *entity.Timestamp `json:"due_date" swaggertype:"string" example:"2025-01-31T18:00:00"`
}

// UpdateTodoDTO is the partial update payload. A nil field keeps the stored value.
type UpdateTodoDTO struct {
	Title     *string           `json:"title" validate:"omitnil,notblank" example:"Buy oat milk"`
	Text      *string           `json:"todo_text" example:"one litre"`
	Completed *bool             `json:"completed" example:"true"`
	Priority  *int32            `json:"priority" example:"3"`
	DueDate   *entity.Timestamp `json:"due_date" swaggertype:"string" example:"2025-02-01T09:00:00"`
}

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Error string `json:"error" example:"Todo not found"`
}
