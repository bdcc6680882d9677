package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

const todoColumns = `todo_id, title, todo_text, completed, priority, due_date, created_at, updated_at, user_id`

type SQLTodoGateway struct {
	DB *sql.DB
}

var _ TodoGateway = (*SQLTodoGateway)(nil)

func NewSQLTodoGateway(db *sql.DB) *SQLTodoGateway {
	return &SQLTodoGateway{DB: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTodo(row rowScanner) (*entity.Todo, error) {
	var (
		todo      entity.Todo
		text      sql.NullString
		completed sql.NullBool
		priority  sql.NullInt32
		dueDate   sql.NullTime
		createdAt time.Time
		updatedAt time.Time
	)

	err := row.Scan(&todo.ID, &todo.Title, &text, &completed, &priority, &dueDate, &createdAt, &updatedAt, &todo.OwnerID)
	if err != nil {
		return nil, err
	}

	if text.Valid {
		todo.Text = &text.String
	}
	if completed.Valid {
		todo.Completed = &completed.Bool
	}
	if priority.Valid {
		todo.Priority = &priority.Int32
	}
	if dueDate.Valid {
		todo.DueDate = entity.TimestampFromPtr(&dueDate.Time)
	}
	todo.CreatedAt = *entity.TimestampFromPtr(&createdAt)
	todo.UpdatedAt = *entity.TimestampFromPtr(&updatedAt)

	return &todo, nil
}

func (gateway *SQLTodoGateway) FindAll(ctx context.Context, ownerID int64) (todos []entity.Todo, err error) {
	rows, err := gateway.DB.QueryContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	todos = make([]entity.Todo, 0)
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, *todo)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return todos, nil
}

func (gateway *SQLTodoGateway) FindByID(ctx context.Context, ownerID int64, id int64) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE todo_id = $1 AND user_id = $2`, id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (gateway *SQLTodoGateway) Create(ctx context.Context, ownerID int64, dto model.CreateTodoDTO) (*entity.Todo, error) {
	return scanTodo(gateway.DB.QueryRowContext(ctx, `
		INSERT INTO todos (title, todo_text, priority, due_date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+todoColumns,
		dto.Title, dto.Text, dto.Priority, dto.DueDate.TimePtr(), ownerID))
}

// UpdateByID merges the payload into the stored row in a single statement. Nil fields keep their value.
func (gateway *SQLTodoGateway) UpdateByID(ctx context.Context, ownerID int64, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	todo, err := scanTodo(gateway.DB.QueryRowContext(ctx, `
		UPDATE todos
		SET title = COALESCE($1, title),
		    todo_text = COALESCE($2, todo_text),
		    completed = COALESCE($3, completed),
		    priority = COALESCE($4, priority),
		    due_date = COALESCE($5, due_date),
		    updated_at = CURRENT_TIMESTAMP
		WHERE todo_id = $6 AND user_id = $7
		RETURNING `+todoColumns,
		dto.Title, dto.Text, dto.Completed, dto.Priority, dto.DueDate.TimePtr(), id, ownerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return todo, nil
}

func (gateway *SQLTodoGateway) DeleteByID(ctx context.Context, ownerID int64, id int64) (int64, error) {
	result, err := gateway.DB.ExecContext(ctx, `DELETE FROM todos WHERE todo_id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
