package db

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/model"
)

// todoRecord maps the todos table. Timestamps are left to column defaults and CURRENT_TIMESTAMP.
type todoRecord struct {
	ID        int64      `gorm:"column:todo_id;primaryKey;autoIncrement"`
	Title     string     `gorm:"column:title;not null"`
	Text      *string    `gorm:"column:todo_text"`
	Completed *bool      `gorm:"column:completed;default:false"`
	Priority  *int32     `gorm:"column:priority"`
	DueDate   *time.Time `gorm:"column:due_date"`
	CreatedAt time.Time  `gorm:"column:created_at;default:CURRENT_TIMESTAMP;autoCreateTime:false"`
	UpdatedAt time.Time  `gorm:"column:updated_at;default:CURRENT_TIMESTAMP;autoUpdateTime:false"`
	OwnerID   int64      `gorm:"column:user_id;not null"`
}

func (todoRecord) TableName() string {
	return "todos"
}

func (record todoRecord) toEntity() entity.Todo {
	return entity.Todo{
		ID:        record.ID,
		Title:     record.Title,
		Text:      record.Text,
		Completed: record.Completed,
		Priority:  record.Priority,
		DueDate:   entity.TimestampFromPtr(record.DueDate),
		CreatedAt: *entity.TimestampFromPtr(&record.CreatedAt),
		UpdatedAt: *entity.TimestampFromPtr(&record.UpdatedAt),
		OwnerID:   record.OwnerID,
	}
}

type GormTodoGateway struct {
	DB *gorm.DB
}

var _ TodoGateway = (*GormTodoGateway)(nil)

func NewGormTodoGateway(db *gorm.DB) *GormTodoGateway {
	return &GormTodoGateway{DB: db}
}

func (gateway *GormTodoGateway) FindAll(ctx context.Context, ownerID int64) ([]entity.Todo, error) {
	var records []todoRecord
	err := gateway.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	todos := make([]entity.Todo, 0, len(records))
	for _, record := range records {
		todos = append(todos, record.toEntity())
	}
	return todos, nil
}

func (gateway *GormTodoGateway) FindByID(ctx context.Context, ownerID int64, id int64) (*entity.Todo, error) {
	var record todoRecord
	err := gateway.DB.WithContext(ctx).
		Where("todo_id = ? AND user_id = ?", id, ownerID).
		Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	todo := record.toEntity()
	return &todo, nil
}

func (gateway *GormTodoGateway) Create(ctx context.Context, ownerID int64, dto model.CreateTodoDTO) (*entity.Todo, error) {
	record := todoRecord{
		Title:    dto.Title,
		Text:     dto.Text,
		Priority: dto.Priority,
		DueDate:  dto.DueDate.TimePtr(),
		OwnerID:  ownerID,
	}
	err := gateway.DB.WithContext(ctx).
		Clauses(clause.Returning{}).
		Create(&record).Error
	if err != nil {
		return nil, err
	}
	todo := record.toEntity()
	return &todo, nil
}

// UpdateByID issues one UPDATE ... SET col = COALESCE(?, col) ... RETURNING statement.
func (gateway *GormTodoGateway) UpdateByID(ctx context.Context, ownerID int64, id int64, dto model.UpdateTodoDTO) (*entity.Todo, error) {
	var record todoRecord
	result := gateway.DB.WithContext(ctx).
		Model(&record).
		Clauses(clause.Returning{}).
		Where("todo_id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{
			"title":      gorm.Expr("COALESCE(?, title)", dto.Title),
			"todo_text":  gorm.Expr("COALESCE(?, todo_text)", dto.Text),
			"completed":  gorm.Expr("COALESCE(?, completed)", dto.Completed),
			"priority":   gorm.Expr("COALESCE(?, priority)", dto.Priority),
			"due_date":   gorm.Expr("COALESCE(?, due_date)", dto.DueDate.TimePtr()),
			"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	todo := record.toEntity()
	return &todo, nil
}

func (gateway *GormTodoGateway) DeleteByID(ctx context.Context, ownerID int64, id int64) (int64, error) {
	result := gateway.DB.WithContext(ctx).
		Where("todo_id = ? AND user_id = ?", id, ownerID).
		Delete(&todoRecord{})
	return result.RowsAffected, result.Error
}
