package entity

// Todo is a persisted task owned by a single principal.
type Todo struct {
	ID        int64      `json:"todo_id" example:"1"`
	Title     string     `json:"title" example:"Buy milk"`
	Text      *string    `json:"todo_text" example:"two litres"`
	Completed *bool      `json:"completed" example:"false"`
	Priority  *int32     `json:"priority" example:"1"`
	DueDate   *Timestamp `json:"due_date" swaggertype:"string" example:"2025-01-31T18:00:00"`
	CreatedAt Timestamp  `json:"created_at" swaggertype:"string" example:"2025-01-30T09:12:44.120391"`
	UpdatedAt Timestamp  `json:"updated_at" swaggertype:"string" example:"2025-01-30T09:12:44.120391"`
	OwnerID   int64      `json:"user_id" example:"1"`
}
