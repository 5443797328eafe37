package task

import (
	"time"

	"todo-ai-chatbot/internal/model"
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 1000
	DefaultListLimit     = 50
	MaxListLimit         = 100
)

// CreateInput is the input for creating a task.
type CreateInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority // defaults to medium
	Category    string
}

// ListInput filters and paginates tasks.
type ListInput struct {
	Status   model.TaskStatus // defaults to all
	Priority model.Priority
	Category string
	Limit    int
	Offset   int
}

// ListOutput is a page of tasks.
type ListOutput struct {
	Tasks  []model.Task
	Total  int
	Limit  int
	Offset int
}

// UpdateInput is a partial update; nil fields are left unchanged.
type UpdateInput struct {
	ID           string
	Title        *string
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	Priority     *model.Priority
	Category     *string
	Completed    *bool
}

// CompleteInput marks a task as done.
type CompleteInput struct {
	ID    string
	Notes string
}
