package repository

import (
	"time"

	"todo-ai-chatbot/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	DueDate     *time.Time
	Priority    model.Priority
	Category    string
}

// GetOneTaskOptions selects a single task. Both fields are required.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing tasks.
// Empty fields are not applied.
type ListTasksOptions struct {
	UserID        string
	Completed     *bool
	Priority      model.Priority
	Category      string
	TitleContains string
	Limit         int
	Offset        int
}

// UpdateTaskOptions overwrites every mutable column of a task.
type UpdateTaskOptions struct {
	Task model.Task
}

// DeleteTaskOptions selects the task to delete.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
