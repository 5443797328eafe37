package model

import "time"

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is one of the known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskStatus filters tasks by completion state.
type TaskStatus string

const (
	TaskStatusAll       TaskStatus = "all"
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

// Task is a single todo item owned by a user.
type Task struct {
	ID              string
	UserID          string
	Title           string
	Description     string
	DueDate         *time.Time
	Priority        Priority
	Category        string
	Completed       bool
	CompletedAt     *time.Time
	CompletionNotes string
	CalendarEventID string // empty when the task is not synced
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
