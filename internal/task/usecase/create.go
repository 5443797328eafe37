package usecase

import (
	"context"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	repo "todo-ai-chatbot/internal/task/repository"
)

// Create validates and stores a new task, then syncs it to the calendar when it has a due date.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title, err := uc.validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}
	if err := uc.validateDescription(input.Description); err != nil {
		return model.Task{}, err
	}
	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.IsValid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:      sc.UserID,
		Title:       title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    priority,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateTask: %v", LogPrefixCreate, err)
		return model.Task{}, err
	}

	return uc.syncCalendar(ctx, t), nil
}
