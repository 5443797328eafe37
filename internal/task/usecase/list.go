package usecase

import (
	"context"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	repo "todo-ai-chatbot/internal/task/repository"
)

// List returns a paginated list of the caller's tasks.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = task.DefaultListLimit
	}
	if limit < 0 || limit > task.MaxListLimit || input.Offset < 0 {
		return task.ListOutput{}, task.ErrInvalidPagination
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	opt := repo.ListTasksOptions{
		UserID:   sc.UserID,
		Priority: input.Priority,
		Category: input.Category,
		Limit:    limit,
		Offset:   input.Offset,
	}
	switch input.Status {
	case "", model.TaskStatusAll:
	case model.TaskStatusPending:
		opt.Completed = boolPtr(false)
	case model.TaskStatusCompleted:
		opt.Completed = boolPtr(true)
	default:
		return task.ListOutput{}, task.ErrInvalidStatus
	}

	tasks, total, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListTasks: %v", LogPrefixList, err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks:  tasks,
		Total:  total,
		Limit:  limit,
		Offset: input.Offset,
	}, nil
}
