package usecase

import (
	"context"
	"strings"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	repo "todo-ai-chatbot/internal/task/repository"
)

// FindByTitle returns the task whose title equals title ignoring case. Without an
// exact match a single substring match is accepted; several are ErrAmbiguousTitle.
// Pending tasks win over completed ones at each step.
func (uc *implUseCase) FindByTitle(ctx context.Context, sc model.Scope, title string) (model.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitleQuery
	}

	candidates, _, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{
		UserID:        sc.UserID,
		TitleContains: title,
		Limit:         task.MaxListLimit,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListTasks: %v", LogPrefixFindByTitle, err)
		return model.Task{}, err
	}

	var exact []model.Task
	for _, t := range candidates {
		if strings.EqualFold(strings.TrimSpace(t.Title), title) {
			exact = append(exact, t)
		}
	}
	if t, ok, err := pick(exact); ok || err != nil {
		return t, err
	}
	if t, ok, err := pick(candidates); ok || err != nil {
		return t, err
	}
	return model.Task{}, task.ErrTaskNotFound
}

// pick returns the only task, or the only pending task among several.
func pick(ts []model.Task) (model.Task, bool, error) {
	switch len(ts) {
	case 0:
		return model.Task{}, false, nil
	case 1:
		return ts[0], true, nil
	}

	var pending []model.Task
	for _, t := range ts {
		if !t.Completed {
			pending = append(pending, t)
		}
	}
	if len(pending) == 1 {
		return pending[0], true, nil
	}
	return model.Task{}, false, task.ErrAmbiguousTitle
}
