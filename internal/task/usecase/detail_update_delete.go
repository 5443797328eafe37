package usecase

import (
	"context"
	"strings"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/internal/task"
	repo "todo-ai-chatbot/internal/task/repository"
)

// Detail retrieves a single task by ID. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	return uc.get(ctx, sc, id, LogPrefixDetail)
}

// Update applies a partial update. Toggling completed sets or clears completed_at.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.get(ctx, sc, input.ID, LogPrefixUpdate)
	if err != nil {
		return model.Task{}, err
	}

	next := existing
	if input.Title != nil {
		if next.Title, err = uc.validateTitle(*input.Title); err != nil {
			return model.Task{}, err
		}
	}
	if input.Description != nil {
		if err := uc.validateDescription(*input.Description); err != nil {
			return model.Task{}, err
		}
		next.Description = *input.Description
	}
	if input.Priority != nil {
		if !input.Priority.IsValid() {
			return model.Task{}, task.ErrInvalidPriority
		}
		next.Priority = *input.Priority
	}
	if input.Category != nil {
		next.Category = strings.TrimSpace(*input.Category)
	}
	if input.ClearDueDate {
		next.DueDate = nil
	} else if input.DueDate != nil {
		next.DueDate = input.DueDate
	}
	if input.Completed != nil && *input.Completed != existing.Completed {
		next.Completed = *input.Completed
		if next.Completed {
			now := uc.now().UTC()
			next.CompletedAt = &now
		} else {
			next.CompletedAt = nil
			next.CompletionNotes = ""
		}
	}

	dueChanged := !sameDay(existing.DueDate, next.DueDate)
	if dueChanged {
		uc.removeCalendarEvent(ctx, existing)
		next.CalendarEventID = ""
	}

	updated, err := uc.save(ctx, next, LogPrefixUpdate)
	if err != nil {
		return model.Task{}, err
	}
	if dueChanged {
		updated = uc.syncCalendar(ctx, updated)
	}
	return updated, nil
}

// Complete marks a task as done with optional notes.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, input task.CompleteInput) (model.Task, error) {
	existing, err := uc.get(ctx, sc, input.ID, LogPrefixComplete)
	if err != nil {
		return model.Task{}, err
	}

	next := existing
	if !existing.Completed {
		now := uc.now().UTC()
		next.Completed = true
		next.CompletedAt = &now
	}
	if input.Notes != "" {
		next.CompletionNotes = input.Notes
	}
	return uc.save(ctx, next, LogPrefixComplete)
}

// Delete removes a task and its calendar event. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.get(ctx, sc, id, LogPrefixDelete)
	if err != nil {
		return model.Task{}, err
	}
	if err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "%s: DeleteTask: %v", LogPrefixDelete, err)
		return model.Task{}, err
	}
	uc.removeCalendarEvent(ctx, existing)
	return existing, nil
}

func (uc *implUseCase) get(ctx context.Context, sc model.Scope, id, prefix string) (model.Task, error) {
	if strings.TrimSpace(id) == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneTask: %v", prefix, err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

func (uc *implUseCase) save(ctx context.Context, t model.Task, prefix string) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, repo.UpdateTaskOptions{Task: t})
	if err != nil {
		uc.l.Errorf(ctx, "%s: UpdateTask: %v", prefix, err)
		return model.Task{}, err
	}
	if updated.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return updated, nil
}
