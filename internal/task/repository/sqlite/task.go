package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"todo-ai-chatbot/internal/model"
	repo "todo-ai-chatbot/internal/task/repository"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

const taskColumns = `id, user_id, title, description, due_date, priority, category, completed,
	completed_at, completion_notes, calendar_event_id, created_at, updated_at`

// CreateTask inserts a new task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	const query = `
		INSERT INTO tasks (id, user_id, title, description, due_date, priority, category,
			completed, completion_notes, calendar_event_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, 0, '', '', ?, ?)`

	now := r.now().UTC()
	t := model.Task{
		ID:          uuid.NewString(),
		UserID:      opt.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		Priority:    opt.Priority,
		Category:    opt.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := r.db.ExecContext(ctx, query,
		t.ID, t.UserID, t.Title, t.Description, pkgSqlite.NullTime(t.DueDate), string(t.Priority), t.Category,
		pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE id = ? AND user_id = ? LIMIT 1`, taskColumns)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns a page of tasks, newest first, and the total count.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, int, error) {
	where, args := r.buildListFilter(opt)

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM tasks WHERE %s`, where)
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := r.buildPagination(opt)
	query := fmt.Sprintf(`SELECT %s FROM tasks WHERE %s ORDER BY created_at DESC, id %s`, taskColumns, where, page)
	rows, err := r.db.QueryContext(ctx, query, append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, 0, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return tasks, total, nil
}

// UpdateTask writes every mutable column and returns the stored entity.
// Returns zero-value Task when the task does not exist.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	const query = `
		UPDATE tasks
		SET title = ?, description = ?, due_date = ?, priority = ?, category = ?, completed = ?,
			completed_at = ?, completion_notes = ?, calendar_event_id = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`

	t := opt.Task
	res, err := r.db.ExecContext(ctx, query,
		t.Title, t.Description, pkgSqlite.NullTime(t.DueDate), string(t.Priority), t.Category, t.Completed,
		pkgSqlite.NullTime(t.CompletedAt), t.CompletionNotes, t.CalendarEventID, pkgSqlite.FormatTime(r.now()),
		t.ID, t.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, nil
	}
	return r.GetOneTask(ctx, repo.GetOneTaskOptions{ID: t.ID, UserID: t.UserID})
}

// DeleteTask removes a task. Deleting a missing task is not an error.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) error {
	const query = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t                    model.Task
		priority             string
		dueDate, completedAt sql.NullString
		createdAt, updatedAt string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &dueDate, &priority, &t.Category, &t.Completed,
		&completedAt, &t.CompletionNotes, &t.CalendarEventID, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	t.Priority = model.Priority(priority)

	if t.DueDate, err = pkgSqlite.ParseNullTime(dueDate); err != nil {
		return model.Task{}, err
	}
	if t.CompletedAt, err = pkgSqlite.ParseNullTime(completedAt); err != nil {
		return model.Task{}, err
	}
	if t.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		return model.Task{}, err
	}
	if t.UpdatedAt, err = pkgSqlite.ParseTime(updatedAt); err != nil {
		return model.Task{}, err
	}
	return t, nil
}
