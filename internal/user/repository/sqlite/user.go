package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"

	"todo-ai-chatbot/internal/model"
	repo "todo-ai-chatbot/internal/user/repository"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

const userColumns = `id, email, name, password_hash, is_active, created_at, updated_at`

func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	const query = `
		INSERT INTO users (id, email, name, password_hash, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)`

	now := r.now().UTC()
	u := model.User{
		ID:           uuid.NewString(),
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Email, u.Name, u.PasswordHash, pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now))
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return model.User{}, repo.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return model.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser returns a zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ? LIMIT 1`
	arg := opt.Email
	if opt.ID != "" {
		query = `SELECT ` + userColumns + ` FROM users WHERE id = ? LIMIT 1`
		arg = opt.ID
	}

	var (
		u                    model.User
		active               int
		createdAt, updatedAt string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Name, &u.PasswordHash, &active, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}

	u.IsActive = active != 0
	if u.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		r.l.Errorf(ctx, "%s created_at: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	if u.UpdatedAt, err = pkgSqlite.ParseTime(updatedAt); err != nil {
		r.l.Errorf(ctx, "%s updated_at: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
