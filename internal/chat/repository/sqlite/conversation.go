package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	repo "todo-ai-chatbot/internal/chat/repository"
	"todo-ai-chatbot/internal/model"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

const conversationColumns = `id, user_id, title, created_at, updated_at`

func (r *implRepository) CreateConversation(ctx context.Context, opt repo.CreateConversationOptions) (model.Conversation, error) {
	const query = `INSERT INTO conversations (id, user_id, title, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`

	now := r.now().UTC()
	c := model.Conversation{
		ID:        uuid.NewString(),
		UserID:    opt.UserID,
		Title:     opt.Title,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := r.db.ExecContext(ctx, query, c.ID, c.UserID, c.Title,
		pkgSqlite.FormatTime(now), pkgSqlite.FormatTime(now)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateConversation"), err)
		return model.Conversation{}, repo.ErrFailedToInsert
	}
	return c, nil
}

// GetOneConversation returns a zero-value Conversation when not found.
func (r *implRepository) GetOneConversation(ctx context.Context, opt repo.GetOneConversationOptions) (model.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE id = ? AND user_id = ? LIMIT 1`

	c, err := scanConversation(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneConversation"), err)
		return model.Conversation{}, repo.ErrFailedToGet
	}
	return c, nil
}

// ListConversations returns a page of conversations, most recently active first.
func (r *implRepository) ListConversations(ctx context.Context, opt repo.ListConversationsOptions) ([]model.Conversation, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversations WHERE user_id = ?`, opt.UserID).
		Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToList
	}

	query := `SELECT ` + conversationColumns + ` FROM conversations WHERE user_id = ?
		ORDER BY updated_at DESC, id LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, opt.UserID, opt.Limit, opt.Offset)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	convs := make([]model.Conversation, 0)
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListConversations"), err)
			return nil, 0, repo.ErrFailedToList
		}
		convs = append(convs, c)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListConversations"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return convs, total, nil
}

// DeleteConversation removes a conversation and, by cascade, its messages.
func (r *implRepository) DeleteConversation(ctx context.Context, opt repo.GetOneConversationOptions) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ? AND user_id = ?`,
		opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteConversation"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanConversation(row rowScanner) (model.Conversation, error) {
	var (
		c                    model.Conversation
		createdAt, updatedAt string
	)
	if err := row.Scan(&c.ID, &c.UserID, &c.Title, &createdAt, &updatedAt); err != nil {
		return model.Conversation{}, err
	}

	var err error
	if c.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
		return model.Conversation{}, err
	}
	if c.UpdatedAt, err = pkgSqlite.ParseTime(updatedAt); err != nil {
		return model.Conversation{}, err
	}
	return c, nil
}
