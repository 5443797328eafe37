package sqlite

import (
	"context"
	"encoding/json"
	"slices"

	"github.com/google/uuid"

	repo "todo-ai-chatbot/internal/chat/repository"
	"todo-ai-chatbot/internal/model"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

// CreateMessage inserts a message and touches its conversation in one transaction.
func (r *implRepository) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.Message, error) {
	now := r.now().UTC()
	m := model.Message{
		ID:             uuid.NewString(),
		ConversationID: opt.ConversationID,
		UserID:         opt.UserID,
		Role:           opt.Role,
		Content:        opt.Content,
		ToolCalls:      opt.ToolCalls,
		ToolResults:    opt.ToolResults,
		CreatedAt:      now,
	}

	calls, err := marshalList(m.ToolCalls)
	if err != nil {
		r.l.Errorf(ctx, "%s tool_calls: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	results, err := marshalList(m.ToolResults)
	if err != nil {
		r.l.Errorf(ctx, "%s tool_results: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	const insert = `
		INSERT INTO messages (id, conversation_id, user_id, role, content, tool_calls, tool_results, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insert, m.ID, m.ConversationID, m.UserID, string(m.Role), m.Content,
		calls, results, pkgSqlite.FormatTime(now)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	if _, err := tx.ExecContext(ctx, `UPDATE conversations SET updated_at = ? WHERE id = ?`,
		pkgSqlite.FormatTime(now), m.ConversationID); err != nil {
		r.l.Errorf(ctx, "%s touch: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateMessage"), err)
		return model.Message{}, repo.ErrFailedToInsert
	}
	return m, nil
}

func (r *implRepository) ListMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, error) {
	limit := opt.Limit
	if limit <= 0 {
		limit = -1 // no limit in sqlite
	}

	const query = `
		SELECT id, conversation_id, user_id, role, content, tool_calls, tool_results, created_at
		FROM messages WHERE conversation_id = ?
		ORDER BY created_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, opt.ConversationID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	msgs := make([]model.Message, 0)
	for rows.Next() {
		var (
			m                    model.Message
			role, calls, results string
			createdAt            string
		)
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.UserID, &role, &m.Content, &calls, &results, &createdAt); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		m.Role = model.MessageRole(role)
		if err := json.Unmarshal([]byte(calls), &m.ToolCalls); err != nil {
			r.l.Errorf(ctx, "%s tool_calls: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		if err := json.Unmarshal([]byte(results), &m.ToolResults); err != nil {
			r.l.Errorf(ctx, "%s tool_results: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		if m.CreatedAt, err = pkgSqlite.ParseTime(createdAt); err != nil {
			r.l.Errorf(ctx, "%s created_at: %v", r.dsn("ListMessages"), err)
			return nil, repo.ErrFailedToList
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMessages"), err)
		return nil, repo.ErrFailedToList
	}

	slices.Reverse(msgs)
	return msgs, nil
}

// marshalList stores nil slices as an empty JSON array.
func marshalList[T any](v []T) (string, error) {
	if v == nil {
		v = []T{}
	}
	b, err := json.Marshal(v)
	return string(b), err
}
