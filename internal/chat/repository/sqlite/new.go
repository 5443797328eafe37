package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"todo-ai-chatbot/internal/chat/repository"
	"todo-ai-chatbot/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the chat domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("chat/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("chat/repository/sqlite.%s", method)
}
