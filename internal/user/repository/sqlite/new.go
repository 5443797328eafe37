package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"todo-ai-chatbot/internal/user/repository"
	"todo-ai-chatbot/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed Repository for the user domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("user/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("user/repository/sqlite.%s", method)
}
