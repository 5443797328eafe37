package session

import (
	"context"
	"time"
)

// Turn is one message kept in short-term memory.
type Turn struct {
	Role    string    `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// Pending is an operation waiting for the user to name its target.
type Pending struct {
	Intent   string              `json:"intent"`
	Entities map[string][]string `json:"entities,omitempty"`
	AskedAt  time.Time           `json:"asked_at"`
}

// Session is the short-term memory of one user.
type Session struct {
	Key       string    `json:"key"`
	Turns     []Turn    `json:"turns"`
	Pending   *Pending  `json:"pending,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Append adds a turn and keeps at most limit turns. A limit <= 0 keeps everything.
func (s *Session) Append(t Turn, limit int) {
	s.Turns = append(s.Turns, t)
	if limit > 0 && len(s.Turns) > limit {
		s.Turns = append([]Turn(nil), s.Turns[len(s.Turns)-limit:]...)
	}
}

// Store persists sessions. A missing session loads as an empty one.
type Store interface {
	Load(ctx context.Context, key string) (Session, error)
	Save(ctx context.Context, s Session) error
	Delete(ctx context.Context, key string) error
}
