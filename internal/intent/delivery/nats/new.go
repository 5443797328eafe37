package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"

	"todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/pkg/log"
)

// DefaultSubject is the request subject served when none is configured.
const DefaultSubject = "todo.intent.classify"

// Config configures the intent request/reply service.
type Config struct {
	URL     string
	Name    string
	Subject string
	Timeout time.Duration
}

// Server answers classification requests published on Subject.
type Server struct {
	l       log.Logger
	uc      usecase.UseCase
	conn    *nats.Conn
	subject string
	timeout time.Duration
	sub     *nats.Subscription
}

// Connect dials NATS with unlimited reconnects.
func Connect(cfg Config) (*nats.Conn, error) {
	conn, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}

// New creates a Server on an established connection.
func New(l log.Logger, uc usecase.UseCase, conn *nats.Conn, cfg Config) *Server {
	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Server{
		l:       l,
		uc:      uc,
		conn:    conn,
		subject: subject,
		timeout: timeout,
	}
}
