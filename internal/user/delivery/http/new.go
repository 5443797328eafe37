package http

import (
	"todo-ai-chatbot/internal/user"
	"todo-ai-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for authentication.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
