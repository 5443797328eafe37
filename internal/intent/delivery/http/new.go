package http

import (
	"todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc usecase.UseCase
}

// New creates a new HTTP handler for the intent debug surface.
func New(l log.Logger, uc usecase.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
