package usecase

import (
	"time"

	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/chat/repository"
	pkgLog "todo-ai-chatbot/pkg/log"
)

type implUseCase struct {
	l                 pkgLog.Logger
	repo              repository.Repository
	assistant         chat.Assistant
	maxMessageHistory int
	now               func() time.Time
}

// New creates a new chat UseCase. maxMessageHistory bounds GetConversation;
// zero uses chat.DefaultMaxMessageHistory.
func New(l pkgLog.Logger, repo repository.Repository, assistant chat.Assistant, maxMessageHistory int) *implUseCase {
	if maxMessageHistory <= 0 {
		maxMessageHistory = chat.DefaultMaxMessageHistory
	}
	return &implUseCase{
		l:                 l,
		repo:              repo,
		assistant:         assistant,
		maxMessageHistory: maxMessageHistory,
		now:               time.Now,
	}
}

var _ chat.UseCase = (*implUseCase)(nil)
