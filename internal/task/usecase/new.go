package usecase

import (
	"time"

	"todo-ai-chatbot/internal/task"
	"todo-ai-chatbot/internal/task/repository"
	"todo-ai-chatbot/pkg/gcalendar"
	pkgLog "todo-ai-chatbot/pkg/log"
)

// CalendarConfig enables optional Google Calendar sync.
type CalendarConfig struct {
	Client     gcalendar.Calendar // nil disables sync
	CalendarID string
	Timezone   string
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar CalendarConfig
	now      func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, calendar CalendarConfig) *implUseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		now:      time.Now,
	}
}

var _ task.UseCase = (*implUseCase)(nil)
