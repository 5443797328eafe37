package orchestrator

import (
	"time"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/intent"
	pkgLog "todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/session"
)

// Config tunes the orchestrator. Zero values take the defaults.
type Config struct {
	HistoryLimit int
	PendingTTL   time.Duration
}

type Orchestrator struct {
	l            pkgLog.Logger
	classifier   intent.Classifier
	registry     *agent.ToolRegistry
	sessions     session.Store
	historyLimit int
	pendingTTL   time.Duration
	locks        sessionLocks
	now          func() time.Time
}

func New(l pkgLog.Logger, classifier intent.Classifier, registry *agent.ToolRegistry, sessions session.Store, cfg Config) *Orchestrator {
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = DefaultPendingTTL
	}
	return &Orchestrator{
		l:            l,
		classifier:   classifier,
		registry:     registry,
		sessions:     sessions,
		historyLimit: cfg.HistoryLimit,
		pendingTTL:   cfg.PendingTTL,
		now:          time.Now,
	}
}

// Tools lists the function definitions of the registered tools.
func (o *Orchestrator) Tools() []agent.FunctionDefinition {
	return o.registry.ToFunctionDefinitions()
}
