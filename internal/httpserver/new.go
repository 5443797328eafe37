package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/agent/orchestrator"
	intentUC "todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/internal/middleware"
	taskUC "todo-ai-chatbot/internal/task/usecase"
	"todo-ai-chatbot/pkg/datemath"
	"todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/scope"
	"todo-ai-chatbot/pkg/session"
	pkgTelegram "todo-ai-chatbot/pkg/telegram"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Infrastructure
	db         *sql.DB
	tokens     scope.Manager
	rateLimit  middleware.RateLimitConfig
	bcryptCost int

	// Assistant
	classifier        intentUC.Scorer
	sessions          session.Store
	dates             *datemath.Parser
	orchestrator      orchestrator.Config
	maxMessageHistory int

	// Optional integrations
	calendar    taskUC.CalendarConfig
	telegramBot *pkgTelegram.Bot
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	DB         *sql.DB
	Tokens     scope.Manager
	RateLimit  middleware.RateLimitConfig
	BcryptCost int

	Classifier        intentUC.Scorer
	Sessions          session.Store
	Dates             *datemath.Parser
	Orchestrator      orchestrator.Config
	MaxMessageHistory int

	// Calendar.Client nil disables calendar sync.
	Calendar taskUC.CalendarConfig
	// TelegramBot nil disables the Telegram webhook.
	TelegramBot *pkgTelegram.Bot
}

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                 logger,
		gin:               gin.New(),
		port:              cfg.Port,
		mode:              cfg.Mode,
		environment:       cfg.Environment,
		db:                cfg.DB,
		tokens:            cfg.Tokens,
		rateLimit:         cfg.RateLimit,
		bcryptCost:        cfg.BcryptCost,
		classifier:        cfg.Classifier,
		sessions:          cfg.Sessions,
		dates:             cfg.Dates,
		orchestrator:      cfg.Orchestrator,
		maxMessageHistory: cfg.MaxMessageHistory,
		calendar:          cfg.Calendar,
		telegramBot:       cfg.TelegramBot,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

// Handler exposes the gin engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.tokens == nil {
		return errors.New("token manager is required")
	}
	if srv.classifier == nil {
		return errors.New("classifier is required")
	}
	if srv.sessions == nil {
		return errors.New("session store is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
