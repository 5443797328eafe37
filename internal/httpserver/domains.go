package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/orchestrator"
	"todo-ai-chatbot/internal/agent/tools"
	chatHTTP "todo-ai-chatbot/internal/chat/delivery/http"
	chatTelegram "todo-ai-chatbot/internal/chat/delivery/telegram"
	chatRepo "todo-ai-chatbot/internal/chat/repository/sqlite"
	chatUC "todo-ai-chatbot/internal/chat/usecase"
	intentHTTP "todo-ai-chatbot/internal/intent/delivery/http"
	intentUC "todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/internal/middleware"
	"todo-ai-chatbot/internal/task"
	taskHTTP "todo-ai-chatbot/internal/task/delivery/http"
	taskRepo "todo-ai-chatbot/internal/task/repository/sqlite"
	taskUC "todo-ai-chatbot/internal/task/usecase"
	userHTTP "todo-ai-chatbot/internal/user/delivery/http"
	userRepo "todo-ai-chatbot/internal/user/repository/sqlite"
	userUC "todo-ai-chatbot/internal/user/usecase"
)

// Each setup function follows the same steps:
//  1. Repository
//  2. UseCase
//  3. HTTP Handler
//  4. Routes

// setupUserDomain registers /api/v1/auth.
func (srv HTTPServer) setupUserDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	repo := userRepo.New(srv.db, srv.l)
	uc := userUC.New(srv.l, repo, srv.tokens, srv.bcryptCost)
	h := userHTTP.New(srv.l, uc)
	userHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "User domain registered")
}

// setupTaskDomain registers /api/v1/tasks and returns the use case for the assistant tools.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	repo := taskRepo.New(srv.db, srv.l)
	uc := taskUC.New(srv.l, repo, srv.calendar)
	h := taskHTTP.New(srv.l, uc)
	taskHTTP.RegisterRoutes(api, h, mw)

	if srv.calendar.Client != nil {
		srv.l.Infof(ctx, "Task domain registered with calendar sync")
	} else {
		srv.l.Infof(ctx, "Task domain registered")
	}
	return uc
}

// setupIntentDomain registers /api/v1/intent/classify.
func (srv HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := intentUC.New(srv.l, srv.classifier)
	h := intentHTTP.New(srv.l, uc)
	intentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Intent domain registered")
}

// setupChatDomain wires the assistant over the task use case and registers
// /api/v1/chat, /api/v1/conversations and the optional Telegram webhook.
func (srv HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware, tasks task.UseCase) {
	registry := agent.NewToolRegistry()
	tools.Register(registry, tools.Deps{Logger: srv.l, UseCase: tasks, Dates: srv.dates})
	assistant := orchestrator.New(srv.l, srv.classifier, registry, srv.sessions, srv.orchestrator)

	repo := chatRepo.New(srv.db, srv.l)
	uc := chatUC.New(srv.l, repo, assistant, srv.maxMessageHistory)
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw)

	if srv.telegramBot != nil {
		tg := chatTelegram.New(srv.l, uc, srv.telegramBot)
		srv.gin.POST("/webhook/telegram", mw.RateLimit(), tg.HandleWebhook)
		srv.l.Infof(ctx, "Telegram webhook route registered at POST /webhook/telegram")
	} else {
		srv.l.Infof(ctx, "Telegram bot not configured, skipping webhook route")
	}

	srv.l.Infof(ctx, "Chat domain registered with %d tools", len(registry.List()))
}
