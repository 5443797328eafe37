package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every task route requires an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth(), mw.RateLimit())
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/complete", h.Complete)
	}
}
