package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/middleware"
)

// RegisterRoutes maps the chat endpoints. All of them require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat", mw.Auth(), mw.RateLimit())
	{
		chat.POST("", h.SendMessage)
		chat.GET("/tools", h.Tools)
	}

	convs := rg.Group("/conversations", mw.Auth(), mw.RateLimit())
	{
		convs.GET("", h.ListConversations)
		convs.GET("/:id", h.GetConversation)
		convs.DELETE("/:id", h.DeleteConversation)
	}
}
