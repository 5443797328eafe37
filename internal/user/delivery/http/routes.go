package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/middleware"
)

// RegisterRoutes maps the auth endpoints. Only /me requires a token.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	auth := rg.Group("/auth", mw.RateLimit())
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/refresh", h.Refresh)
		auth.GET("/me", mw.Auth(), h.Me)
	}
}
