package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/middleware"
)

// RegisterRoutes maps the intent debug endpoint. It needs no authentication.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/intent/classify", mw.RateLimit(), h.Classify)
}
