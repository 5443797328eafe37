package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/response"
	"todo-ai-chatbot/pkg/scope"
)

const scopeKey = "scope"

// Auth requires a valid bearer access token and stores the caller's scope
// in both the gin context and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			return
		}

		p, err := m.jwtManager.Verify(token, scope.TokenTypeAccess)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		sc := model.Scope{UserID: p.UserID, Email: p.Email}
		c.Set(scopeKey, sc)
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.GetScopeFromContext(c.Request.Context())
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], scope.BearerScheme) {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
