package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/model"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

func (h *handler) processScope(c *gin.Context) (model.Scope, error) {
	sc, ok := model.GetScopeFromContext(c.Request.Context())
	if !ok || sc.UserID == "" {
		return model.Scope{}, pkgErrors.ErrUnauthorized
	}
	return sc, nil
}

func (h *handler) processID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", errMissingID
	}
	return id, nil
}

func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, nil
}
