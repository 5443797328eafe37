package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/model"
	pkgErrors "todo-ai-chatbot/pkg/errors"
)

// processScope returns the caller set by the Auth middleware.
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

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list tasks query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update task request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, req.validate()
}

// processCompleteReq accepts an empty body.
func (h *handler) processCompleteReq(c *gin.Context) (completeReq, error) {
	var req completeReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	id, err := h.processID(c)
	if err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
