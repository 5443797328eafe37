package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/response"
)

// Classify godoc
// @Summary     Classify an utterance
// @Description Returns the raw and refined classification, the tool routing and the per-intent scores. No tool is executed.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       body body classifyReq true "Utterance"
// @Success     200  {object} usecase.Analysis
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/intent/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	sc, _ := model.GetScopeFromContext(ctx)
	a, err := h.uc.Analyze(ctx, sc, req.Text)
	if err != nil {
		h.l.Warnf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, a)
}
