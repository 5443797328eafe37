package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/model"
	pkgErrors "todo-ai-chatbot/pkg/errors"
	"todo-ai-chatbot/pkg/response"
)

// Register godoc
// @Summary     Register a new user
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body registerReq true "Credentials"
// @Success     201 {object} authResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Email already registered"
// @Router      /api/v1/auth/register [POST]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Register: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.Created(c, h.newAuthResp(out))
}

// Login godoc
// @Summary     Log in
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Incorrect email or password"
// @Router      /api/v1/auth/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(out))
}

// Refresh godoc
// @Summary     Refresh tokens
// @Tags        Auth
// @Accept      json
// @Produce     json
// @Param       body body refreshReq true "Refresh token"
// @Success     200 {object} authResp
// @Failure     401 {object} response.Resp "Invalid or expired token"
// @Router      /api/v1/auth/refresh [POST]
func (h *handler) Refresh(c *gin.Context) {
	ctx := c.Request.Context()

	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Refresh(ctx, req.RefreshToken)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAuthResp(out))
}

// Me godoc
// @Summary     Current user
// @Tags        Auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} userResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/auth/me [GET]
func (h *handler) Me(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := model.GetScopeFromContext(ctx)
	if !ok {
		response.Error(c, pkgErrors.ErrUnauthorized, nil)
		return
	}

	u, err := h.uc.Me(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newUserResp(u))
}
