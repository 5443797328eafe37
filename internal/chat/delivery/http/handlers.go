package http

import (
	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Runs the message through the assistant and returns its reply. Omitting conversation_id starts a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body sendReq true "Message"
// @Success     200  {object} sendResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.Resp "Unauthorized"
// @Failure     404  {object} response.Resp "Conversation not found"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.SendMessage(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SendMessage: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(out))
}

// Tools godoc
// @Summary     List assistant tools
// @Description Returns the function definitions of the tools the assistant can call.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} toolsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/chat/tools [GET]
func (h *handler) Tools(c *gin.Context) {
	response.OK(c, toolsResp{Tools: h.uc.Tools()})
}

// ListConversations godoc
// @Summary     List conversations
// @Description Returns the caller's conversations, most recently active first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       limit  query int false "Page size (default: 20, max: 100)"
// @Param       offset query int false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/conversations [GET]
func (h *handler) ListConversations(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ListConversations(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListConversations: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(out))
}

// GetConversation godoc
// @Summary     Get a conversation
// @Description Returns a conversation with its most recent messages, oldest first.
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} detailResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [GET]
func (h *handler) GetConversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	d, err := h.uc.GetConversation(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetConversation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(d))
}

// DeleteConversation godoc
// @Summary     Delete a conversation
// @Tags        Chat
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Conversation ID"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/conversations/{id} [DELETE]
func (h *handler) DeleteConversation(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.processScope(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	id, err := h.processID(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteConversation(ctx, sc, id); err != nil {
		h.l.Errorf(ctx, "uc.DeleteConversation: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
