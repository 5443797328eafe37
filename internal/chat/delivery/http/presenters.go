package http

import (
	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/response"
)

// --- Request DTOs ---

type sendReq struct {
	ConversationID string `json:"conversation_id"`
	Message        string `json:"message" binding:"required"`
}

func (r sendReq) toInput() chat.SendMessageInput {
	return chat.SendMessageInput{
		ConversationID: r.ConversationID,
		Content:        r.Message,
	}
}

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() chat.ListConversationsInput {
	return chat.ListConversationsInput{Limit: r.Limit, Offset: r.Offset}
}

// --- Response DTOs ---

type messageResp struct {
	ID          string              `json:"id"`
	Role        string              `json:"role"`
	Content     string              `json:"content"`
	ToolCalls   []model.ToolCall    `json:"tool_calls,omitempty"`
	ToolResults []model.ToolOutcome `json:"tool_results,omitempty"`
	CreatedAt   response.DateTime   `json:"created_at"`
}

func newMessageResp(m model.Message) messageResp {
	return messageResp{
		ID:          m.ID,
		Role:        string(m.Role),
		Content:     m.Content,
		ToolCalls:   m.ToolCalls,
		ToolResults: m.ToolResults,
		CreatedAt:   response.DateTime(m.CreatedAt),
	}
}

type metadataResp struct {
	ProcessingTimeMS int64   `json:"processing_time_ms"`
	Intent           string  `json:"intent"`
	Confidence       float64 `json:"confidence"`
}

type sendResp struct {
	ConversationID string            `json:"conversation_id"`
	Response       messageResp       `json:"response"`
	Timestamp      response.DateTime `json:"timestamp"`
	Metadata       metadataResp      `json:"metadata"`
}

func (h *handler) newSendResp(out chat.SendMessageOutput) sendResp {
	return sendResp{
		ConversationID: out.ConversationID,
		Response:       newMessageResp(out.Reply),
		Timestamp:      response.DateTime(out.Reply.CreatedAt),
		Metadata: metadataResp{
			ProcessingTimeMS: out.ProcessingTime.Milliseconds(),
			Intent:           string(out.Intent),
			Confidence:       out.Confidence,
		},
	}
}

type conversationResp struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newConversationResp(c model.Conversation) conversationResp {
	return conversationResp{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: response.DateTime(c.CreatedAt),
		UpdatedAt: response.DateTime(c.UpdatedAt),
	}
}

type listResp struct {
	Conversations []conversationResp `json:"conversations"`
	Total         int                `json:"total"`
	Limit         int                `json:"limit"`
	Offset        int                `json:"offset"`
}

func (h *handler) newListResp(out chat.ListConversationsOutput) listResp {
	convs := make([]conversationResp, 0, len(out.Conversations))
	for _, c := range out.Conversations {
		convs = append(convs, newConversationResp(c))
	}
	return listResp{
		Conversations: convs,
		Total:         out.Total,
		Limit:         out.Limit,
		Offset:        out.Offset,
	}
}

type detailResp struct {
	Conversation conversationResp `json:"conversation"`
	Messages     []messageResp    `json:"messages"`
}

func (h *handler) newDetailResp(d chat.ConversationDetail) detailResp {
	msgs := make([]messageResp, 0, len(d.Messages))
	for _, m := range d.Messages {
		msgs = append(msgs, newMessageResp(m))
	}
	return detailResp{
		Conversation: newConversationResp(d.Conversation),
		Messages:     msgs,
	}
}

type toolsResp struct {
	Tools []agent.FunctionDefinition `json:"tools"`
}
