package nats

import (
	"todo-ai-chatbot/internal/agent/toolmap"
	"todo-ai-chatbot/internal/intent"
)

type classifyRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id"`
}

type classifyReply struct {
	Classified *intent.ClassifiedIntent `json:"classified,omitempty"`
	Routing    *toolmap.Result          `json:"routing,omitempty"`
	Error      string                   `json:"error,omitempty"`
}
