package chat

import (
	"time"

	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/model"
)

const (
	MaxMessageLength         = 10000
	ConversationTitleRunes   = 60
	DefaultMaxMessageHistory = 50
	DefaultListLimit         = 20
	MaxListLimit             = 100
)

// SendMessageInput starts a new conversation when ConversationID is empty.
type SendMessageInput struct {
	ConversationID string
	Content        string
}

type SendMessageOutput struct {
	ConversationID string
	Reply          model.Message
	ProcessingTime time.Duration
	Intent         intent.Intent
	Confidence     float64
}

type ListConversationsInput struct {
	Limit  int
	Offset int
}

type ListConversationsOutput struct {
	Conversations []model.Conversation
	Total         int
	Limit         int
	Offset        int
}

// ConversationDetail holds the most recent messages, oldest first.
type ConversationDetail struct {
	Conversation model.Conversation
	Messages     []model.Message
}
