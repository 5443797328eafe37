package repository

import "todo-ai-chatbot/internal/model"

type CreateConversationOptions struct {
	UserID string
	Title  string
}

// GetOneConversationOptions selects a conversation owned by UserID.
type GetOneConversationOptions struct {
	ID     string
	UserID string
}

type ListConversationsOptions struct {
	UserID string
	Limit  int
	Offset int
}

// CreateMessageOptions appends a message and bumps the conversation's updated_at.
type CreateMessageOptions struct {
	ConversationID string
	UserID         string
	Role           model.MessageRole
	Content        string
	ToolCalls      []model.ToolCall
	ToolResults    []model.ToolOutcome
}

// ListMessagesOptions returns the last Limit messages, oldest first.
// A zero Limit returns every message.
type ListMessagesOptions struct {
	ConversationID string
	Limit          int
}
