package model

import "time"

// MessageRole is the author of a chat message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Conversation groups the messages of one chat thread.
type Conversation struct {
	ID        string
	UserID    string
	Title     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToolCall records a tool invocation made while answering a message.
type ToolCall struct {
	Name       string         `json:"name"`
	Parameters map[string]any `json:"parameters"`
}

// ToolOutcome records what a tool invocation returned.
type ToolOutcome struct {
	Name    string `json:"name"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Message is a single turn in a conversation.
type Message struct {
	ID             string
	ConversationID string
	UserID         string
	Role           MessageRole
	Content        string
	ToolCalls      []ToolCall
	ToolResults    []ToolOutcome
	CreatedAt      time.Time
}
