package repository

import (
	"context"

	"todo-ai-chatbot/internal/model"
)

// Repository is the data store of the chat domain.
type Repository interface {
	CreateConversation(ctx context.Context, opt CreateConversationOptions) (model.Conversation, error)
	GetOneConversation(ctx context.Context, opt GetOneConversationOptions) (model.Conversation, error)
	ListConversations(ctx context.Context, opt ListConversationsOptions) ([]model.Conversation, int, error)
	DeleteConversation(ctx context.Context, opt GetOneConversationOptions) error

	CreateMessage(ctx context.Context, opt CreateMessageOptions) (model.Message, error)
	ListMessages(ctx context.Context, opt ListMessagesOptions) ([]model.Message, error)
}
