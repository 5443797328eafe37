package chat

import (
	"context"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/orchestrator"
	"todo-ai-chatbot/internal/model"
)

// Assistant answers one chat message.
type Assistant interface {
	ProcessMessage(ctx context.Context, sc model.Scope, text string) (orchestrator.Reply, error)
	ForgetSession(ctx context.Context, sc model.Scope) error
	Tools() []agent.FunctionDefinition
}

// UseCase manages conversations and runs messages through the assistant.
//
//go:generate mockery --name UseCase
type UseCase interface {
	SendMessage(ctx context.Context, sc model.Scope, input SendMessageInput) (SendMessageOutput, error)
	ListConversations(ctx context.Context, sc model.Scope, input ListConversationsInput) (ListConversationsOutput, error)
	GetConversation(ctx context.Context, sc model.Scope, id string) (ConversationDetail, error)
	DeleteConversation(ctx context.Context, sc model.Scope, id string) error
	Tools() []agent.FunctionDefinition
}
