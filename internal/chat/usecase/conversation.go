package usecase

import (
	"context"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/chat/repository"
	"todo-ai-chatbot/internal/model"
)

func (uc *implUseCase) ListConversations(ctx context.Context, sc model.Scope, input chat.ListConversationsInput) (chat.ListConversationsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = chat.DefaultListLimit
	}
	if limit < 0 || limit > chat.MaxListLimit || input.Offset < 0 {
		return chat.ListConversationsOutput{}, chat.ErrInvalidPagination
	}

	convs, total, err := uc.repo.ListConversations(ctx, repository.ListConversationsOptions{
		UserID: sc.UserID,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListConversations: %v", LogPrefixListConversations, err)
		return chat.ListConversationsOutput{}, err
	}

	return chat.ListConversationsOutput{
		Conversations: convs,
		Total:         total,
		Limit:         limit,
		Offset:        input.Offset,
	}, nil
}

// GetConversation returns a conversation with its latest messages.
func (uc *implUseCase) GetConversation(ctx context.Context, sc model.Scope, id string) (chat.ConversationDetail, error) {
	conv, err := uc.getConversation(ctx, sc, id, LogPrefixGetConversation)
	if err != nil {
		return chat.ConversationDetail{}, err
	}

	msgs, err := uc.repo.ListMessages(ctx, repository.ListMessagesOptions{
		ConversationID: conv.ID,
		Limit:          uc.maxMessageHistory,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: ListMessages: %v", LogPrefixGetConversation, err)
		return chat.ConversationDetail{}, err
	}

	return chat.ConversationDetail{Conversation: conv, Messages: msgs}, nil
}

// DeleteConversation removes a conversation, its messages and its session memory.
func (uc *implUseCase) DeleteConversation(ctx context.Context, sc model.Scope, id string) error {
	conv, err := uc.getConversation(ctx, sc, id, LogPrefixDeleteConversation)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteConversation(ctx, repository.GetOneConversationOptions{ID: conv.ID, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "%s: DeleteConversation: %v", LogPrefixDeleteConversation, err)
		return err
	}

	asc := sc
	asc.SessionID = conv.ID
	if err := uc.assistant.ForgetSession(ctx, asc); err != nil {
		uc.l.Warnf(ctx, "%s: ForgetSession: %v", LogPrefixDeleteConversation, err)
	}
	return nil
}

func (uc *implUseCase) Tools() []agent.FunctionDefinition {
	return uc.assistant.Tools()
}

func (uc *implUseCase) getConversation(ctx context.Context, sc model.Scope, id, prefix string) (model.Conversation, error) {
	conv, err := uc.repo.GetOneConversation(ctx, repository.GetOneConversationOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "%s: GetOneConversation: %v", prefix, err)
		return model.Conversation{}, err
	}
	if conv.ID == "" {
		return model.Conversation{}, chat.ErrConversationNotFound
	}
	return conv, nil
}
