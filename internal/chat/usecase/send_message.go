package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/chat/repository"
	"todo-ai-chatbot/internal/model"
)

// SendMessage stores the user's message, asks the assistant for a reply and
// stores that too.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	start := uc.now()

	content := strings.TrimSpace(input.Content)
	if content == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > chat.MaxMessageLength {
		return chat.SendMessageOutput{}, chat.ErrMessageTooLong
	}

	conv, err := uc.conversationFor(ctx, sc, input.ConversationID, content)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	if _, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ConversationID: conv.ID,
		UserID:         sc.UserID,
		Role:           model.RoleUser,
		Content:        content,
	}); err != nil {
		uc.l.Errorf(ctx, "%s: CreateMessage user: %v", LogPrefixSendMessage, err)
		return chat.SendMessageOutput{}, err
	}

	asc := sc
	asc.SessionID = conv.ID
	reply, err := uc.assistant.ProcessMessage(ctx, asc, content)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ProcessMessage: %v", LogPrefixSendMessage, err)
		return chat.SendMessageOutput{}, err
	}

	msg, err := uc.repo.CreateMessage(ctx, repository.CreateMessageOptions{
		ConversationID: conv.ID,
		UserID:         sc.UserID,
		Role:           model.RoleAssistant,
		Content:        reply.Content,
		ToolCalls:      reply.ToolCalls,
		ToolResults:    reply.ToolResults,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateMessage assistant: %v", LogPrefixSendMessage, err)
		return chat.SendMessageOutput{}, err
	}

	return chat.SendMessageOutput{
		ConversationID: conv.ID,
		Reply:          msg,
		ProcessingTime: uc.now().Sub(start),
		Intent:         reply.Intent.Intent,
		Confidence:     reply.Intent.Confidence,
	}, nil
}

// conversationFor loads the caller's conversation or starts one titled
// after the first message.
func (uc *implUseCase) conversationFor(ctx context.Context, sc model.Scope, id, firstMessage string) (model.Conversation, error) {
	if id != "" {
		return uc.getConversation(ctx, sc, id, LogPrefixSendMessage)
	}

	conv, err := uc.repo.CreateConversation(ctx, repository.CreateConversationOptions{
		UserID: sc.UserID,
		Title:  titleFrom(firstMessage),
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: CreateConversation: %v", LogPrefixSendMessage, err)
		return model.Conversation{}, err
	}
	return conv, nil
}

func titleFrom(message string) string {
	runes := []rune(message)
	if len(runes) > chat.ConversationTitleRunes {
		runes = runes[:chat.ConversationTitleRunes]
	}
	return strings.TrimSpace(string(runes))
}
