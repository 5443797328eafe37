package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/agent/orchestrator"
	"todo-ai-chatbot/internal/agent/tools"
	"todo-ai-chatbot/internal/chat"
	chatSqlite "todo-ai-chatbot/internal/chat/repository/sqlite"
	"todo-ai-chatbot/internal/intent"
	"todo-ai-chatbot/internal/model"
	taskSqlite "todo-ai-chatbot/internal/task/repository/sqlite"
	taskUC "todo-ai-chatbot/internal/task/usecase"
	"todo-ai-chatbot/pkg/datemath"
	"todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/session"
	pkgSqlite "todo-ai-chatbot/pkg/sqlite"
)

var sc = model.Scope{UserID: "u1"}

func newTestUseCase(t *testing.T, maxHistory int) *implUseCase {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), pkgSqlite.Config{Path: pkgSqlite.MemoryPath})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	dates, err := datemath.NewParser("UTC")
	require.NoError(t, err)

	l := log.NewNop()
	tasks := taskUC.New(l, taskSqlite.New(db, l), taskUC.CalendarConfig{})
	registry := agent.NewToolRegistry()
	tools.Register(registry, tools.Deps{Logger: l, UseCase: tasks, Dates: dates})
	o := orchestrator.New(l, intent.MustNew(intent.Config{}), registry, session.NewLRUStore(10, time.Minute), orchestrator.Config{})

	return New(l, chatSqlite.New(db, l), o, maxHistory)
}

func TestSendMessage(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, 0)

	out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Content: "Add a task to buy groceries"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.ConversationID)
	assert.Equal(t, intent.IntentAddTask, out.Intent)
	assert.Greater(t, out.Confidence, 0.0)
	assert.Equal(t, model.RoleAssistant, out.Reply.Role)
	assert.Equal(t, "Task 'buy groceries' created successfully", out.Reply.Content)
	require.Len(t, out.Reply.ToolCalls, 1)
	assert.Equal(t, agent.ToolAddTask, out.Reply.ToolCalls[0].Name)

	detail, err := uc.GetConversation(ctx, sc, out.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, "Add a task to buy groceries", detail.Conversation.Title)
	require.Len(t, detail.Messages, 2)
	assert.Equal(t, model.RoleUser, detail.Messages[0].Role)
	assert.Equal(t, model.RoleAssistant, detail.Messages[1].Role)

	next, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{ConversationID: out.ConversationID, Content: "show my tasks"})
	require.NoError(t, err)
	assert.Equal(t, out.ConversationID, next.ConversationID)
	assert.Equal(t, "You have 1 task:\n1. [ ] buy groceries", next.Reply.Content)
}

func TestSendMessage_Validation(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, 0)

	tcs := map[string]struct {
		input   chat.SendMessageInput
		wantErr error
	}{
		"empty": {
			input:   chat.SendMessageInput{Content: "   "},
			wantErr: chat.ErrEmptyMessage,
		},
		"too long": {
			input:   chat.SendMessageInput{Content: strings.Repeat("a", chat.MaxMessageLength+1)},
			wantErr: chat.ErrMessageTooLong,
		},
		"unknown conversation": {
			input:   chat.SendMessageInput{ConversationID: "missing", Content: "hi"},
			wantErr: chat.ErrConversationNotFound,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			_, err := uc.SendMessage(ctx, sc, tc.input)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestSendMessage_LongTitle(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, 0)

	content := "add task " + strings.Repeat("é", 100)
	out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Content: content})
	require.NoError(t, err)

	detail, err := uc.GetConversation(ctx, sc, out.ConversationID)
	require.NoError(t, err)
	assert.Equal(t, chat.ConversationTitleRunes, len([]rune(detail.Conversation.Title)))
}

func TestConversations(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(t, 3)

	out, err := uc.SendMessage(ctx, sc, chat.SendMessageInput{Content: "help"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, sc, chat.SendMessageInput{ConversationID: out.ConversationID, Content: "show my tasks"})
	require.NoError(t, err)
	_, err = uc.SendMessage(ctx, model.Scope{UserID: "u2"}, chat.SendMessageInput{Content: "help"})
	require.NoError(t, err)

	list, err := uc.ListConversations(ctx, sc, chat.ListConversationsInput{})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Total)
	assert.Equal(t, chat.DefaultListLimit, list.Limit)

	_, err = uc.ListConversations(ctx, sc, chat.ListConversationsInput{Limit: 101})
	assert.ErrorIs(t, err, chat.ErrInvalidPagination)

	detail, err := uc.GetConversation(ctx, sc, out.ConversationID)
	require.NoError(t, err)
	require.Len(t, detail.Messages, 3)
	assert.Equal(t, "show my tasks", detail.Messages[1].Content)

	_, err = uc.GetConversation(ctx, model.Scope{UserID: "u2"}, out.ConversationID)
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)

	require.NoError(t, uc.DeleteConversation(ctx, sc, out.ConversationID))
	_, err = uc.GetConversation(ctx, sc, out.ConversationID)
	assert.ErrorIs(t, err, chat.ErrConversationNotFound)
	assert.ErrorIs(t, uc.DeleteConversation(ctx, sc, out.ConversationID), chat.ErrConversationNotFound)

	assert.NotEmpty(t, uc.Tools())
}
