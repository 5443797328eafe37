package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-ai-chatbot/internal/agent"
	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/model"
	"todo-ai-chatbot/pkg/log"
	pkgTelegram "todo-ai-chatbot/pkg/telegram"
)

type sent struct {
	chatID int64
	text   string
	mode   string
}

type fakeBot struct {
	sent []sent
}

func (b *fakeBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	return b.SendMessageWithMode(ctx, chatID, text, "")
}

func (b *fakeBot) SendMessageWithMode(ctx context.Context, chatID int64, text, mode string) error {
	b.sent = append(b.sent, sent{chatID: chatID, text: text, mode: mode})
	return nil
}

type fakeChat struct {
	inputs []chat.SendMessageInput
	scopes []model.Scope
	known  map[string]bool
	err    error
	next   int
}

func (f *fakeChat) SendMessage(ctx context.Context, sc model.Scope, input chat.SendMessageInput) (chat.SendMessageOutput, error) {
	f.inputs = append(f.inputs, input)
	f.scopes = append(f.scopes, sc)
	if f.err != nil {
		return chat.SendMessageOutput{}, f.err
	}
	id := input.ConversationID
	if id != "" && !f.known[id] {
		return chat.SendMessageOutput{}, chat.ErrConversationNotFound
	}
	if id == "" {
		f.next++
		id = "conv-" + string(rune('0'+f.next))
		f.known[id] = true
	}
	return chat.SendMessageOutput{
		ConversationID: id,
		Reply:          model.Message{Role: model.RoleAssistant, Content: "reply to " + input.Content},
	}, nil
}

func (f *fakeChat) ListConversations(context.Context, model.Scope, chat.ListConversationsInput) (chat.ListConversationsOutput, error) {
	return chat.ListConversationsOutput{}, nil
}

func (f *fakeChat) GetConversation(context.Context, model.Scope, string) (chat.ConversationDetail, error) {
	return chat.ConversationDetail{}, nil
}

func (f *fakeChat) DeleteConversation(context.Context, model.Scope, string) error { return nil }

func (f *fakeChat) Tools() []agent.FunctionDefinition { return nil }

func newTestHandler() (*handler, *fakeChat, *fakeBot) {
	uc := &fakeChat{known: map[string]bool{}}
	bot := &fakeBot{}
	h := &handler{
		l:     log.NewNop(),
		uc:    uc,
		bot:   bot,
		convs: expirable.NewLRU[int64, string](10, nil, conversationCacheTTL),
	}
	return h, uc, bot
}

func sendWebhook(t *testing.T, h *handler, update pkgTelegram.Update) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	body, err := json.Marshal(update)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func textUpdate(text string) pkgTelegram.Update {
	return pkgTelegram.Update{
		UpdateID: 1,
		Message: &pkgTelegram.Message{
			MessageID: 1,
			Chat:      &pkgTelegram.Chat{ID: 123},
			From:      &pkgTelegram.User{ID: 456},
			Text:      text,
		},
	}
}

func TestHandleWebhook(t *testing.T) {
	h, uc, bot := newTestHandler()

	w := sendWebhook(t, h, textUpdate("Add a task to buy milk"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "accepted")

	require.Len(t, uc.inputs, 1)
	assert.Equal(t, "", uc.inputs[0].ConversationID)
	assert.Equal(t, "telegram_456", uc.scopes[0].UserID)
	require.Len(t, bot.sent, 1)
	assert.Equal(t, int64(123), bot.sent[0].chatID)
	assert.Equal(t, "reply to Add a task to buy milk", bot.sent[0].text)

	sendWebhook(t, h, textUpdate("show my tasks"))
	require.Len(t, uc.inputs, 2)
	assert.Equal(t, "conv-1", uc.inputs[1].ConversationID)

	sendWebhook(t, h, textUpdate("/new"))
	assert.Equal(t, msgNew, bot.sent[len(bot.sent)-1].text)
	sendWebhook(t, h, textUpdate("hello again"))
	require.Len(t, uc.inputs, 3)
	assert.Equal(t, "", uc.inputs[2].ConversationID)
}

func TestHandleWebhook_StaleConversation(t *testing.T) {
	h, uc, bot := newTestHandler()
	h.convs.Add(123, "deleted")

	sendWebhook(t, h, textUpdate("show my tasks"))
	require.Len(t, uc.inputs, 2)
	assert.Equal(t, "deleted", uc.inputs[0].ConversationID)
	assert.Equal(t, "", uc.inputs[1].ConversationID)
	require.Len(t, bot.sent, 1)

	id, ok := h.convs.Get(123)
	require.True(t, ok)
	assert.Equal(t, "conv-1", id)
}

func TestHandleWebhook_Commands(t *testing.T) {
	tcs := map[string]struct {
		text     string
		wantText string
		wantMode string
	}{
		"start": {text: "/start", wantText: msgStart, wantMode: "Markdown"},
		"help":  {text: "/help", wantText: msgHelp, wantMode: "Markdown"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			h, uc, bot := newTestHandler()
			sendWebhook(t, h, textUpdate(tc.text))
			assert.Empty(t, uc.inputs)
			require.Len(t, bot.sent, 1)
			assert.Equal(t, tc.wantText, bot.sent[0].text)
			assert.Equal(t, tc.wantMode, bot.sent[0].mode)
		})
	}
}

func TestHandleWebhook_Ignored(t *testing.T) {
	h, uc, bot := newTestHandler()

	w := sendWebhook(t, h, pkgTelegram.Update{UpdateID: 2})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")

	sendWebhook(t, h, textUpdate("   "))
	assert.Empty(t, uc.inputs)
	assert.Empty(t, bot.sent)
}

func TestHandleWebhook_Error(t *testing.T) {
	h, uc, bot := newTestHandler()
	uc.err = errors.New("db down")

	sendWebhook(t, h, textUpdate("show my tasks"))
	require.Len(t, bot.sent, 1)
	assert.Equal(t, msgError, bot.sent[0].text)
}

func TestHandleWebhook_BadJSON(t *testing.T) {
	h, _, _ := newTestHandler()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/webhook/telegram", h.HandleWebhook)

	req := httptest.NewRequest(http.MethodPost, "/webhook/telegram", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
