package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"todo-ai-chatbot/internal/chat"
	"todo-ai-chatbot/internal/model"
	pkgResponse "todo-ai-chatbot/pkg/response"
	pkgTelegram "todo-ai-chatbot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It acknowledges immediately and answers the message in the background,
// since Telegram retries updates that are not acknowledged quickly.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	if update.Message == nil || update.Message.Chat == nil || update.Message.From == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	msg := update.Message
	run := func() {
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "%s: %v", logPrefixProcessMessage, err)
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgError)
		}
	}
	if h.async {
		go run()
	} else {
		run()
	}

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	switch text {
	case cmdStart:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgStart, "Markdown")
	case cmdHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, "Markdown")
	case cmdNew:
		h.convs.Remove(msg.Chat.ID)
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgNew)
	}

	sc := model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.From.ID)}
	convID, _ := h.convs.Get(msg.Chat.ID)

	out, err := h.uc.SendMessage(ctx, sc, chat.SendMessageInput{ConversationID: convID, Content: text})
	if errors.Is(err, chat.ErrConversationNotFound) {
		out, err = h.uc.SendMessage(ctx, sc, chat.SendMessageInput{Content: text})
	}
	if err != nil {
		return fmt.Errorf("uc.SendMessage: %w", err)
	}

	h.convs.Add(msg.Chat.ID, out.ConversationID)
	return h.bot.SendMessage(ctx, msg.Chat.ID, out.Reply.Content)
}
