package telegram

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"todo-ai-chatbot/internal/chat"
	pkgLog "todo-ai-chatbot/pkg/log"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Sender delivers replies to a Telegram chat.
type Sender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithMode(ctx context.Context, chatID int64, text string, parseMode string) error
}

type handler struct {
	l     pkgLog.Logger
	uc    chat.UseCase
	bot   Sender
	convs *expirable.LRU[int64, string]
	async bool
}

const (
	conversationCacheSize = 10000
	conversationCacheTTL  = 24 * time.Hour
)

// New creates a new Telegram delivery handler. Each Telegram chat is mapped
// to one conversation until /new is sent or the mapping expires.
func New(l pkgLog.Logger, uc chat.UseCase, bot Sender) Handler {
	return &handler{
		l:     l,
		uc:    uc,
		bot:   bot,
		convs: expirable.NewLRU[int64, string](conversationCacheSize, nil, conversationCacheTTL),
		async: true,
	}
}
