package telegram

import (
	"context"

	"github.com/gin-gonic/gin"

	"life-assistant/internal/command"
	"life-assistant/internal/nlu"
	pkgLog "life-assistant/pkg/log"
	pkgTelegram "life-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// Executor runs a parsed intent to completion.
type Executor interface {
	Execute(ctx context.Context, intent command.Intent) command.Result
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	parser nlu.Parser,
	exec Executor,
	bot *pkgTelegram.Bot,
	memory *nlu.SessionMemory,
) Handler {
	return &handler{
		l:      l,
		parser: parser,
		exec:   exec,
		bot:    bot,
		memory: memory,
	}
}
