package telegram

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"life-assistant/internal/model"
	"life-assistant/internal/nlu"
	pkgLog "life-assistant/pkg/log"
	pkgResponse "life-assistant/pkg/response"
	pkgTelegram "life-assistant/pkg/telegram"
)

type handler struct {
	l      pkgLog.Logger
	parser nlu.Parser
	exec   Executor
	bot    *pkgTelegram.Bot
	memory *nlu.SessionMemory
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine: Telegram expects a response within a few seconds, and
// the parse + execute pipeline can take longer than that when the LLM is slow.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.) and messages
	// without a chat, which leave nowhere to reply.
	if update.Message == nil || update.Message.Chat == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from HTTP request context (which gets cancelled after response)
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, MsgProcessingError)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Voice != nil {
		return h.processVoice(ctx, msg)
	}
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID, MsgWelcome, "Markdown")
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID, MsgHelp, "Markdown")
	}

	// Build scope from Telegram user context. Channel and service messages
	// carry no sender, so those fall back to a chat-scoped identity.
	sc := model.Scope{UserID: fmt.Sprintf("telegram_chat_%d", msg.Chat.ID)}
	if msg.From != nil {
		sc = model.Scope{UserID: fmt.Sprintf("telegram_%d", msg.From.ID), Username: msg.From.Username}
	}
	h.l.Infof(ctx, "telegram handler: message from %s", sc.UserID)

	history := h.memory.History(msg.Chat.ID)
	intent := h.parser.Parse(ctx, msg.Text, history)
	h.memory.Append(msg.Chat.ID, msg.Text)

	result := h.exec.Execute(ctx, intent)

	return h.bot.SendMessageWithMode(msg.Chat.ID, FormatResult(result), "Markdown")
}

// processVoice acknowledges a voice note. Transcription has no provider wired
// yet, so the file URL is resolved and logged for later processing.
func (h *handler) processVoice(ctx context.Context, msg *pkgTelegram.Message) error {
	fileURL, err := h.bot.GetFileURL(msg.Voice.FileID)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: voice file lookup failed: %v", err)
	} else {
		h.l.Infof(ctx, "telegram handler: voice note received (%ds): %s", msg.Voice.Duration, fileURL)
	}
	return h.bot.SendMessage(msg.Chat.ID, MsgVoiceNotSupported)
}
