package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"life-assistant/config"
	_ "life-assistant/docs" // Swagger docs
	tgDelivery "life-assistant/internal/command/delivery/telegram"
	"life-assistant/internal/command/executor"
	"life-assistant/internal/db"
	diarySqlite "life-assistant/internal/diary/repository/sqlite"
	goalSqlite "life-assistant/internal/goal/repository/sqlite"
	habitSqlite "life-assistant/internal/habit/repository/sqlite"
	"life-assistant/internal/httpserver"
	"life-assistant/internal/nlu"
	"life-assistant/internal/notify"
	todoSqlite "life-assistant/internal/todo/repository/sqlite"
	txSqlite "life-assistant/internal/transaction/repository/sqlite"
	"life-assistant/pkg/datephrase"
	"life-assistant/pkg/gcalendar"
	"life-assistant/pkg/gemini"
	"life-assistant/pkg/log"
	"life-assistant/pkg/telegram"
)

// @title       Life Assistant API
// @description Voice and text command pipeline for finance, todos, habits, goals, and diary, with Telegram delivery and Gemini LLM parsing.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Life Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Storage: %s", cfg.Storage.Path)

	// 3. Storage
	conn, err := db.Open(db.Config{Path: cfg.Storage.Path})
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer conn.Close()

	transactionRepo := txSqlite.New(conn, logger)
	todoRepo := todoSqlite.New(conn, logger)
	diaryRepo := diarySqlite.New(conn, logger)
	habitRepo := habitSqlite.New(conn, logger)
	goalRepo := goalSqlite.New(conn, logger)

	// 4. Date phrase resolver
	resolver, err := datephrase.NewResolver(cfg.Environment.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Environment.Timezone, err)
		resolver, _ = datephrase.NewResolver("UTC")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Command executor
	execDeps := executor.Deps{
		Logger:       logger,
		Transactions: transactionRepo,
		Todos:        todoRepo,
		Diary:        diaryRepo,
		Habits:       habitRepo,
		Goals:        goalRepo,
		Dates:        resolver,
		CalendarID:   cfg.GoogleCalendar.CalendarID,
		Timezone:     cfg.Environment.Timezone,
	}
	if calendarClient != nil {
		execDeps.Calendar = calendarClient
	}
	exec := executor.New(execDeps)

	// 7. NLU parser
	geminiClient := gemini.NewClient(cfg.Gemini.APIKey)
	geminiClient.SetModel(cfg.Gemini.Model)
	parser := nlu.New(geminiClient, logger, nlu.Options{Timezone: cfg.Environment.Timezone})
	memory := nlu.NewSessionMemory()

	// 8. Telegram delivery
	var telegramHandler tgDelivery.Handler
	if cfg.Telegram.BotToken != "" {
		telegramBot := telegram.NewBot(cfg.Telegram.BotToken)
		telegramHandler = tgDelivery.New(logger, parser, exec, telegramBot, memory)

		if cfg.Telegram.WebhookURL != "" {
			if whErr := telegramBot.SetWebhook(cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	} else {
		logger.Warn(ctx, "Telegram delivery skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 9. Payment notification webhook
	var notifyHandler *notify.Handler
	if cfg.Notify.Enabled && cfg.Notify.Secret != "" {
		notifyHandler = notify.NewHandler(transactionRepo, notify.SecurityConfig{
			Secret:          cfg.Notify.Secret,
			AllowedIPs:      cfg.Notify.AllowedIPs,
			RateLimitPerMin: cfg.Notify.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Notification webhook skipped: disabled or secret missing")
	}

	// 10. HTTP Server
	srvCfg := httpserver.Config{
		Logger:                logger,
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		TelegramHandler:       telegramHandler,
		NotifyRateLimitPerMin: cfg.Notify.RateLimitPerMin,
	}
	if notifyHandler != nil {
		srvCfg.NotifyHandler = notifyHandler
	}
	httpServer, err := httpserver.New(srvCfg)
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
