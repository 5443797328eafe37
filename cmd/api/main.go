package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-ai-chatbot/config"
	_ "todo-ai-chatbot/docs" // Swagger docs
	"todo-ai-chatbot/internal/agent/orchestrator"
	"todo-ai-chatbot/internal/httpserver"
	"todo-ai-chatbot/internal/intent"
	intentNATS "todo-ai-chatbot/internal/intent/delivery/nats"
	intentUC "todo-ai-chatbot/internal/intent/usecase"
	"todo-ai-chatbot/internal/middleware"
	taskUC "todo-ai-chatbot/internal/task/usecase"
	"todo-ai-chatbot/pkg/datemath"
	"todo-ai-chatbot/pkg/gcalendar"
	"todo-ai-chatbot/pkg/log"
	"todo-ai-chatbot/pkg/scope"
	"todo-ai-chatbot/pkg/session"
	"todo-ai-chatbot/pkg/sqlite"
	"todo-ai-chatbot/pkg/telegram"
)

// @title       Todo AI Chatbot API
// @description Todo list API with a rule-based chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Server stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Todo AI Chatbot...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqlite.Open(ctx, sqlite.Config{Path: cfg.Database.Path})
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready at %s", cfg.Database.Path)

	// 4. Auth
	secret := cfg.JWT.Secret
	if secret == "" {
		secret = "development-secret"
		logger.Warn(ctx, "jwt.secret not set, using an insecure development secret")
	}
	tokens, err := scope.New(scope.Config{
		Secret:     secret,
		Issuer:     cfg.JWT.Issuer,
		AccessTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTTL: cfg.JWT.RefreshTokenTTL,
	})
	if err != nil {
		return fmt.Errorf("token manager: %w", err)
	}

	// 5. Assistant
	classifier, err := intent.New(intent.Config{Threshold: &cfg.Intent.Threshold})
	if err != nil {
		return fmt.Errorf("intent classifier: %w", err)
	}

	dates, err := datemath.NewParser(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	var sessions session.Store = session.NewLRUStore(cfg.Chat.SessionSize, cfg.Chat.SessionTTL)
	if cfg.Redis.URL != "" {
		redisStore, rErr := session.NewRedisStore(ctx, cfg.Redis.URL, cfg.Chat.SessionTTL)
		if rErr != nil {
			logger.Warnf(ctx, "Redis not available, keeping sessions in memory: %v", rErr)
		} else {
			defer redisStore.Close()
			sessions = redisStore
			logger.Info(ctx, "Session memory stored in Redis")
		}
	}

	// 6. Optional integrations
	calendar := taskUC.CalendarConfig{CalendarID: cfg.GoogleCalendar.CalendarID, Timezone: cfg.Timezone}
	if cfg.GoogleCalendar.CredentialsPath != "" {
		client, cErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if cErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", cErr)
		} else {
			calendar.Client = client
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	var bot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		bot = telegram.NewBot(cfg.Telegram.BotToken)
		if cfg.Telegram.WebhookURL != "" {
			if whErr := bot.SetWebhook(ctx, cfg.Telegram.WebhookURL); whErr != nil {
				logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
			} else {
				logger.Infof(ctx, "Telegram webhook registered at %s", cfg.Telegram.WebhookURL)
			}
		}
	}

	if cfg.NATS.URL != "" {
		natsCfg := intentNATS.Config{
			URL:     cfg.NATS.URL,
			Name:    httpserver.ServiceName,
			Subject: cfg.NATS.Subject,
			Timeout: cfg.NATS.Timeout,
		}
		conn, nErr := intentNATS.Connect(natsCfg)
		if nErr != nil {
			logger.Warnf(ctx, "NATS not available, intent service disabled: %v", nErr)
		} else {
			natsSrv := intentNATS.New(logger, intentUC.New(logger, classifier), conn, natsCfg)
			if sErr := natsSrv.Start(); sErr != nil {
				conn.Close()
				return sErr
			}
			defer natsSrv.Close()
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Tokens:      tokens,
		RateLimit: middleware.RateLimitConfig{
			PerMinute: cfg.RateLimit.PerMinute,
			Burst:     cfg.RateLimit.Burst,
		},
		Classifier: classifier,
		Sessions:   sessions,
		Dates:      dates,
		Orchestrator: orchestrator.Config{
			HistoryLimit: cfg.Chat.MaxMessageHistory,
			PendingTTL:   orchestrator.DefaultPendingTTL,
		},
		MaxMessageHistory: cfg.Chat.MaxMessageHistory,
		Calendar:          calendar,
		TelegramBot:       bot,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 8. Run
	return httpServer.Run(ctx)
}
