package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ai-scheduler/config"
	_ "ai-scheduler/docs" // Swagger docs
	"ai-scheduler/internal/httpserver"
	"ai-scheduler/internal/middleware"
	"ai-scheduler/internal/reminder"
	"ai-scheduler/internal/router"
	tgDelivery "ai-scheduler/internal/task/delivery/telegram"
	"ai-scheduler/internal/task/repository"
	sqliteRepo "ai-scheduler/internal/task/repository/sqlite"
	"ai-scheduler/internal/task/usecase"
	"ai-scheduler/pkg/gcalendar"
	"ai-scheduler/pkg/log"
	"ai-scheduler/pkg/telegram"
)

// @title       AI Scheduler API
// @description Natural language task scheduling with Telegram, SQLite and Google Calendar.
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

	logger.Info(ctx, "Starting AI Scheduler...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := sqliteRepo.Open(cfg.Storage.SQLitePath)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()

	taskRepo, err := sqliteRepo.New(db, logger)
	if err != nil {
		logger.Error(ctx, "Failed to create task repository: ", err)
		return
	}
	logger.Infof(ctx, "SQLite storage ready at %s", cfg.Storage.SQLitePath)

	// 4. Telegram bot (optional)
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
	} else {
		logger.Warn(ctx, "TELEGRAM_BOT_TOKEN missing, Telegram delivery disabled")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. Reminder service
	var reminderSvc *reminder.Service
	if bot != nil {
		reminderSvc = reminder.New(logger, &telegramNotifier{bot: bot})
		defer reminderSvc.Stop()
	}

	// 7. Task use case
	var reminders usecase.ReminderScheduler
	if reminderSvc != nil {
		reminders = reminderSvc
	}
	taskUC := usecase.New(logger, taskRepo, reminders, calendarClient, usecase.Config{
		CalendarID:        cfg.GoogleCalendar.CalendarID,
		Timezone:          cfg.Scheduler.Timezone,
		DefaultRemindMins: cfg.Scheduler.DefaultRemindMins,
		UpcomingWindow:    time.Duration(cfg.Scheduler.UpcomingWindowHours) * time.Hour,
	})

	// 8. Re-arm reminders for tasks that survived a restart
	if reminderSvc != nil {
		pending, listErr := taskRepo.ListTasks(ctx, repository.ListTasksOptions{Limit: 1000})
		if listErr != nil {
			logger.Warnf(ctx, "Failed to list tasks for reminder re-arm: %v", listErr)
		} else {
			armed := reminderSvc.RearmAll(ctx, pending)
			logger.Infof(ctx, "Re-armed %d reminder(s)", armed)
		}
	}

	// 9. Telegram delivery handler
	var telegramHandler tgDelivery.Handler
	if bot != nil && cfg.Webhook.Enabled {
		telegramHandler = tgDelivery.New(logger, taskUC, bot, router.New(logger))
	}

	// 10. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      middleware.New(logger, cfg.Webhook),
		TaskUseCase:     taskUC,
		TelegramHandler: telegramHandler,
	})
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

// telegramNotifier adapts the Telegram bot to the reminder.Notifier interface.
type telegramNotifier struct {
	bot *telegram.Bot
}

func (n *telegramNotifier) Notify(ctx context.Context, chatID int64, text string) error {
	return n.bot.SendMessageWithMode(ctx, chatID, text, "Markdown")
}
