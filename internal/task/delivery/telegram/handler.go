package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/router"
	"ai-scheduler/internal/task"
	pkgLog "ai-scheduler/pkg/log"
	pkgResponse "ai-scheduler/pkg/response"
	pkgTelegram "ai-scheduler/pkg/telegram"
)

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	bot    *pkgTelegram.Bot
	router router.Router
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine so slow downstreams (storage, calendar) never hit
// the Telegram webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
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
			_ = h.bot.SendMessage(bgCtx, msg.Chat.ID, msgProcessingFailed)
		}
	}()

	// Telegram acknowledged immediately
	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage routes a single Telegram message by intent.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	var sc model.Scope
	if msg.From != nil {
		sc = model.Scope{
			UserID:   fmt.Sprintf("telegram_%d", msg.From.ID),
			Username: msg.From.Username,
		}
	}

	out, err := h.router.Classify(ctx, msg.Text)
	if err != nil {
		return err
	}

	switch out.Intent {
	case router.IntentHelp:
		return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, msgHelp, "Markdown")
	case router.IntentSchedule:
		return h.handleSchedule(ctx, sc, msg)
	case router.IntentList:
		return h.handleList(ctx, sc, msg)
	case router.IntentDelete:
		return h.handleDelete(ctx, sc, msg, out.Keyword)
	case router.IntentComplete:
		return h.handleComplete(ctx, sc, msg, out.Keyword)
	default:
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgHint)
	}
}

func (h *handler) handleSchedule(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message) error {
	out, err := h.uc.Schedule(ctx, sc, task.ScheduleInput{
		RawText:        msg.Text,
		TelegramChatID: msg.Chat.ID,
	})
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Schedule failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}

	reply := fmt.Sprintf("✅ Scheduled *%s*\n🕘 %s", out.Task.Title, formatStart(out.Task))
	if out.Task.Who != "" {
		reply += fmt.Sprintf("\n👤 With %s", out.Task.Who)
	}
	if mins, ok := out.Task.RemindMinutes(); ok {
		reply += fmt.Sprintf("\n⏰ Reminder %d min before", mins)
	}
	if out.CalendarLink != "" {
		reply += fmt.Sprintf("\n📅 [Calendar](%s)", out.CalendarLink)
	}
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, reply, "Markdown")
}

func (h *handler) handleList(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message) error {
	out, err := h.uc.List(ctx, sc, task.ListInput{Limit: 10})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: List failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}

	if out.Count == 0 {
		return h.bot.SendMessage(ctx, msg.Chat.ID, msgNothingScheduled)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 *%d task(s)*\n\n", out.Count))
	for i, t := range out.Tasks {
		b.WriteString(fmt.Sprintf("%d. *%s* — %s", i+1, t.Title, formatStart(t)))
		if t.Who != "" {
			b.WriteString(fmt.Sprintf(" (with %s)", t.Who))
		}
		b.WriteString("\n")
	}
	return h.bot.SendMessageWithMode(ctx, msg.Chat.ID, b.String(), "Markdown")
}

func (h *handler) handleDelete(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, keyword string) error {
	deleted, err := h.uc.Delete(ctx, sc, keyword)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Delete failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf("🗑 Deleted %q", deleted.Title))
}

func (h *handler) handleComplete(ctx context.Context, sc model.Scope, msg *pkgTelegram.Message, keyword string) error {
	done, err := h.uc.Complete(ctx, sc, keyword)
	if err != nil {
		h.l.Warnf(ctx, "telegram handler: Complete failed: %v", err)
		return h.bot.SendMessage(ctx, msg.Chat.ID, errorMessage(err))
	}
	return h.bot.SendMessage(ctx, msg.Chat.ID, fmt.Sprintf("✔️ Done: %q", done.Title))
}

func formatStart(t model.Task) string {
	s := t.Start.Format("Mon, 02 Jan 15:04")
	if t.End != nil {
		s += "–" + t.End.Format("15:04")
	}
	return s
}
