package telegram

import (
	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/router"
	"ai-scheduler/internal/task"
	pkgLog "ai-scheduler/pkg/log"
	pkgTelegram "ai-scheduler/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(
	l pkgLog.Logger,
	uc task.UseCase,
	bot *pkgTelegram.Bot,
	router router.Router,
) Handler {
	return &handler{
		l:      l,
		uc:     uc,
		bot:    bot,
		router: router,
	}
}
