package http

import (
	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/task"
	"ai-scheduler/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Schedule(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Complete(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc task.UseCase
}

// New creates a new HTTP handler for the task domain.
func New(l log.Logger, uc task.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
