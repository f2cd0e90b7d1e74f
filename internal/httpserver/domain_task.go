package httpserver

import (
	"context"

	taskHTTP "ai-scheduler/internal/task/delivery/http"

	"github.com/gin-gonic/gin"
)

// setupTaskDomain registers the task REST routes under /api/v1/tasks.
func (srv HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.taskUC == nil {
		srv.l.Infof(ctx, "Task use case not configured, skipping REST routes")
		return nil
	}

	h := taskHTTP.New(srv.l, srv.taskUC)
	taskHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Task domain registered")
	return nil
}
