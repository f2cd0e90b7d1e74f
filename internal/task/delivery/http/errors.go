package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/task"
	"ai-scheduler/pkg/response"
	"ai-scheduler/pkg/schedparse"
)

// respondError sends known domain errors as 400 with their message.
// Unknown errors are sent as 500 so internals never leak through the API.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedparse.ErrUnresolvedTime),
		errors.Is(err, task.ErrNotFound),
		errors.Is(err, task.ErrEmptyInput),
		errors.Is(err, task.ErrEmptyKeyword):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
