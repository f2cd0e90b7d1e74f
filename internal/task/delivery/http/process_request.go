package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/task"
)

var errMissingID = errors.New("missing task id")

// processScheduleReq binds and validates the schedule request body.
func (h *handler) processScheduleReq(c *gin.Context) (scheduleReq, error) {
	var req scheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (task.ListInput, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, err
	}
	return req.toInput()
}

// processUpdateReq binds and validates the update request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (task.UpdateInput, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.UpdateInput{}, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return task.UpdateInput{}, errMissingID
	}
	return req.toInput()
}

// processKeywordReq binds the keyword body used by complete and delete.
func (h *handler) processKeywordReq(c *gin.Context) (keywordReq, error) {
	var req keywordReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
