package http

import (
	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/response"
)

// Schedule godoc
// @Summary     Schedule a task from natural language
// @Description Parses an utterance like "schedule standup tomorrow at 9am for 15m with John" and stores the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body scheduleReq true "Utterance"
// @Success     200  {object} scheduleResp
// @Failure     400  {object} response.Resp "Bad Request / unresolvable time"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Schedule(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Schedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newScheduleResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Returns tasks ordered by start, optionally restricted to a window.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       from         query string false "Window start (RFC3339)"
// @Param       to           query string false "Window end (RFC3339)"
// @Param       include_done query bool   false "Include completed tasks"
// @Param       limit        query int    false "Page size (default: 20)"
// @Param       offset       query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Not found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	t, err := h.uc.Detail(ctx, h.scope(c), c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Applies a partial update; omitted fields keep their values.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request / not found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Update(ctx, h.scope(c), input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Complete godoc
// @Summary     Complete a task by keyword
// @Description Marks the soonest not-done task whose title contains the keyword as done.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body keywordReq true "Keyword"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request / not found"
// @Router      /api/v1/tasks/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processKeywordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Complete(ctx, h.scope(c), req.Keyword)
	if err != nil {
		h.l.Warnf(ctx, "uc.Complete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task by keyword
// @Description Removes the soonest not-done task whose title contains the keyword.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body keywordReq true "Keyword"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request / not found"
// @Router      /api/v1/tasks [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processKeywordReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	t, err := h.uc.Delete(ctx, h.scope(c), req.Keyword)
	if err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(t))
}

// scope builds the acting identity for REST calls.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{UserID: "rest_api"}
}
