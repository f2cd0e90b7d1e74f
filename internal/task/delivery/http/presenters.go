package http

import (
	"time"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
)

// --- Request DTOs ---

type scheduleReq struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

func (r scheduleReq) toInput() task.ScheduleInput {
	return task.ScheduleInput{
		RawText: r.Text,
	}
}

// ---

type listReq struct {
	From        string `form:"from"` // RFC3339
	To          string `form:"to"`   // RFC3339
	IncludeDone bool   `form:"include_done"`
	Limit       int    `form:"limit"`
	Offset      int    `form:"offset"`
}

func (r listReq) toInput() (task.ListInput, error) {
	input := task.ListInput{
		IncludeDone: r.IncludeDone,
		Limit:       r.Limit,
		Offset:      r.Offset,
	}
	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	if r.From != "" {
		from, err := time.Parse(time.RFC3339, r.From)
		if err != nil {
			return input, err
		}
		input.From = &from
	}
	if r.To != "" {
		to, err := time.Parse(time.RFC3339, r.To)
		if err != nil {
			return input, err
		}
		input.To = &to
	}
	return input, nil
}

// ---

type updateReq struct {
	ID     string  `json:"-"` // populated from URI param
	Title  *string `json:"title"  binding:"omitempty,min=1,max=255"`
	Who    *string `json:"who"    binding:"omitempty,max=255"`
	Start  *string `json:"start"  binding:"omitempty"` // RFC3339
	End    *string `json:"end"    binding:"omitempty"` // RFC3339
	Remind *string `json:"remind" binding:"omitempty,max=16"`
	Notes  *string `json:"notes"  binding:"omitempty,max=1000"`
	Done   *bool   `json:"done"`
}

func (r updateReq) toInput() (task.UpdateInput, error) {
	input := task.UpdateInput{
		ID:     r.ID,
		Title:  r.Title,
		Who:    r.Who,
		Remind: r.Remind,
		Notes:  r.Notes,
		Done:   r.Done,
	}

	if r.Start != nil {
		start, err := time.Parse(time.RFC3339, *r.Start)
		if err != nil {
			return input, err
		}
		input.Start = &start
	}
	if r.End != nil {
		end, err := time.Parse(time.RFC3339, *r.End)
		if err != nil {
			return input, err
		}
		input.End = &end
	}
	return input, nil
}

// ---

type keywordReq struct {
	Keyword string `json:"keyword" binding:"required,min=1,max=255"`
}

// --- Response DTOs ---

type taskResp struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Who       string     `json:"who,omitempty"`
	Start     time.Time  `json:"start"`
	End       *time.Time `json:"end,omitempty"`
	Repeat    string     `json:"repeat"`
	Remind    string     `json:"remind"`
	Notes     string     `json:"notes,omitempty"`
	Done      bool       `json:"done"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	return taskResp{
		ID:        t.ID,
		Title:     t.Title,
		Who:       t.Who,
		Start:     t.Start,
		End:       t.End,
		Repeat:    string(t.Repeat),
		Remind:    t.Remind,
		Notes:     t.Notes,
		Done:      t.Done,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

type scheduleResp struct {
	Task         taskResp `json:"task"`
	CalendarLink string   `json:"calendar_link,omitempty"`
}

func (h *handler) newScheduleResp(out task.ScheduleOutput) scheduleResp {
	return scheduleResp{
		Task:         newTaskResp(out.Task),
		CalendarLink: out.CalendarLink,
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		tasks = append(tasks, newTaskResp(t))
	}
	return listResp{
		Tasks: tasks,
		Count: out.Count,
	}
}
