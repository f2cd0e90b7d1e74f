package task

import (
	"time"

	"ai-scheduler/internal/model"
)

// ScheduleInput is the input for scheduling a task from natural language.
// UserID is stored in model.Scope, not here.
type ScheduleInput struct {
	RawText        string // Natural language utterance from the user
	TelegramChatID int64  // Used to send the reminder back to the user
}

// ScheduleOutput is the result of a successful schedule operation.
type ScheduleOutput struct {
	Task         model.Task
	CalendarLink string // Deep link to the Google Calendar event (may be empty)
}

// ListInput is the input for listing tasks.
type ListInput struct {
	From        *time.Time // Lower bound on Start (inclusive)
	To          *time.Time // Upper bound on Start (exclusive)
	IncludeDone bool
	Limit       int // Max results (default 20)
	Offset      int
}

// ListOutput is the result of listing tasks.
type ListOutput struct {
	Tasks []model.Task
	Count int
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
	ID     string
	Title  *string
	Who    *string
	Start  *time.Time
	End    *time.Time
	Remind *string
	Notes  *string
	Done   *bool
}
