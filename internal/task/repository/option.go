package repository

import (
	"time"

	"ai-scheduler/internal/model"
)

// CreateTaskOptions holds the parameters for creating a task.
type CreateTaskOptions struct {
	Title          string
	Who            string
	Start          time.Time
	End            *time.Time
	Repeat         model.Repeat
	Remind         string
	Notes          string
	TelegramChatID int64
}

// ListTasksOptions holds the parameters for listing tasks.
type ListTasksOptions struct {
	From        *time.Time // Start >= From
	To          *time.Time // Start < To
	IncludeDone bool
	Limit       int // Max number of results (default 20)
	Offset      int // Pagination offset
}

// UpdateTaskOptions carries a partial update. Nil fields keep their stored value.
type UpdateTaskOptions struct {
	ID     string
	Title  *string
	Who    *string
	Start  *time.Time
	End    *time.Time
	Remind *string
	Notes  *string
	Done   *bool
}
