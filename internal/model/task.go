package model

import (
	"strconv"
	"time"
)

// Repeat cadence of a task. Only "none" is produced by the parser today;
// the field is stored so future cadences don't need a migration.
type Repeat string

const (
	RepeatNone Repeat = "none"
)

// Task is a scheduled task as stored in SQLite.
type Task struct {
	ID             string     // UUID
	Title          string     // Cleaned title, "Untitled" when nothing remained
	Who            string     // Participant from a "with X" clause, may be empty
	Start          time.Time  // Resolved start instant
	End            *time.Time // Present only when a duration was given
	Repeat         Repeat
	Remind         string // Minutes before Start, as text; "none" disables
	Notes          string
	Done           bool
	TelegramChatID int64 // Where the reminder is delivered; 0 when unknown
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RemindMinutes returns the reminder lead time in minutes and whether a
// reminder is enabled at all.
func (t Task) RemindMinutes() (int, bool) {
	if t.Remind == "" || t.Remind == "none" {
		return 0, false
	}
	n, err := strconv.Atoi(t.Remind)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// RemindAt returns the instant the reminder should fire.
func (t Task) RemindAt() (time.Time, bool) {
	n, ok := t.RemindMinutes()
	if !ok {
		return time.Time{}, false
	}
	return t.Start.Add(-time.Duration(n) * time.Minute), true
}
