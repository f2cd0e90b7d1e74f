package telegram

import (
	"errors"

	"ai-scheduler/internal/task"
	"ai-scheduler/pkg/schedparse"
)

// User-facing messages.
const (
	msgHelp = "*How to use:*\n\n" +
		"`schedule standup tomorrow at 9am for 15m with John`\n" +
		"`list my tasks`\n" +
		"`delete standup`\n" +
		"`standup done`\n\n" +
		"I understand dates like _tomorrow_, _next monday_, _15 sep_ and _2024-06-01_."

	msgHint             = "Tell me what to schedule, e.g. \"schedule call next monday 3pm with John\"."
	msgNothingScheduled = "Nothing scheduled."
	msgProcessingFailed = "Something went wrong while handling your request. Please try again."
)

// errorMessage maps a domain error to a user-facing string.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, schedparse.ErrUnresolvedTime):
		return schedparse.ErrUnresolvedTime.Error()
	case errors.Is(err, task.ErrNotFound):
		return "No matching task found."
	case errors.Is(err, task.ErrEmptyKeyword):
		return "Which task do you mean? Try \"delete standup\"."
	case errors.Is(err, task.ErrEmptyInput):
		return "Please tell me what to schedule."
	default:
		return msgProcessingFailed
	}
}
