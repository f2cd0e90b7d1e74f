package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
	"ai-scheduler/internal/task/repository"
	"ai-scheduler/pkg/gcalendar"
)

// Schedule parses a natural language utterance, stores the task, arms the
// reminder and mirrors the event to Google Calendar when configured.
func (uc *implUseCase) Schedule(ctx context.Context, sc model.Scope, input task.ScheduleInput) (task.ScheduleOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ScheduleOutput{}, task.ErrEmptyInput
	}

	uc.l.Infof(ctx, "Schedule: user=%s input_length=%d", sc.UserID, len(input.RawText))

	parsed, err := uc.extractor.Extract(input.RawText, uc.now().In(uc.loc))
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: extract failed for user=%s: %v", sc.UserID, err)
		return task.ScheduleOutput{}, err
	}
	if uc.defaultRemind != "" {
		parsed.Remind = uc.defaultRemind
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:          parsed.Title,
		Who:            parsed.Who,
		Start:          parsed.Start,
		End:            parsed.End,
		Repeat:         model.Repeat(parsed.Repeat),
		Remind:         parsed.Remind,
		Notes:          parsed.Notes,
		TelegramChatID: input.TelegramChatID,
	})
	if err != nil {
		return task.ScheduleOutput{}, fmt.Errorf("create task: %w", err)
	}

	if uc.reminders != nil {
		uc.reminders.Schedule(ctx, created)
	}

	calendarLink := uc.tryCreateCalendarEvent(ctx, created)

	uc.l.Infof(ctx, "Schedule: created task %q id=%s start=%s", created.Title, created.ID, created.Start.Format(time.RFC3339))

	return task.ScheduleOutput{
		Task:         created,
		CalendarLink: calendarLink,
	}, nil
}

// tryCreateCalendarEvent mirrors the task to Google Calendar.
// Returns the event HTML link, or empty string on failure (graceful degradation).
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, t model.Task) string {
	if uc.calendar == nil {
		return ""
	}

	endTime := t.Start.Add(time.Hour)
	if t.End != nil {
		endTime = *t.End
	}

	description := t.Notes
	if t.Who != "" {
		description = strings.TrimSpace(description + "\nWith: " + t.Who)
	}

	req := gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: description,
		StartTime:   t.Start,
		EndTime:     endTime,
		Timezone:    uc.timezone,
	}
	if mins, ok := t.RemindMinutes(); ok {
		req.ReminderMinutes = &mins
	}

	event, err := uc.calendar.CreateEvent(ctx, req)
	if err != nil {
		uc.l.Warnf(ctx, "Schedule: calendar event creation failed for %q (non-fatal): %v", t.Title, err)
		return ""
	}

	return event.HtmlLink
}
