package usecase

import (
	"context"
	"strconv"
	"time"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task/repository"
	"ai-scheduler/pkg/gcalendar"
	pkgLog "ai-scheduler/pkg/log"
	"ai-scheduler/pkg/schedparse"
)

// ReminderScheduler arms and cancels reminder timers for tasks.
type ReminderScheduler interface {
	Schedule(ctx context.Context, t model.Task) bool
	Cancel(taskID string)
}

// Config carries the scheduler settings for the task use case.
type Config struct {
	CalendarID string
	Timezone   string

	// DefaultRemindMins overrides the parser's reminder lead time when > 0.
	DefaultRemindMins int

	// UpcomingWindow bounds window-less List calls when > 0.
	UpcomingWindow time.Duration
}

type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.TaskRepository
	extractor      *schedparse.Extractor
	reminders      ReminderScheduler
	calendar       *gcalendar.Client
	calendarID     string
	timezone       string
	loc            *time.Location
	defaultRemind  string
	upcomingWindow time.Duration
	now            func() time.Time
}

// New creates a new task UseCase instance. The calendar client and reminder
// scheduler are optional; pass nil to disable them.
func New(
	l pkgLog.Logger,
	repo repository.TaskRepository,
	reminders ReminderScheduler,
	calendar *gcalendar.Client,
	cfg Config,
) *implUseCase {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	defaultRemind := ""
	if cfg.DefaultRemindMins > 0 {
		defaultRemind = strconv.Itoa(cfg.DefaultRemindMins)
	}

	return &implUseCase{
		l:              l,
		repo:           repo,
		extractor:      schedparse.NewExtractor(),
		reminders:      reminders,
		calendar:       calendar,
		calendarID:     cfg.CalendarID,
		timezone:       cfg.Timezone,
		loc:            loc,
		defaultRemind:  defaultRemind,
		upcomingWindow: cfg.UpcomingWindow,
		now:            time.Now,
	}
}
