package reminder

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ai-scheduler/internal/model"
	pkgLog "ai-scheduler/pkg/log"
)

// Notifier delivers a reminder message to the user.
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

// Service keeps one pending timer per task and fires the reminder at
// start minus the task's lead time. Timers live in memory only; RearmAll
// rebuilds them from storage on boot.
type Service struct {
	mu     sync.Mutex
	timers map[string]*time.Timer

	l        pkgLog.Logger
	notifier Notifier
	now      func() time.Time
}

// New creates a new reminder service.
func New(l pkgLog.Logger, notifier Notifier) *Service {
	return &Service{
		timers:   make(map[string]*time.Timer),
		l:        l,
		notifier: notifier,
		now:      time.Now,
	}
}

// Schedule arms (or re-arms) the reminder for a task. Tasks with reminders
// disabled, without a chat to notify, or whose reminder instant already
// passed are skipped.
func (s *Service) Schedule(ctx context.Context, t model.Task) bool {
	at, ok := t.RemindAt()
	if !ok || t.TelegramChatID == 0 || t.Done {
		return false
	}

	delay := at.Sub(s.now())
	if delay <= 0 {
		s.l.Debugf(ctx, "reminder: task %s reminder instant already passed, skipping", t.ID)
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, exists := s.timers[t.ID]; exists {
		old.Stop()
	}
	s.timers[t.ID] = time.AfterFunc(delay, func() { s.fire(t) })

	s.l.Debugf(ctx, "reminder: task %s armed, fires in %s", t.ID, delay.Round(time.Second))
	return true
}

// Cancel stops the pending reminder for a task, if any.
func (s *Service) Cancel(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, exists := s.timers[taskID]; exists {
		timer.Stop()
		delete(s.timers, taskID)
	}
}

// RearmAll re-arms reminders for the given tasks and returns how many
// were actually armed. Called on boot with not-done tasks from storage.
func (s *Service) RearmAll(ctx context.Context, tasks []model.Task) int {
	armed := 0
	for _, t := range tasks {
		if s.Schedule(ctx, t) {
			armed++
		}
	}
	return armed
}

// Stop cancels every pending reminder.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
}

func (s *Service) fire(t model.Task) {
	s.mu.Lock()
	delete(s.timers, t.ID)
	s.mu.Unlock()

	ctx := context.Background()

	text := fmt.Sprintf("⏰ Reminder: *%s* starts at %s", t.Title, t.Start.Format("15:04"))
	if t.Who != "" {
		text += fmt.Sprintf(" (with %s)", t.Who)
	}

	if err := s.notifier.Notify(ctx, t.TelegramChatID, text); err != nil {
		s.l.Errorf(ctx, "reminder: failed to notify for task %s: %v", t.ID, err)
		return
	}
	s.l.Infof(ctx, "reminder: fired for task %s", t.ID)
}
