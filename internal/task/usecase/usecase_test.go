package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"testing"
	"time"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
	"ai-scheduler/internal/task/repository"
	"ai-scheduler/pkg/schedparse"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// In-memory repository mock
type mockRepo struct {
	tasks  map[string]model.Task
	nextID int
}

func newMockRepo() *mockRepo {
	return &mockRepo{tasks: make(map[string]model.Task)}
}

func (r *mockRepo) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	r.nextID++
	t := model.Task{
		ID:             string(rune('a' + r.nextID - 1)),
		Title:          opt.Title,
		Who:            opt.Who,
		Start:          opt.Start,
		End:            opt.End,
		Repeat:         opt.Repeat,
		Remind:         opt.Remind,
		Notes:          opt.Notes,
		TelegramChatID: opt.TelegramChatID,
	}
	if t.Repeat == "" {
		t.Repeat = model.RepeatNone
	}
	r.tasks[t.ID] = t
	return t, nil
}

func (r *mockRepo) GetTask(ctx context.Context, id string) (model.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	return t, nil
}

func (r *mockRepo) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if !opt.IncludeDone && t.Done {
			continue
		}
		if opt.From != nil && t.Start.Before(*opt.From) {
			continue
		}
		if opt.To != nil && !t.Start.Before(*opt.To) {
			continue
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (r *mockRepo) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	t, ok := r.tasks[opt.ID]
	if !ok {
		return model.Task{}, repository.ErrTaskNotFound
	}
	if opt.Title != nil {
		t.Title = *opt.Title
	}
	if opt.Who != nil {
		t.Who = *opt.Who
	}
	if opt.Start != nil {
		t.Start = *opt.Start
	}
	if opt.End != nil {
		t.End = opt.End
	}
	if opt.Remind != nil {
		t.Remind = *opt.Remind
	}
	if opt.Notes != nil {
		t.Notes = *opt.Notes
	}
	if opt.Done != nil {
		t.Done = *opt.Done
	}
	r.tasks[opt.ID] = t
	return t, nil
}

func (r *mockRepo) DeleteTask(ctx context.Context, id string) error {
	if _, ok := r.tasks[id]; !ok {
		return repository.ErrTaskNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *mockRepo) FindByKeyword(ctx context.Context, keyword string) ([]model.Task, error) {
	var out []model.Task
	for _, t := range r.tasks {
		if t.Done {
			continue
		}
		if strings.Contains(strings.ToLower(t.Title), strings.ToLower(keyword)) {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// Recording reminder scheduler mock
type mockReminders struct {
	scheduled []string
	cancelled []string
}

func (m *mockReminders) Schedule(ctx context.Context, t model.Task) bool {
	m.scheduled = append(m.scheduled, t.ID)
	return true
}

func (m *mockReminders) Cancel(taskID string) {
	m.cancelled = append(m.cancelled, taskID)
}

func newTestUseCase(repo repository.TaskRepository, reminders ReminderScheduler) *implUseCase {
	uc := New(&mockLogger{}, repo, reminders, nil, Config{CalendarID: "primary", Timezone: "UTC"})
	// Wednesday, May 1, 2024, 15:30 UTC
	uc.now = func() time.Time { return time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) }
	return uc
}

func TestSchedule(t *testing.T) {
	repo := newMockRepo()
	reminders := &mockReminders{}
	uc := newTestUseCase(repo, reminders)
	ctx := context.Background()
	sc := model.Scope{UserID: "telegram_1"}

	out, err := uc.Schedule(ctx, sc, task.ScheduleInput{
		RawText:        "schedule standup tomorrow at 9am for 15m with John",
		TelegramChatID: 42,
	})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	if out.Task.Title != "standup" {
		t.Errorf("title = %q, want %q", out.Task.Title, "standup")
	}
	if out.Task.Who != "John" {
		t.Errorf("who = %q, want %q", out.Task.Who, "John")
	}
	wantStart := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	if !out.Task.Start.Equal(wantStart) {
		t.Errorf("start = %v, want %v", out.Task.Start, wantStart)
	}
	if out.Task.TelegramChatID != 42 {
		t.Errorf("chat id = %d, want 42", out.Task.TelegramChatID)
	}
	if len(reminders.scheduled) != 1 {
		t.Errorf("expected 1 armed reminder, got %d", len(reminders.scheduled))
	}
}

func TestScheduleEmptyInput(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &mockReminders{})

	_, err := uc.Schedule(context.Background(), model.Scope{}, task.ScheduleInput{RawText: "   "})
	if !errors.Is(err, task.ErrEmptyInput) {
		t.Fatalf("error = %v, want ErrEmptyInput", err)
	}
}

func TestScheduleUnresolvedTime(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &mockReminders{})

	_, err := uc.Schedule(context.Background(), model.Scope{}, task.ScheduleInput{RawText: "blah blah"})
	if !errors.Is(err, schedparse.ErrUnresolvedTime) {
		t.Fatalf("error = %v, want ErrUnresolvedTime", err)
	}
}

func TestListUpcomingWindow(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &mockReminders{})
	ctx := context.Background()
	sc := model.Scope{}

	for _, text := range []string{"schedule a today at 11pm", "schedule b tomorrow at 9am", "schedule c 15 sep"} {
		if _, err := uc.Schedule(ctx, sc, task.ScheduleInput{RawText: text}); err != nil {
			t.Fatalf("Schedule %q: %v", text, err)
		}
	}

	from := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)
	out, err := uc.List(ctx, sc, task.ListInput{From: &from, To: &to})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
	if out.Tasks[0].Title != "a" || out.Tasks[1].Title != "b" {
		t.Errorf("unexpected order: %q, %q", out.Tasks[0].Title, out.Tasks[1].Title)
	}
}

func TestListDefaultsToUpcomingWindow(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &mockReminders{})
	uc.upcomingWindow = 24 * time.Hour
	ctx := context.Background()
	sc := model.Scope{}

	for _, text := range []string{"schedule a today at 11pm", "schedule b tomorrow at 9am", "schedule c 15 sep"} {
		if _, err := uc.Schedule(ctx, sc, task.ScheduleInput{RawText: text}); err != nil {
			t.Fatalf("Schedule %q: %v", text, err)
		}
	}

	// No window given, so the configured 24h window applies
	out, err := uc.List(ctx, sc, task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if out.Count != 2 {
		t.Fatalf("count = %d, want 2", out.Count)
	}
}

func TestScheduleDefaultRemindOverride(t *testing.T) {
	repo := newMockRepo()
	uc := newTestUseCase(repo, &mockReminders{})
	uc.defaultRemind = "30"
	ctx := context.Background()

	out, err := uc.Schedule(ctx, model.Scope{}, task.ScheduleInput{RawText: "schedule standup tomorrow at 9am"})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if out.Task.Remind != "30" {
		t.Errorf("remind = %q, want %q", out.Task.Remind, "30")
	}
}

func TestCompleteByKeyword(t *testing.T) {
	repo := newMockRepo()
	reminders := &mockReminders{}
	uc := newTestUseCase(repo, reminders)
	ctx := context.Background()
	sc := model.Scope{UserID: "telegram_1"}

	out, err := uc.Schedule(ctx, sc, task.ScheduleInput{RawText: "schedule standup tomorrow at 9am"})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	done, err := uc.Complete(ctx, sc, "standup")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !done.Done {
		t.Error("expected task marked done")
	}
	if len(reminders.cancelled) != 1 || reminders.cancelled[0] != out.Task.ID {
		t.Errorf("expected reminder cancelled for %s, got %v", out.Task.ID, reminders.cancelled)
	}

	// Done tasks no longer match keywords.
	if _, err := uc.Complete(ctx, sc, "standup"); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}

func TestDeleteByKeyword(t *testing.T) {
	repo := newMockRepo()
	reminders := &mockReminders{}
	uc := newTestUseCase(repo, reminders)
	ctx := context.Background()
	sc := model.Scope{}

	out, err := uc.Schedule(ctx, sc, task.ScheduleInput{RawText: "schedule review tomorrow at 10am"})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}

	deleted, err := uc.Delete(ctx, sc, "review")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted.ID != out.Task.ID {
		t.Errorf("deleted id = %s, want %s", deleted.ID, out.Task.ID)
	}
	if _, err := uc.Detail(ctx, sc, out.Task.ID); !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound after delete", err)
	}
}

func TestDeleteEmptyKeyword(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &mockReminders{})

	_, err := uc.Delete(context.Background(), model.Scope{}, "  ")
	if !errors.Is(err, task.ErrEmptyKeyword) {
		t.Fatalf("error = %v, want ErrEmptyKeyword", err)
	}
}

func TestUpdateRearmsReminder(t *testing.T) {
	repo := newMockRepo()
	reminders := &mockReminders{}
	uc := newTestUseCase(repo, reminders)
	ctx := context.Background()
	sc := model.Scope{}

	out, err := uc.Schedule(ctx, sc, task.ScheduleInput{RawText: "schedule standup tomorrow at 9am", TelegramChatID: 42})
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	reminders.scheduled = nil

	newStart := time.Date(2024, 5, 3, 10, 0, 0, 0, time.UTC)
	updated, err := uc.Update(ctx, sc, task.UpdateInput{ID: out.Task.ID, Start: &newStart})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if !updated.Start.Equal(newStart) {
		t.Errorf("start = %v, want %v", updated.Start, newStart)
	}
	if len(reminders.scheduled) != 1 {
		t.Errorf("expected reminder re-armed, got %v", reminders.scheduled)
	}

	// Marking done cancels without re-arming.
	reminders.scheduled = nil
	reminders.cancelled = nil
	done := true
	if _, err := uc.Update(ctx, sc, task.UpdateInput{ID: out.Task.ID, Done: &done}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(reminders.cancelled) != 1 || len(reminders.scheduled) != 0 {
		t.Errorf("expected cancel only, got scheduled=%v cancelled=%v", reminders.scheduled, reminders.cancelled)
	}
}

func TestDetailNotFound(t *testing.T) {
	uc := newTestUseCase(newMockRepo(), &mockReminders{})

	_, err := uc.Detail(context.Background(), model.Scope{}, "missing")
	if !errors.Is(err, task.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
}
