package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task/repository"
	"ai-scheduler/internal/task/repository/sqlite"
)

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

func newTestRepo(t *testing.T) repository.TaskRepository {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := sqlite.New(db, &mockLogger{})
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestCreateAndGetTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	start := time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
	end := start.Add(15 * time.Minute)

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:  "standup",
		Who:    "John",
		Start:  start,
		End:    &end,
		Remind: "15",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated ID")
	}
	if created.Repeat != model.RepeatNone {
		t.Errorf("repeat = %q, want %q", created.Repeat, model.RepeatNone)
	}

	got, err := repo.GetTask(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetTask: %v", err)
	}
	if got.Title != "standup" || got.Who != "John" {
		t.Errorf("unexpected task: %+v", got)
	}
	if !got.Start.Equal(start) {
		t.Errorf("start = %v, want %v", got.Start, start)
	}
	if got.End == nil || !got.End.Equal(end) {
		t.Errorf("end = %v, want %v", got.End, end)
	}
}

func TestGetTaskNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetTask(context.Background(), "missing")
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestListTasksWindow(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title: "task",
			Start: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	from := base.AddDate(0, 0, 1)
	to := base.AddDate(0, 0, 2)
	tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{From: &from, To: &to})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task in window, got %d", len(tasks))
	}
	if !tasks[0].Start.Equal(from) {
		t.Errorf("start = %v, want %v", tasks[0].Start, from)
	}
}

func TestListTasksExcludesDoneByDefault(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title: "done task",
		Start: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	done := true
	if _, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: created.ID, Done: &done}); err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	tasks, err := repo.ListTasks(ctx, repository.ListTasksOptions{})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 0 {
		t.Errorf("expected done tasks hidden, got %d", len(tasks))
	}

	tasks, err = repo.ListTasks(ctx, repository.ListTasksOptions{IncludeDone: true})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Errorf("expected done task with IncludeDone, got %d", len(tasks))
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:  "review",
		Who:    "Sara",
		Start:  time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		Remind: "15",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	title := "design review"
	remind := "30"
	updated, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:     created.ID,
		Title:  &title,
		Remind: &remind,
	})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}

	if updated.Title != "design review" {
		t.Errorf("title = %q, want %q", updated.Title, "design review")
	}
	if updated.Remind != "30" {
		t.Errorf("remind = %q, want %q", updated.Remind, "30")
	}
	// Untouched fields keep their values.
	if updated.Who != "Sara" {
		t.Errorf("who = %q, want %q", updated.Who, "Sara")
	}
}

func TestUpdateTaskNotFound(t *testing.T) {
	repo := newTestRepo(t)

	title := "x"
	_, err := repo.UpdateTask(context.Background(), repository.UpdateTaskOptions{ID: "missing", Title: &title})
	if !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("error = %v, want ErrTaskNotFound", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title: "temp",
		Start: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if err := repo.DeleteTask(ctx, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if _, err := repo.GetTask(ctx, created.ID); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("error = %v, want ErrTaskNotFound after delete", err)
	}
	if err := repo.DeleteTask(ctx, created.ID); !errors.Is(err, repository.ErrTaskNotFound) {
		t.Fatalf("error = %v, want ErrTaskNotFound on second delete", err)
	}
}

func TestFindByKeyword(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	titles := []string{"team standup", "design review", "Standup retro"}
	for i, title := range titles {
		_, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
			Title: title,
			Start: base.AddDate(0, 0, i),
		})
		if err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, err := repo.FindByKeyword(ctx, "standup")
	if err != nil {
		t.Fatalf("FindByKeyword: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(tasks))
	}
	// Soonest start first.
	if tasks[0].Title != "team standup" {
		t.Errorf("first match = %q, want %q", tasks[0].Title, "team standup")
	}
}
