package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task/repository"
)

const taskColumns = "id, title, who, start_at, end_at, repeat, remind, notes, done, chat_id, created_at, updated_at"

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()

	repeat := opt.Repeat
	if repeat == "" {
		repeat = model.RepeatNone
	}

	t := model.Task{
		ID:             uuid.NewString(),
		Title:          opt.Title,
		Who:            opt.Who,
		Start:          opt.Start,
		End:            opt.End,
		Repeat:         repeat,
		Remind:         opt.Remind,
		Notes:          opt.Notes,
		TelegramChatID: opt.TelegramChatID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	var endAt any
	if t.End != nil {
		endAt = t.End.UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?, ?)
	`, t.ID, t.Title, t.Who, t.Start.UTC().Format(time.RFC3339), endAt,
		string(t.Repeat), t.Remind, t.Notes, t.TelegramChatID,
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339))
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: insert task: %v", err)
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}

	r.cache.Add(t.ID, t)
	return t, nil
}

func (r *implRepository) GetTask(ctx context.Context, id string) (model.Task, error) {
	if t, ok := r.cache.Get(id); ok {
		return t, nil
	}

	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)

	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Task{}, repository.ErrTaskNotFound
		}
		r.l.Errorf(ctx, "sqlite repository: get task %s: %v", id, err)
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}

	r.cache.Add(t.ID, t)
	return t, nil
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	where := []string{}
	args := []any{}

	if opt.From != nil {
		where = append(where, "start_at >= ?")
		args = append(args, opt.From.UTC().Format(time.RFC3339))
	}
	if opt.To != nil {
		where = append(where, "start_at < ?")
		args = append(args, opt.To.UTC().Format(time.RFC3339))
	}
	if !opt.IncludeDone {
		where = append(where, "done = 0")
	}

	query := `SELECT ` + taskColumns + ` FROM tasks`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY start_at ASC"

	limit := opt.Limit
	if limit <= 0 {
		limit = 20
	}
	query += " LIMIT ? OFFSET ?"
	args = append(args, limit, opt.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: list tasks: %v", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	set := []string{}
	args := []any{}

	if opt.Title != nil {
		set = append(set, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Who != nil {
		set = append(set, "who = ?")
		args = append(args, *opt.Who)
	}
	if opt.Start != nil {
		set = append(set, "start_at = ?")
		args = append(args, opt.Start.UTC().Format(time.RFC3339))
	}
	if opt.End != nil {
		set = append(set, "end_at = ?")
		args = append(args, opt.End.UTC().Format(time.RFC3339))
	}
	if opt.Remind != nil {
		set = append(set, "remind = ?")
		args = append(args, *opt.Remind)
	}
	if opt.Notes != nil {
		set = append(set, "notes = ?")
		args = append(args, *opt.Notes)
	}
	if opt.Done != nil {
		set = append(set, "done = ?")
		if *opt.Done {
			args = append(args, 1)
		} else {
			args = append(args, 0)
		}
	}

	if len(set) == 0 {
		return r.GetTask(ctx, opt.ID)
	}

	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339))
	args = append(args, opt.ID)

	result, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: update task %s: %v", opt.ID, err)
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return model.Task{}, repository.ErrTaskNotFound
	}

	r.cache.Remove(opt.ID)
	return r.GetTask(ctx, opt.ID)
}

func (r *implRepository) DeleteTask(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: delete task %s: %v", id, err)
		return fmt.Errorf("delete task: %w", err)
	}

	n, _ := result.RowsAffected()
	if n == 0 {
		return repository.ErrTaskNotFound
	}

	r.cache.Remove(id)
	return nil
}

func (r *implRepository) FindByKeyword(ctx context.Context, keyword string) ([]model.Task, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE done = 0 AND lower(title) LIKE '%' || lower(?) || '%'
		ORDER BY start_at ASC
	`, keyword)
	if err != nil {
		r.l.Errorf(ctx, "sqlite repository: find by keyword %q: %v", keyword, err)
		return nil, fmt.Errorf("find by keyword: %w", err)
	}
	defer rows.Close()

	return scanTasks(rows)
}

func scanTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var startAt, createdAt, updatedAt, repeat string
	var endAt sql.NullString
	var done int

	if err := row.Scan(&t.ID, &t.Title, &t.Who, &startAt, &endAt,
		&repeat, &t.Remind, &t.Notes, &done, &t.TelegramChatID, &createdAt, &updatedAt); err != nil {
		return model.Task{}, err
	}

	t.Start, _ = time.Parse(time.RFC3339, startAt)
	if endAt.Valid {
		end, _ := time.Parse(time.RFC3339, endAt.String)
		t.End = &end
	}
	t.Repeat = model.Repeat(repeat)
	t.Done = done != 0
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return t, nil
}
