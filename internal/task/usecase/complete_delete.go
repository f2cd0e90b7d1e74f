package usecase

import (
	"context"
	"errors"
	"strings"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
	"ai-scheduler/internal/task/repository"
)

// Complete marks the best keyword match as done and cancels its reminder.
func (uc *implUseCase) Complete(ctx context.Context, sc model.Scope, keyword string) (model.Task, error) {
	match, err := uc.findByKeyword(ctx, keyword)
	if err != nil {
		return model.Task{}, err
	}

	done := true
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:   match.ID,
		Done: &done,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Complete: UpdateTask %s: %v", match.ID, err)
		return model.Task{}, err
	}

	if uc.reminders != nil {
		uc.reminders.Cancel(updated.ID)
	}

	uc.l.Infof(ctx, "Complete: task %q id=%s done by user=%s", updated.Title, updated.ID, sc.UserID)
	return updated, nil
}

// Delete removes the best keyword match and cancels its reminder.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, keyword string) (model.Task, error) {
	match, err := uc.findByKeyword(ctx, keyword)
	if err != nil {
		return model.Task{}, err
	}

	if err := uc.repo.DeleteTask(ctx, match.ID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Delete: DeleteTask %s: %v", match.ID, err)
		return model.Task{}, err
	}

	if uc.reminders != nil {
		uc.reminders.Cancel(match.ID)
	}

	uc.l.Infof(ctx, "Delete: task %q id=%s removed by user=%s", match.Title, match.ID, sc.UserID)
	return match, nil
}

// findByKeyword returns the soonest not-done task whose title contains the
// keyword.
func (uc *implUseCase) findByKeyword(ctx context.Context, keyword string) (model.Task, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return model.Task{}, task.ErrEmptyKeyword
	}

	matches, err := uc.repo.FindByKeyword(ctx, keyword)
	if err != nil {
		uc.l.Errorf(ctx, "findByKeyword %q: %v", keyword, err)
		return model.Task{}, err
	}
	if len(matches) == 0 {
		return model.Task{}, task.ErrNotFound
	}
	return matches[0], nil
}
