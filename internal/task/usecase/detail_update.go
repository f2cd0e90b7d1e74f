package usecase

import (
	"context"
	"errors"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
	"ai-scheduler/internal/task/repository"
)

// Detail returns a single task by ID.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Detail: GetTask %s: %v", id, err)
		return model.Task{}, err
	}
	return t, nil
}

// Update applies a partial update and keeps the reminder timer in sync with
// the new start, lead time or done state.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:     input.ID,
		Title:  input.Title,
		Who:    input.Who,
		Start:  input.Start,
		End:    input.End,
		Remind: input.Remind,
		Notes:  input.Notes,
		Done:   input.Done,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		uc.l.Errorf(ctx, "Update: UpdateTask %s: %v", input.ID, err)
		return model.Task{}, err
	}

	if uc.reminders != nil {
		if updated.Done {
			uc.reminders.Cancel(updated.ID)
		} else if input.Start != nil || input.Remind != nil {
			uc.reminders.Cancel(updated.ID)
			uc.reminders.Schedule(ctx, updated)
		}
	}

	uc.l.Infof(ctx, "Update: task %s updated by user=%s", updated.ID, sc.UserID)
	return updated, nil
}
