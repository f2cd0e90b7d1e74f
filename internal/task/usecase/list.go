package usecase

import (
	"context"

	"ai-scheduler/internal/model"
	"ai-scheduler/internal/task"
	"ai-scheduler/internal/task/repository"
)

// List returns stored tasks ordered by start, soonest first. Window-less
// calls are bounded to the configured upcoming window when one is set.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	if input.From == nil && input.To == nil && uc.upcomingWindow > 0 {
		from := uc.now()
		to := from.Add(uc.upcomingWindow)
		input.From = &from
		input.To = &to
	}

	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		From:        input.From,
		To:          input.To,
		IncludeDone: input.IncludeDone,
		Limit:       input.Limit,
		Offset:      input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "List: ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks: tasks,
		Count: len(tasks),
	}, nil
}
