package task

import (
	"context"

	"ai-scheduler/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Schedule parses a natural language utterance and stores the resulting task.
	Schedule(ctx context.Context, sc model.Scope, input ScheduleInput) (ScheduleOutput, error)

	// List returns stored tasks, optionally restricted to an upcoming window.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Detail returns a single task by ID.
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Update applies a partial update to a task by ID.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Complete marks the best keyword match as done.
	Complete(ctx context.Context, sc model.Scope, keyword string) (model.Task, error)

	// Delete removes the best keyword match.
	Delete(ctx context.Context, sc model.Scope, keyword string) (model.Task, error)
}
