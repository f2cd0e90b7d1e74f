package repository

import (
	"context"
	"errors"

	"ai-scheduler/internal/model"
)

// ErrTaskNotFound is returned when no task matches the given ID.
var ErrTaskNotFound = errors.New("task not found")

// TaskRepository is the interface for task persistence.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error

	// FindByKeyword returns not-done tasks whose title contains the keyword,
	// soonest start first.
	FindByKeyword(ctx context.Context, keyword string) ([]model.Task, error)
}
