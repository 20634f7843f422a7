package services

import (
	"context"

	"tasklist/internal/domain"
)

// TaskService defines the application operations on tasks. Every operation
// returns either a value or a typed error; expected failures (invalid title,
// missing task) surface as errors.AppError kinds, never as panics.
type TaskService interface {
	// CreateTask validates the title, constructs a task owned by ownerTag
	// and persists it with exactly one storage call.
	CreateTask(ctx context.Context, title, ownerTag string) (*domain.Task, error)

	// FetchTasks returns the (possibly empty) list of tasks owned by
	// ownerTag matching the status filter.
	FetchTasks(ctx context.Context, status domain.Status, ownerTag string) ([]*domain.Task, error)

	// ToggleTask flips a task between pending and completed and persists
	// the change. A task not owned by ownerTag is reported as not found.
	ToggleTask(ctx context.Context, id, ownerTag string) (*domain.Task, error)

	// UpdateTaskTitle replaces a task's title after validation. A task not
	// owned by ownerTag is reported as not found.
	UpdateTaskTitle(ctx context.Context, id, ownerTag, title string) (*domain.Task, error)

	// DeleteTask removes a task. A task not owned by ownerTag is reported
	// as not found.
	DeleteTask(ctx context.Context, id, ownerTag string) error
}
