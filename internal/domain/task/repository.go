package task

import "context"

type TaskRepository interface {
	ListAll(ctx context.Context) ([]Task, error)
	ListByUser(ctx context.Context, userID string) ([]Task, error)

	// Save replaces the whole list
	Save(ctx context.Context, tasks []Task) error
}

// TaskService mutations on unknown ids are silent no-ops.
type TaskService interface {
	ListByUser(ctx context.Context, userID string) ([]Task, error)
	Create(ctx context.Context, req CreateTaskRequest) (Task, error)
	UpdateStatus(ctx context.Context, req UpdateTaskStatusRequest) error
	Delete(ctx context.Context, id string) error
}
