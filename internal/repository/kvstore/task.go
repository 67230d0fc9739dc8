package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/task"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type taskRepositoryImpl struct {
	store *store.Store
}

func NewTaskRepository(s *store.Store) task.TaskRepository {
	return &taskRepositoryImpl{store: s}
}

func (r *taskRepositoryImpl) ListAll(ctx context.Context) ([]task.Task, error) {
	return store.Read(ctx, r.store, KeyTasks, fixtures.DefaultTasks())
}

func (r *taskRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]task.Task, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := []task.Task{}
	for _, t := range all {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *taskRepositoryImpl) Save(ctx context.Context, tasks []task.Task) error {
	return r.store.Write(ctx, KeyTasks, tasks)
}
