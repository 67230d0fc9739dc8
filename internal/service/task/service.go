package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/task"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type TaskServiceImpl struct {
	tx store.Mutator
	task.TaskRepository
	latency latency.Simulator
}

func NewTaskService(tx store.Mutator, taskRepository task.TaskRepository, lat latency.Simulator) task.TaskService {
	return &TaskServiceImpl{
		tx:             tx,
		TaskRepository: taskRepository,
		latency:        lat,
	}
}

// ListByUser implements task.TaskService.
func (t *TaskServiceImpl) ListByUser(ctx context.Context, userID string) ([]task.Task, error) {
	tasks, err := t.TaskRepository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// Create implements task.TaskService.
func (t *TaskServiceImpl) Create(ctx context.Context, req task.CreateTaskRequest) (task.Task, error) {
	if err := req.Validate(); err != nil {
		return task.Task{}, err
	}
	if err := t.latency.Wait(ctx, latency.CreateTask); err != nil {
		return task.Task{}, err
	}

	status := req.Status
	if status == "" {
		status = task.StatusTodo
	}
	newTask := task.Task{
		ID:          uuid.NewString(),
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
	}

	err := t.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := t.TaskRepository.ListAll(ctx)
		if err != nil {
			return err
		}
		return t.TaskRepository.Save(ctx, append([]task.Task{newTask}, all...))
	})
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}
	return newTask, nil
}

// UpdateStatus implements task.TaskService.
func (t *TaskServiceImpl) UpdateStatus(ctx context.Context, req task.UpdateTaskStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return t.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := t.TaskRepository.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		for i := range all {
			if all[i].ID == req.ID {
				all[i].Status = req.Status
				return t.TaskRepository.Save(ctx, all)
			}
		}
		return nil
	})
}

// Delete implements task.TaskService.
func (t *TaskServiceImpl) Delete(ctx context.Context, id string) error {
	return t.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := t.TaskRepository.ListAll(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tasks: %w", err)
		}
		kept := make([]task.Task, 0, len(all))
		for _, existing := range all {
			if existing.ID != id {
				kept = append(kept, existing)
			}
		}
		if len(kept) == len(all) {
			return nil
		}
		return t.TaskRepository.Save(ctx, kept)
	})
}
