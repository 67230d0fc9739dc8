package task

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/task"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/pkg/validator"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

func newService() (task.TaskService, *store.Store) {
	s := store.New(kv.NewMemory())
	return NewTaskService(s, kvstore.NewTaskRepository(s), latency.Simulator{}), s
}

func TestListByUser_Defaults(t *testing.T) {
	svc, _ := newService()

	mine, err := svc.ListByUser(context.Background(), "u2")
	require.NoError(t, err)
	assert.Len(t, mine, 3)

	none, err := svc.ListByUser(context.Background(), "u3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreate_PrependsWithDefaultStatus(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.Create(ctx, task.CreateTaskRequest{UserID: "u2", Title: "Write tests", Priority: task.PriorityMedium})
	require.NoError(t, err)
	assert.Equal(t, task.StatusTodo, created.Status)

	mine, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, mine, 4)
	assert.Equal(t, created.ID, mine[0].ID)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), task.CreateTaskRequest{UserID: "u2", Title: "x", Priority: "URGENT"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "priority", verrs[0].Field)
}

func TestUpdateStatus(t *testing.T) {
	ctx := context.Background()
	svc, s := newService()

	require.NoError(t, svc.UpdateStatus(ctx, task.UpdateTaskStatusRequest{ID: "t1", Status: task.StatusDone}))
	mine, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, task.StatusDone, mine[0].Status)

	calls := 0
	s.Subscribe(func() { calls++ })
	require.NoError(t, svc.UpdateStatus(ctx, task.UpdateTaskStatusRequest{ID: "missing", Status: task.StatusDone}))
	assert.Equal(t, 0, calls)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	svc, s := newService()

	require.NoError(t, svc.Delete(ctx, "t2"))
	mine, err := svc.ListByUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "t1", mine[0].ID)
	assert.Equal(t, "t3", mine[1].ID)

	calls := 0
	s.Subscribe(func() { calls++ })
	require.NoError(t, svc.Delete(ctx, "t2"))
	assert.Equal(t, 0, calls)
}
