package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/leave"
	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/pkg/validator"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
	notificationService "github.com/nexus-os/office-backend/internal/service/notification"
)

type fixture struct {
	svc           leave.LeaveService
	clock         *clock.Fixed
	notifications notification.Repository
}

func newFixture() fixture {
	s := store.New(kv.NewMemory())
	c := clock.NewFixed(time.Date(2024, 12, 2, 10, 0, 0, 0, time.UTC))
	notifRepo := kvstore.NewNotificationRepository(s)
	notif := notificationService.NewNotificationService(s, notifRepo, kvstore.NewUserRepository(s), nil, c, latency.Simulator{})
	return fixture{
		svc:           NewLeaveService(s, kvstore.NewLeaveRequestRepository(s), notif, c, latency.Simulator{}),
		clock:         c,
		notifications: notifRepo,
	}
}

func sickLeave(userID, name string) leave.CreateLeaveRequestRequest {
	return leave.CreateLeaveRequestRequest{
		UserID:    userID,
		UserName:  name,
		StartDate: "2024-12-05",
		EndDate:   "2024-12-06",
		Reason:    "Flu",
		Type:      leave.TypeSick,
	}
}

func TestCreateLeaveRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.svc.CreateLeaveRequest(ctx, sickLeave("u2", "John Doe"))
	require.NoError(t, err)
	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, "John Doe", created.UserName)
	assert.True(t, created.CreatedAt.Equal(f.clock.Now()))

	notes, err := f.notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, notification.TargetAdmin, notes[0].TargetRole)
	assert.Equal(t, notification.TypeAlert, notes[0].Type)
	assert.Equal(t, "John Doe requested SICK leave", notes[0].Message)
	assert.Nil(t, notes[0].TargetUserID)
}

func TestCreateLeaveRequest_Validation(t *testing.T) {
	f := newFixture()

	req := sickLeave("u2", "John Doe")
	req.EndDate = "2024-12-01"
	_, err := f.svc.CreateLeaveRequest(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "end_date", verrs[0].Field)

	req = sickLeave("u2", "John Doe")
	req.Type = "SABBATICAL"
	_, err = f.svc.CreateLeaveRequest(context.Background(), req)
	assert.ErrorAs(t, err, &verrs)

	all, err := f.svc.ListLeaveRequests(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestListLeaveRequests_Order(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.svc.CreateLeaveRequest(ctx, sickLeave("u2", "John Doe"))
	require.NoError(t, err)
	f.clock.Set(f.clock.Now().Add(time.Hour))
	second, err := f.svc.CreateLeaveRequest(ctx, sickLeave("u3", "Jane Smith"))
	require.NoError(t, err)

	all, err := f.svc.ListLeaveRequests(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, first.ID, all[1].ID)

	mine, err := f.svc.ListMyLeaveRequests(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)
}

func TestUpdateLeaveStatus(t *testing.T) {
	tests := []struct {
		status  leave.LeaveStatus
		message string
		kind    notification.NotificationType
	}{
		{leave.StatusApproved, "Your leave request was approved", notification.TypeSuccess},
		{leave.StatusRejected, "Your leave request was rejected", notification.TypeAlert},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ctx := context.Background()
			f := newFixture()
			created, err := f.svc.CreateLeaveRequest(ctx, sickLeave("u2", "John Doe"))
			require.NoError(t, err)

			require.NoError(t, f.svc.UpdateLeaveStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: tt.status}))

			mine, err := f.svc.ListMyLeaveRequests(ctx, "u2")
			require.NoError(t, err)
			assert.Equal(t, tt.status, mine[0].Status)

			notes, err := f.notifications.List(ctx)
			require.NoError(t, err)
			require.Len(t, notes, 2)
			assert.Equal(t, tt.message, notes[0].Message)
			assert.Equal(t, tt.kind, notes[0].Type)
			assert.Equal(t, notification.TargetEmployee, notes[0].TargetRole)
			require.NotNil(t, notes[0].TargetUserID)
			assert.Equal(t, "u2", *notes[0].TargetUserID)
		})
	}
}

func TestUpdateLeaveStatus_UnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	require.NoError(t, f.svc.UpdateLeaveStatus(ctx, leave.UpdateLeaveStatusRequest{ID: "missing", Status: leave.StatusApproved}))

	notes, err := f.notifications.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestUpdateLeaveStatus_Rejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	created, err := f.svc.CreateLeaveRequest(ctx, sickLeave("u2", "John Doe"))
	require.NoError(t, err)

	err = f.svc.UpdateLeaveStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: leave.StatusPending})
	assert.ErrorIs(t, err, leave.ErrInvalidStatus)

	require.NoError(t, f.svc.UpdateLeaveStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: leave.StatusApproved}))
	err = f.svc.UpdateLeaveStatus(ctx, leave.UpdateLeaveStatusRequest{ID: created.ID, Status: leave.StatusRejected})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)
}
