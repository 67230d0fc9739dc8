package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/domain/leave"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

func TestTodayStats(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory())
	c := clock.NewFixed(time.Date(2024, 12, 2, 11, 0, 0, 0, time.UTC))

	attendanceRepo := kvstore.NewAttendanceRepository(s)
	leaveRepo := kvstore.NewLeaveRequestRepository(s)
	require.NoError(t, attendanceRepo.Save(ctx, []attendance.Record{
		{ID: "1", UserID: "u3", Date: "2024-12-02", Status: attendance.StatusPresent},
		{ID: "2", UserID: "u4", Date: "2024-12-02", Status: attendance.StatusLate},
		{ID: "3", UserID: "u5", Date: "2024-12-02", Status: attendance.StatusWorkFromHome, IsRemote: true},
		{ID: "4", UserID: "u6", Date: "2024-12-02", Status: attendance.StatusHalfDay, IsRemote: true},
		{ID: "5", UserID: "u7", Date: "2024-12-01", Status: attendance.StatusLate},
	}))
	require.NoError(t, leaveRepo.Save(ctx, []leave.LeaveRequest{
		{ID: "l1", UserID: "u2", StartDate: "2024-12-01", EndDate: "2024-12-02", Status: leave.StatusApproved},
		{ID: "l2", UserID: "u7", StartDate: "2024-12-02", EndDate: "2024-12-02", Status: leave.StatusPending},
		{ID: "l3", UserID: "u7", StartDate: "2024-12-03", EndDate: "2024-12-04", Status: leave.StatusApproved},
	}))

	svc := NewDashboardService(kvstore.NewUserRepository(s), attendanceRepo, leaveRepo, c)
	stats, err := svc.TodayStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-12-02", stats.Date)
	assert.Equal(t, 6, stats.TotalEmployees)
	assert.Equal(t, 4, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 2, stats.Remote)
	assert.Equal(t, 1, stats.OnLeave)
	assert.Equal(t, 1, stats.Absent)
}

func TestTodayStats_AbsentNeverNegative(t *testing.T) {
	ctx := context.Background()
	s := store.New(kv.NewMemory())
	c := clock.NewFixed(time.Date(2024, 12, 2, 11, 0, 0, 0, time.UTC))

	// more records than employees, e.g. the admin checked in too
	records := []attendance.Record{}
	for _, id := range []string{"u1", "u2", "u3", "u4", "u5", "u6", "u7"} {
		records = append(records, attendance.Record{ID: id, UserID: id, Date: "2024-12-02", Status: attendance.StatusPresent})
	}
	attendanceRepo := kvstore.NewAttendanceRepository(s)
	require.NoError(t, attendanceRepo.Save(ctx, records))

	svc := NewDashboardService(kvstore.NewUserRepository(s), attendanceRepo, kvstore.NewLeaveRequestRepository(s), c)
	stats, err := svc.TodayStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, stats.Present)
	assert.Equal(t, 0, stats.Absent)
}
