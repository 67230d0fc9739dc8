package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

var officeDay = time.Date(2024, 12, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return officeDay.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newService(now time.Time) (attendance.AttendanceService, *clock.Fixed, *store.Store) {
	s := store.New(kv.NewMemory())
	c := clock.NewFixed(now)
	svc := NewAttendanceService(s, kvstore.NewAttendanceRepository(s), kvstore.NewUserRepository(s), c, latency.Simulator{})
	return svc, c, s
}

func TestCheckIn_Status(t *testing.T) {
	tests := []struct {
		name     string
		at       time.Time
		isRemote bool
		want     attendance.Status
	}{
		{"early", at(8, 45), false, attendance.StatusPresent},
		{"exactly nine", at(9, 0), false, attendance.StatusLate},
		{"after nine", at(9, 1), false, attendance.StatusLate},
		{"remote and late", at(10, 30), true, attendance.StatusWorkFromHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(tt.at)
			rec, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{UserID: "u3", IsRemote: tt.isRemote})
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Status)
			assert.Equal(t, "2024-12-02", rec.Date)
			assert.Equal(t, tt.isRemote, rec.IsRemote)
			require.NotNil(t, rec.CheckInTime)
			assert.True(t, rec.CheckInTime.Equal(tt.at))
			assert.Nil(t, rec.CheckOutTime)
		})
	}
}

func TestCheckIn_IsIdempotentPerDay(t *testing.T) {
	ctx := context.Background()
	svc, c, s := newService(at(8, 30))

	first, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u3"})
	require.NoError(t, err)

	calls := 0
	s.Subscribe(func() { calls++ })

	c.Set(at(10, 0))
	second, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u3", IsRemote: true})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, calls)

	all, err := svc.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)

	// a new day gets a new record
	c.Set(at(24+8, 0))
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u3"})
	require.NoError(t, err)
	all, err = svc.List(ctx, attendance.AttendanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestCheckOut(t *testing.T) {
	tests := []struct {
		name    string
		in      time.Time
		out     time.Time
		remote  bool
		want    attendance.Status
	}{
		{"full day keeps present", at(8, 30), at(17, 0), false, attendance.StatusPresent},
		{"exactly four keeps late", at(9, 30), at(16, 0), false, attendance.StatusLate},
		{"early leave is half day", at(8, 30), at(15, 59), false, attendance.StatusHalfDay},
		{"remote early leave is half day", at(8, 30), at(12, 0), true, attendance.StatusHalfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, c, _ := newService(tt.in)
			_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u4", IsRemote: tt.remote})
			require.NoError(t, err)

			c.Set(tt.out)
			rec, err := svc.CheckOut(ctx, "u4")
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Status)
			require.NotNil(t, rec.CheckOutTime)
			assert.True(t, rec.CheckOutTime.Equal(tt.out))
		})
	}
}

func TestCheckOut_WithoutCheckIn(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newService(at(8, 0))

	_, err := svc.CheckOut(ctx, "u5")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)

	// yesterday's record does not count
	_, err = svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u5"})
	require.NoError(t, err)
	c.Set(at(24+17, 0))
	_, err = svc.CheckOut(ctx, "u5")
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOut_Twice(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newService(at(8, 0))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u6"})
	require.NoError(t, err)

	c.Set(at(17, 0))
	_, err = svc.CheckOut(ctx, "u6")
	require.NoError(t, err)

	c.Set(at(18, 0))
	_, err = svc.CheckOut(ctx, "u6")
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestList_Filters(t *testing.T) {
	ctx := context.Background()
	svc, c, _ := newService(at(8, 0))
	for _, id := range []string{"u2", "u3"} {
		_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: id})
		require.NoError(t, err)
	}
	c.Set(at(24+8, 0))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u2"})
	require.NoError(t, err)

	userID := "u2"
	mine, err := svc.List(ctx, attendance.AttendanceFilter{UserID: &userID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	day := "2024-12-02"
	onDay, err := svc.List(ctx, attendance.AttendanceFilter{Date: &day})
	require.NoError(t, err)
	assert.Len(t, onDay, 2)

	both, err := svc.List(ctx, attendance.AttendanceFilter{UserID: &userID, Date: &day})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "u2", both[0].UserID)
}

func TestToday_JoinsUsers(t *testing.T) {
	ctx := context.Background()
	svc, _, s := newService(at(8, 0))
	_, err := svc.CheckIn(ctx, attendance.CheckInRequest{UserID: "u3"})
	require.NoError(t, err)

	// a record whose user was never in the directory
	repo := kvstore.NewAttendanceRepository(s)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	all = append(all, attendance.Record{ID: "ghost", UserID: "gone", Date: "2024-12-02", Status: attendance.StatusPresent})
	all = append(all, attendance.Record{ID: "old", UserID: "u3", Date: "2024-12-01", Status: attendance.StatusPresent})
	require.NoError(t, repo.Save(ctx, all))

	today, err := svc.Today(ctx)
	require.NoError(t, err)
	require.Len(t, today, 2)
	require.NotNil(t, today[0].User)
	assert.Equal(t, "Jane Smith", today[0].User.Name)
	assert.Nil(t, today[1].User)
}
