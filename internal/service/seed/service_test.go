package seed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/kv"
	"github.com/nexus-os/office-backend/internal/pkg/store"
	"github.com/nexus-os/office-backend/internal/repository/kvstore"
)

// scripted replays draws and then repeats the last one
type scripted struct {
	draws []float64
	next  int
}

func (s *scripted) Float64() float64 {
	if s.next >= len(s.draws) {
		return s.draws[len(s.draws)-1]
	}
	v := s.draws[s.next]
	s.next++
	return v
}

func newSeeder(r Rand) (*Seeder, attendance.AttendanceRepository) {
	s := store.New(kv.NewMemory())
	repo := kvstore.NewAttendanceRepository(s)
	c := clock.NewFixed(time.Date(2024, 12, 2, 7, 30, 0, 0, time.UTC))
	return NewSeeder(s, repo, kvstore.NewUserRepository(s), c, r, "u2"), repo
}

func TestSeedTodayAttendance_Draws(t *testing.T) {
	ctx := context.Background()
	r := &scripted{draws: []float64{
		// u3: present, on site, 08:10
		0.9, 0.1, 0.2, 10.5 / 60,
		// u4: absent
		0.1,
		// u5: present, remote, 09:30
		0.9, 0.8, 0.9, 0.5,
		// u6: present, on site, 09:00
		0.9, 0.1, 0.9, 0,
		// u7: present, on site, 09:01
		0.9, 0.1, 0.9, 1.5 / 60,
	}}
	seeder, repo := newSeeder(r)

	added, err := seeder.SeedTodayAttendance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, added)

	records, err := repo.ListByDate(ctx, "2024-12-02")
	require.NoError(t, err)
	require.Len(t, records, 4)

	byUser := map[string]attendance.Record{}
	for _, rec := range records {
		byUser[rec.UserID] = rec
	}
	assert.NotContains(t, byUser, "u1")
	assert.NotContains(t, byUser, "u2")
	assert.NotContains(t, byUser, "u4")

	assert.Equal(t, attendance.StatusPresent, byUser["u3"].Status)
	assert.Equal(t, 8, byUser["u3"].CheckInTime.Hour())
	assert.Equal(t, 10, byUser["u3"].CheckInTime.Minute())

	assert.Equal(t, attendance.StatusWorkFromHome, byUser["u5"].Status)
	assert.True(t, byUser["u5"].IsRemote)

	// exactly nine is not late for seeded rows
	assert.Equal(t, attendance.StatusPresent, byUser["u6"].Status)
	assert.Equal(t, attendance.StatusLate, byUser["u7"].Status)
	assert.Nil(t, byUser["u7"].CheckOutTime)
}

func TestSeedTodayAttendance_SkipsWhenTodayExists(t *testing.T) {
	ctx := context.Background()
	seeder, repo := newSeeder(&scripted{draws: []float64{0.9}})

	require.NoError(t, repo.Save(ctx, []attendance.Record{{ID: "x", UserID: "u2", Date: "2024-12-02", Status: attendance.StatusPresent}}))

	added, err := seeder.SeedTodayAttendance(ctx)
	require.NoError(t, err)
	assert.Zero(t, added)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSeedTodayAttendance_OnlyOnce(t *testing.T) {
	ctx := context.Background()
	seeder, repo := newSeeder(&scripted{draws: []float64{0.9}})

	first, err := seeder.SeedTodayAttendance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, first)

	second, err := seeder.SeedTodayAttendance(ctx)
	require.NoError(t, err)
	assert.Zero(t, second)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
