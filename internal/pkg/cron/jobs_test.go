package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingSeeder struct {
	calls int
	err   error
}

func (s *countingSeeder) SeedTodayAttendance(context.Context) (int, error) {
	s.calls++
	return 0, s.err
}

func TestRegisterAttendanceJobs(t *testing.T) {
	s := NewScheduler(nil)
	seeder := &countingSeeder{}
	RegisterAttendanceJobs(s, seeder, time.Hour)

	s.RunOnce(context.Background())
	assert.Equal(t, 1, seeder.calls)

	// failures are logged, not fatal
	seeder.err = errors.New("store unavailable")
	s.RunOnce(context.Background())
	assert.Equal(t, 2, seeder.calls)
}
