package cron

import (
	"context"
	"time"
)

// AttendanceSeeder fills today's attendance when it is still empty.
type AttendanceSeeder interface {
	SeedTodayAttendance(ctx context.Context) (int, error)
}

// RegisterAttendanceJobs keeps a long-running server from opening a new day
// with an empty board. Seeding is a no-op once the day has any record.
func RegisterAttendanceJobs(s *Scheduler, seeder AttendanceSeeder, interval time.Duration) {
	s.AddJob("seed_today_attendance", interval, func(ctx context.Context) error {
		_, err := seeder.SeedTodayAttendance(ctx)
		return err
	})
}
