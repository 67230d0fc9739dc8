// Package seed fills today's attendance with plausible rows so that a fresh
// office does not open on an empty dashboard.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

// Rand is the random source. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

type Seeder struct {
	tx             store.Mutator
	attendanceRepo attendance.AttendanceRepository
	userRepo       user.UserRepository
	clock          clock.Clock
	rand           Rand
	excludeUserID  string
}

func NewSeeder(tx store.Mutator, attendanceRepo attendance.AttendanceRepository, userRepo user.UserRepository, c clock.Clock, r Rand, excludeUserID string) *Seeder {
	return &Seeder{
		tx:             tx,
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		clock:          c,
		rand:           r,
		excludeUserID:  excludeUserID,
	}
}

// SeedTodayAttendance adds one row per employee, minus the excluded user,
// unless some row for today already exists. It returns the number of rows
// added.
func (s *Seeder) SeedTodayAttendance(ctx context.Context) (int, error) {
	added := 0
	err := s.tx.Mutate(ctx, func(ctx context.Context) error {
		now := s.clock.Now()
		today := now.Format(clock.DateLayout)

		all, err := s.attendanceRepo.List(ctx)
		if err != nil {
			return err
		}
		for _, r := range all {
			if r.Date == today {
				return nil
			}
		}

		users, err := s.userRepo.List(ctx)
		if err != nil {
			return err
		}

		for _, u := range users {
			if !u.IsEmployee() || u.ID == s.excludeUserID {
				continue
			}
			if record, ok := s.synthesize(u.ID, now); ok {
				all = append(all, record)
				added++
			}
		}
		return s.attendanceRepo.Save(ctx, all)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed attendance: %w", err)
	}

	if added > 0 {
		slog.Info("seeded attendance for today", "records", added)
	}
	return added, nil
}

// synthesize draws, in order: presence (85%), remote (30%), hour slot 8 or
// 9, minute 0-59.
func (s *Seeder) synthesize(userID string, now time.Time) (attendance.Record, bool) {
	if s.rand.Float64() <= 0.15 {
		return attendance.Record{}, false
	}
	isRemote := s.rand.Float64() > 0.7

	hour := 8
	if s.rand.Float64() > 0.5 {
		hour = 9
	}
	minute := int(math.Floor(s.rand.Float64() * 60))
	checkIn := clock.At(now, hour, minute)

	status := attendance.StatusPresent
	switch {
	case isRemote:
		status = attendance.StatusWorkFromHome
	case hour > attendance.LateCutoffHour || (hour == attendance.LateCutoffHour && minute > 0):
		status = attendance.StatusLate
	}

	return attendance.Record{
		ID:          uuid.NewString(),
		UserID:      userID,
		Date:        now.Format(clock.DateLayout),
		CheckInTime: &checkIn,
		Status:      status,
		IsRemote:    isRemote,
	}, true
}
