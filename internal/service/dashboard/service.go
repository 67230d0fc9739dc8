package dashboard

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/domain/dashboard"
	"github.com/nexus-os/office-backend/internal/domain/leave"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
)

type DashboardServiceImpl struct {
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	clock          clock.Clock
}

func NewDashboardService(userRepo user.UserRepository, attendanceRepo attendance.AttendanceRepository, leaveRepo leave.LeaveRequestRepository, c clock.Clock) dashboard.DashboardService {
	return &DashboardServiceImpl{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		clock:          c,
	}
}

// TodayStats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) TodayStats(ctx context.Context) (dashboard.TodayStats, error) {
	today := clock.Today(s.clock)

	var (
		users    []user.User
		records  []attendance.Record
		requests []leave.LeaveRequest
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		users, err = s.userRepo.List(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByDate(gCtx, today)
		return err
	})

	g.Go(func() error {
		var err error
		requests, err = s.leaveRepo.List(gCtx)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.TodayStats{}, fmt.Errorf("failed to load dashboard data: %w", err)
	}

	stats := dashboard.TodayStats{Date: today}
	for _, u := range users {
		if u.IsEmployee() {
			stats.TotalEmployees++
		}
	}

	// every record of the day counts as present, late and remote included
	stats.Present = len(records)
	for _, r := range records {
		if r.Status == attendance.StatusLate {
			stats.Late++
		}
		if r.Status == attendance.StatusWorkFromHome || r.IsRemote {
			stats.Remote++
		}
	}

	for _, r := range requests {
		if r.IsActiveOn(today) {
			stats.OnLeave++
		}
	}

	stats.Absent = max(0, stats.TotalEmployees-stats.Present-stats.OnLeave)
	return stats, nil
}
