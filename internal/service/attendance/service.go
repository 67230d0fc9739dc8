package attendance

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type AttendanceServiceImpl struct {
	tx store.Mutator
	attendance.AttendanceRepository
	user.UserRepository
	clock   clock.Clock
	latency latency.Simulator
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.Record, error) {
	if err := a.latency.Wait(ctx, latency.CheckIn); err != nil {
		return attendance.Record{}, err
	}

	var record attendance.Record
	err := a.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := a.AttendanceRepository.List(ctx)
		if err != nil {
			return err
		}

		now := a.clock.Now()
		today := now.Format(clock.DateLayout)
		for _, r := range all {
			if r.UserID == req.UserID && r.Date == today {
				record = r
				return nil
			}
		}

		record = attendance.Record{
			ID:          uuid.NewString(),
			UserID:      req.UserID,
			Date:        today,
			CheckInTime: &now,
			Status:      attendance.CheckInStatus(now, req.IsRemote),
			IsRemote:    req.IsRemote,
		}
		return a.AttendanceRepository.Save(ctx, append(all, record))
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("check in: %w", err)
	}

	slog.Info("checked in", "user_id", record.UserID, "date", record.Date, "status", record.Status)
	return record, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID string) (attendance.Record, error) {
	if err := a.latency.Wait(ctx, latency.CheckOut); err != nil {
		return attendance.Record{}, err
	}

	var record attendance.Record
	err := a.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := a.AttendanceRepository.List(ctx)
		if err != nil {
			return err
		}

		now := a.clock.Now()
		today := now.Format(clock.DateLayout)
		idx := -1
		for i, r := range all {
			if r.UserID == userID && r.Date == today {
				idx = i
				break
			}
		}
		if idx == -1 {
			return attendance.ErrNotCheckedIn
		}
		if all[idx].CheckedOut() {
			return attendance.ErrAlreadyCheckedOut
		}

		all[idx].CheckOutTime = &now
		all[idx].Status = attendance.CheckOutStatus(all[idx].Status, now)
		record = all[idx]
		return a.AttendanceRepository.Save(ctx, all)
	})
	if err != nil {
		return attendance.Record{}, fmt.Errorf("check out: %w", err)
	}

	slog.Info("checked out", "user_id", record.UserID, "date", record.Date, "status", record.Status)
	return record, nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Record, error) {
	var (
		records []attendance.Record
		err     error
	)
	switch {
	case filter.UserID != nil:
		records, err = a.AttendanceRepository.ListByUser(ctx, *filter.UserID)
	case filter.Date != nil:
		records, err = a.AttendanceRepository.ListByDate(ctx, *filter.Date)
	default:
		records, err = a.AttendanceRepository.List(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}

	if filter.UserID != nil && filter.Date != nil {
		filtered := records[:0]
		for _, r := range records {
			if r.Date == *filter.Date {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}
	return records, nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) ([]attendance.AttendanceWithUser, error) {
	records, err := a.AttendanceRepository.ListByDate(ctx, clock.Today(a.clock))
	if err != nil {
		return nil, fmt.Errorf("list today's attendance: %w", err)
	}
	users, err := a.UserRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	lookup := user.NewLookup(users)
	out := make([]attendance.AttendanceWithUser, 0, len(records))
	for _, r := range records {
		joined := attendance.AttendanceWithUser{Record: r}
		if u, ok := lookup[r.UserID]; ok {
			resp := user.NewUserResponse(u)
			joined.User = &resp
		}
		out = append(out, joined)
	}
	return out, nil
}

func NewAttendanceService(tx store.Mutator, attendanceRepository attendance.AttendanceRepository, userRepository user.UserRepository, c clock.Clock, lat latency.Simulator) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		tx:                   tx,
		AttendanceRepository: attendanceRepository,
		UserRepository:       userRepository,
		clock:                c,
		latency:              lat,
	}
}
