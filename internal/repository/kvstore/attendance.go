package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/attendance"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type attendanceRepository struct {
	store *store.Store
}

func NewAttendanceRepository(s *store.Store) attendance.AttendanceRepository {
	return &attendanceRepository{store: s}
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	return store.Read(ctx, r.store, KeyAttendance, []attendance.Record{})
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	return r.filter(ctx, func(rec attendance.Record) bool { return rec.UserID == userID })
}

func (r *attendanceRepository) ListByDate(ctx context.Context, date string) ([]attendance.Record, error) {
	return r.filter(ctx, func(rec attendance.Record) bool { return rec.Date == date })
}

func (r *attendanceRepository) filter(ctx context.Context, keep func(attendance.Record) bool) ([]attendance.Record, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []attendance.Record{}
	for _, rec := range all {
		if keep(rec) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *attendanceRepository) Save(ctx context.Context, records []attendance.Record) error {
	return r.store.Write(ctx, KeyAttendance, records)
}
