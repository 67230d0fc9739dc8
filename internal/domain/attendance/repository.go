package attendance

import (
	"context"
)

// AttendanceRepository reads and replaces the stored attendance list.
type AttendanceRepository interface {
	List(ctx context.Context) ([]Record, error)
	ListByUser(ctx context.Context, userID string) ([]Record, error)
	ListByDate(ctx context.Context, date string) ([]Record, error)

	// Save replaces the whole list
	Save(ctx context.Context, records []Record) error
}
