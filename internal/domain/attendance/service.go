package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// CheckIn records today's check-in. A second call on the same day
	// returns the existing record unchanged.
	CheckIn(ctx context.Context, req CheckInRequest) (Record, error)

	// CheckOut stamps today's record and demotes early leavers to HALF_DAY
	CheckOut(ctx context.Context, userID string) (Record, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Record, error)

	// Today returns today's records joined with their users
	Today(ctx context.Context) ([]AttendanceWithUser, error)
}
