package leave

import (
	"context"
)

type LeaveRequestRepository interface {
	// List returns every request, newest created first
	List(ctx context.Context) ([]LeaveRequest, error)

	// ListByUser keeps stored order
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)

	// Save replaces the whole list
	Save(ctx context.Context, requests []LeaveRequest) error
}
