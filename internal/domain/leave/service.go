package leave

import (
	"context"
)

type LeaveService interface {
	// CreateLeaveRequest files a PENDING request and alerts admins
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequest, error)

	// UpdateLeaveStatus approves or rejects a pending request and tells the
	// requester. Unknown ids are a no-op.
	UpdateLeaveStatus(ctx context.Context, req UpdateLeaveStatusRequest) error

	ListLeaveRequests(ctx context.Context) ([]LeaveRequest, error)
	ListMyLeaveRequests(ctx context.Context, userID string) ([]LeaveRequest, error)
}
