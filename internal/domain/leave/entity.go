package leave

import (
	"time"

	"github.com/nexus-os/office-backend/internal/pkg/clock"
)

type LeaveType string

const (
	TypeSick     LeaveType = "SICK"
	TypeVacation LeaveType = "VACATION"
	TypePersonal LeaveType = "PERSONAL"
)

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "PENDING"
	StatusApproved LeaveStatus = "APPROVED"
	StatusRejected LeaveStatus = "REJECTED"
)

// IsDecision reports whether s is a status an admin may move a request to.
func (s LeaveStatus) IsDecision() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest covers StartDate..EndDate inclusive. UserName is a snapshot
// taken at creation.
type LeaveRequest struct {
	ID        string      `json:"id"`
	UserID    string      `json:"user_id"`
	UserName  string      `json:"user_name"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Reason    string      `json:"reason"`
	Type      LeaveType   `json:"type"`
	Status    LeaveStatus `json:"status"`
	CreatedAt time.Time   `json:"created_at"`
}

// IsActiveOn reports whether the request is approved and covers day
// (YYYY-MM-DD).
func (r LeaveRequest) IsActiveOn(day string) bool {
	return r.Status == StatusApproved && r.StartDate <= day && day <= r.EndDate
}

// IsActiveAt is IsActiveOn for the calendar day of t.
func (r LeaveRequest) IsActiveAt(t time.Time) bool {
	return r.IsActiveOn(t.Format(clock.DateLayout))
}
