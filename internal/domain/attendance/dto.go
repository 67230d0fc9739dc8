package attendance

import "github.com/nexus-os/office-backend/internal/domain/user"

type CheckInRequest struct {
	UserID   string `json:"-"`
	IsRemote bool   `json:"is_remote"`
}

type AttendanceFilter struct {
	UserID *string
	Date   *string
}

// AttendanceWithUser is a record joined with its user. User is nil when the
// id no longer resolves.
type AttendanceWithUser struct {
	Record
	User *user.UserResponse `json:"user"`
}
