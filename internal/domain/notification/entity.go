package notification

import (
	"time"

	"github.com/nexus-os/office-backend/internal/domain/user"
)

// TargetRole selects the audience of a notification
type TargetRole string

const (
	TargetAdmin    TargetRole = "ADMIN"
	TargetEmployee TargetRole = "EMPLOYEE"
	TargetAll      TargetRole = "ALL"
)

// NotificationType represents the severity shown to the reader
type NotificationType string

const (
	TypeInfo    NotificationType = "INFO"
	TypeAlert   NotificationType = "ALERT"
	TypeSuccess NotificationType = "SUCCESS"
)

// Notification represents a notification entity. TargetUserID narrows the
// audience to one user.
type Notification struct {
	ID           string           `json:"id"`
	TargetRole   TargetRole       `json:"target_role"`
	TargetUserID *string          `json:"target_user_id,omitempty"`
	Message      string           `json:"message"`
	Read         bool             `json:"read"`
	CreatedAt    time.Time        `json:"created_at"`
	Type         NotificationType `json:"type"`
}

func (n Notification) matchesRole(role user.Role) bool {
	switch n.TargetRole {
	case TargetAll:
		return true
	case TargetAdmin:
		return role == user.RoleAdmin
	case TargetEmployee:
		return role == user.RoleEmployee
	}
	return false
}

// VisibleTo decides whether n is listed for the user. A notification aimed
// at someone else is never visible, whatever its role.
func (n Notification) VisibleTo(userID string, role user.Role) bool {
	if n.TargetUserID != nil && *n.TargetUserID != userID {
		return false
	}
	return n.matchesRole(role)
}

// AppliesTo decides whether "mark all read" flips n for the user.
func (n Notification) AppliesTo(userID string, role user.Role) bool {
	if n.TargetUserID != nil && *n.TargetUserID == userID {
		return true
	}
	return n.matchesRole(role)
}
