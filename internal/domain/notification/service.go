package notification

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/user"
)

// Service defines the notification service interface
type Service interface {
	// Push stores a new unread notification. Other services call it inside
	// their own store mutation.
	Push(ctx context.Context, req CreateNotificationRequest) (Notification, error)

	// List returns the notifications visible to the user, newest first
	List(ctx context.Context, userID string, role user.Role) (NotificationListResponse, error)

	// MarkRead is a no-op for unknown ids
	MarkRead(ctx context.Context, id string) error

	MarkAllRead(ctx context.Context, userID string, role user.Role) error
}
