package notification

import (
	"context"
)

// Repository defines the notification repository interface
type Repository interface {
	List(ctx context.Context) ([]Notification, error)

	// Save replaces the whole list
	Save(ctx context.Context, notifications []Notification) error
}
