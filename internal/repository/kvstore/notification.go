package kvstore

import (
	"context"

	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type notificationRepository struct {
	store *store.Store
}

func NewNotificationRepository(s *store.Store) notification.Repository {
	return &notificationRepository{store: s}
}

func (r *notificationRepository) List(ctx context.Context) ([]notification.Notification, error) {
	return store.Read(ctx, r.store, KeyNotifications, []notification.Notification{})
}

func (r *notificationRepository) Save(ctx context.Context, notifications []notification.Notification) error {
	return r.store.Write(ctx, KeyNotifications, notifications)
}
