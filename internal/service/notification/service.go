package notification

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/domain/user"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/sse"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type service struct {
	repo    notification.Repository
	users   user.UserRepository
	hub     *sse.Hub
	tx      store.Mutator
	clock   clock.Clock
	latency latency.Simulator
}

// NewNotificationService creates the notification service. hub may be nil
// when nothing streams events.
func NewNotificationService(tx store.Mutator, repo notification.Repository, users user.UserRepository, hub *sse.Hub, c clock.Clock, lat latency.Simulator) notification.Service {
	return &service{
		repo:    repo,
		users:   users,
		hub:     hub,
		tx:      tx,
		clock:   c,
		latency: lat,
	}
}

// Push prepends an unread notification and streams it to its audience
func (s *service) Push(ctx context.Context, req notification.CreateNotificationRequest) (notification.Notification, error) {
	if err := validate(req); err != nil {
		return notification.Notification{}, err
	}

	n := notification.Notification{
		ID:           uuid.NewString(),
		TargetRole:   req.TargetRole,
		TargetUserID: req.TargetUserID,
		Message:      req.Message,
		Read:         false,
		CreatedAt:    s.clock.Now(),
		Type:         req.Type,
	}

	err := s.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		return s.repo.Save(ctx, append([]notification.Notification{n}, all...))
	})
	if err != nil {
		return notification.Notification{}, fmt.Errorf("push notification: %w", err)
	}

	s.stream(ctx, n)
	return n, nil
}

// stream sends n to the connected users it is visible to
func (s *service) stream(ctx context.Context, n notification.Notification) {
	if s.hub == nil {
		return
	}

	event := sse.Event{Event: sse.EventNotification, Data: n}
	if n.TargetUserID != nil {
		s.hub.Publish(*n.TargetUserID, event)
		return
	}

	users, err := s.users.List(ctx)
	if err != nil {
		log.Printf("[NotificationService] Failed to resolve audience for %s: %v", n.ID, err)
		return
	}
	recipients := make([]string, 0, len(users))
	for _, u := range users {
		if n.VisibleTo(u.ID, u.Role) {
			recipients = append(recipients, u.ID)
		}
	}
	s.hub.PublishToMany(recipients, event)
}

func (s *service) List(ctx context.Context, userID string, role user.Role) (notification.NotificationListResponse, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return notification.NotificationListResponse{}, fmt.Errorf("list notifications: %w", err)
	}

	visible := make([]notification.Notification, 0, len(all))
	unread := 0
	for _, n := range all {
		if !n.VisibleTo(userID, role) {
			continue
		}
		visible = append(visible, n)
		if !n.Read {
			unread++
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})

	return notification.NotificationListResponse{
		Notifications: visible,
		Total:         len(visible),
		UnreadCount:   unread,
	}, nil
}

func (s *service) MarkRead(ctx context.Context, id string) error {
	if err := s.latency.Wait(ctx, latency.MarkRead); err != nil {
		return err
	}

	return s.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		for i := range all {
			if all[i].ID == id {
				all[i].Read = true
				return s.repo.Save(ctx, all)
			}
		}
		return nil
	})
}

// MarkAllRead flips every notification that applies to the user. The list is
// written even when nothing changed.
func (s *service) MarkAllRead(ctx context.Context, userID string, role user.Role) error {
	if err := s.latency.Wait(ctx, latency.MarkAllRead); err != nil {
		return err
	}

	return s.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := s.repo.List(ctx)
		if err != nil {
			return err
		}
		for i := range all {
			if all[i].AppliesTo(userID, role) {
				all[i].Read = true
			}
		}
		return s.repo.Save(ctx, all)
	})
}

func validate(req notification.CreateNotificationRequest) error {
	switch req.TargetRole {
	case notification.TargetAdmin, notification.TargetEmployee, notification.TargetAll:
	default:
		return notification.ErrInvalidTargetRole
	}
	switch req.Type {
	case notification.TypeInfo, notification.TypeAlert, notification.TypeSuccess:
	default:
		return notification.ErrInvalidNotificationType
	}
	return nil
}
