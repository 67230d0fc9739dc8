package announcement

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/nexus-os/office-backend/internal/domain/announcement"
	"github.com/nexus-os/office-backend/internal/domain/notification"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/latency"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

// DefaultTone is used when a draft request names none
const DefaultTone = "professional"

type AnnouncementServiceImpl struct {
	tx store.Mutator
	announcement.AnnouncementRepository
	notificationService notification.Service
	assistant           announcement.Assistant
	clock               clock.Clock
	latency             latency.Simulator
}

// List implements announcement.AnnouncementService.
func (a *AnnouncementServiceImpl) List(ctx context.Context, filter announcement.ListAnnouncementsFilter) ([]announcement.Announcement, error) {
	all, err := a.AnnouncementRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}
	if filter.Limit > 0 && len(all) > filter.Limit {
		all = all[:filter.Limit]
	}
	return all, nil
}

// Create implements announcement.AnnouncementService.
func (a *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.Announcement, error) {
	if err := req.Validate(); err != nil {
		return announcement.Announcement{}, err
	}
	if err := a.latency.Wait(ctx, latency.CreateAnnouncement); err != nil {
		return announcement.Announcement{}, err
	}

	newAnnouncement := announcement.Announcement{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Content:       req.Content,
		AuthorID:      req.AuthorID,
		CreatedAt:     a.clock.Now(),
		IsAIGenerated: req.IsAIGenerated,
	}

	err := a.tx.Mutate(ctx, func(ctx context.Context) error {
		all, err := a.AnnouncementRepository.List(ctx)
		if err != nil {
			return err
		}
		if err := a.AnnouncementRepository.Save(ctx, append([]announcement.Announcement{newAnnouncement}, all...)); err != nil {
			return err
		}

		_, err = a.notificationService.Push(ctx, notification.CreateNotificationRequest{
			TargetRole: notification.TargetAll,
			Message:    fmt.Sprintf("New Announcement: %s", req.Title),
			Type:       notification.TypeInfo,
		})
		return err
	})
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	slog.Info("announcement published", "id", newAnnouncement.ID, "author_id", newAnnouncement.AuthorID)
	return newAnnouncement, nil
}

// Draft implements announcement.AnnouncementService.
func (a *AnnouncementServiceImpl) Draft(ctx context.Context, req announcement.DraftRequest) announcement.DraftResponse {
	tone := strings.TrimSpace(req.Tone)
	if tone == "" {
		tone = DefaultTone
	}
	return announcement.DraftResponse{
		Content: a.assistant.GenerateAnnouncement(ctx, req.Topic, tone),
	}
}

func NewAnnouncementService(tx store.Mutator, announcementRepository announcement.AnnouncementRepository, notificationService notification.Service, assistant announcement.Assistant, c clock.Clock, lat latency.Simulator) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		tx:                     tx,
		AnnouncementRepository: announcementRepository,
		notificationService:    notificationService,
		assistant:              assistant,
		clock:                  c,
		latency:                lat,
	}
}
