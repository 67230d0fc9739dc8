package kvstore

import (
	"context"
	"sort"

	"github.com/nexus-os/office-backend/internal/domain/announcement"
	"github.com/nexus-os/office-backend/internal/fixtures"
	"github.com/nexus-os/office-backend/internal/pkg/clock"
	"github.com/nexus-os/office-backend/internal/pkg/store"
)

type announcementRepositoryImpl struct {
	store *store.Store
	clock clock.Clock
}

func NewAnnouncementRepository(s *store.Store, clk clock.Clock) announcement.AnnouncementRepository {
	return &announcementRepositoryImpl{store: s, clock: clk}
}

func (r *announcementRepositoryImpl) List(ctx context.Context) ([]announcement.Announcement, error) {
	all, err := store.Read(ctx, r.store, KeyAnnouncements, fixtures.DefaultAnnouncements(r.clock.Now()))
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

func (r *announcementRepositoryImpl) Save(ctx context.Context, announcements []announcement.Announcement) error {
	return r.store.Write(ctx, KeyAnnouncements, announcements)
}
