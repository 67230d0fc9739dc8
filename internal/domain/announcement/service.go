package announcement

import "context"

// Assistant drafts announcement text. Implementations never fail; problems
// come back as readable text.
type Assistant interface {
	GenerateAnnouncement(ctx context.Context, topic, tone string) string
}

type AnnouncementService interface {
	List(ctx context.Context, filter ListAnnouncementsFilter) ([]Announcement, error)

	// Create stores the announcement and notifies everyone
	Create(ctx context.Context, req CreateAnnouncementRequest) (Announcement, error)

	Draft(ctx context.Context, req DraftRequest) DraftResponse
}
