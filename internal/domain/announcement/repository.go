package announcement

import "context"

type AnnouncementRepository interface {
	// List returns every announcement, newest first
	List(ctx context.Context) ([]Announcement, error)

	// Save replaces the whole list
	Save(ctx context.Context, announcements []Announcement) error
}
