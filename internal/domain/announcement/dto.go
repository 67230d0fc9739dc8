package announcement

import "github.com/nexus-os/office-backend/internal/pkg/validator"

type CreateAnnouncementRequest struct {
	AuthorID      string `json:"-"`
	Title         string `json:"title" validate:"notblank,max=255"`
	Content       string `json:"content" validate:"notblank"`
	IsAIGenerated bool   `json:"is_ai_generated"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	return validator.Struct(r)
}

// DraftRequest asks the assistant for announcement text
type DraftRequest struct {
	Topic string `json:"topic" validate:"notblank,max=500"`
	Tone  string `json:"tone" validate:"omitempty,max=50"`
}

func (r *DraftRequest) Validate() error {
	return validator.Struct(r)
}

type DraftResponse struct {
	Content string `json:"content"`
}

type ListAnnouncementsFilter struct {
	// Limit <= 0 returns everything
	Limit int
}
