package announcement

import "time"

type Announcement struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AuthorID      string    `json:"author_id"`
	CreatedAt     time.Time `json:"created_at"`
	IsAIGenerated bool      `json:"is_ai_generated,omitempty"`
}
