package models

import (
	"time"

	"github.com/google/uuid"
)

// Like marks that a user currently likes a content item. Toggling removes the
// row again, so at most one row exists per (content, user).
type Like struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_content_user" json:"content_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_likes_content_user" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Comment is one user comment on a content item. Max length is validated at
// the request boundary.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ContentID uuid.UUID `gorm:"type:uuid;index;not null" json:"content_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text      string    `gorm:"size:500;not null" json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
