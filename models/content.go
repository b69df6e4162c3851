package models

import (
	"time"

	"github.com/google/uuid"
)

// Content media types.
const (
	TypeImage   = "image"
	TypeVideo   = "video"
	TypeArticle = "article"
)

// Pricing tiers.
const (
	ContentFree    = "free"
	ContentPremium = "premium"
)

// Publication statuses.
const (
	ContentDraft     = "draft"
	ContentPublished = "published"
	ContentArchived  = "archived"
)

// Visibility tiers. VisibilityFollowers is declared in the data model but has
// no resolution rule; non-owners are denied (see AccessLogic).
const (
	VisibilityPublic    = "public"
	VisibilityPrivate   = "private"
	VisibilityFollowers = "followers"
)

// Categories accepted at upload time.
var Categories = []string{
	"photography", "art", "music", "dance", "writing",
	"education", "lifestyle", "technology", "other",
}

// Content represents one published media item.
type Content struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatorID   uuid.UUID `gorm:"type:uuid;index;not null" json:"creator_id"`
	Title       string    `gorm:"size:100;not null" json:"title"`
	Description string    `gorm:"size:2000;not null" json:"description"`
	Type        string    `gorm:"size:16;not null" json:"type"`
	Category    string    `gorm:"size:32;not null" json:"category"`
	ContentType string    `gorm:"size:16;default:free" json:"content_type"`
	TokenPrice  int64     `gorm:"default:0" json:"token_price"`
	Tags        string    `gorm:"size:500" json:"tags"`
	Status      string    `gorm:"size:16;default:published;index" json:"status"`
	Visibility  string    `gorm:"size:16;default:public;index" json:"visibility"`

	StatsViews     int64 `gorm:"default:0" json:"stats_views"`
	StatsLikes     int64 `gorm:"default:0" json:"stats_likes"`
	StatsShares    int64 `gorm:"default:0" json:"stats_shares"`
	StatsPurchases int64 `gorm:"default:0" json:"stats_purchases"`
	StatsEarnings  int64 `gorm:"default:0" json:"stats_earnings"`

	Files []ContentFile `gorm:"foreignKey:ContentID" json:"files"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentFile points at one stored media file. The upload provider lives
// outside this service; only the resulting URLs are recorded.
type ContentFile struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentID uuid.UUID `gorm:"type:uuid;index;not null" json:"content_id"`
	URL       string    `gorm:"size:512;not null" json:"url"`
	MimeType  string    `gorm:"size:64" json:"mime_type"`
	Thumbnail string    `gorm:"size:512" json:"thumbnail"`
}

// IsPremium reports whether access requires a purchase.
func (c *Content) IsPremium() bool {
	return c.ContentType == ContentPremium
}
