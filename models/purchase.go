package models

import (
	"time"

	"github.com/google/uuid"
)

// Purchase records that a buyer paid for a content item. Created once per
// (content, buyer) pair and never mutated; the composite unique index enforces
// the no-double-purchase invariant at the store level.
type Purchase struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ContentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_content_buyer" json:"content_id"`
	BuyerID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_purchases_content_buyer" json:"buyer_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}
