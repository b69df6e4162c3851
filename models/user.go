package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleUser    = "user"
	RoleCreator = "creator"
	RoleAdmin   = "admin"
)

// User account statuses.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusSuspended = "suspended"
)

// User represents a platform account holding a token balance.
type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:30;not null" json:"username"`
	Email          string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password       string    `gorm:"size:255;not null" json:"-"`
	Role           string    `gorm:"size:16;default:user" json:"role"`
	Bio            string    `gorm:"size:500" json:"bio"`
	ProfilePicture string    `gorm:"size:255;default:default-profile.jpg" json:"profile_picture"`
	Status         string    `gorm:"size:16;default:active" json:"status"`
	TokenBalance   int64     `gorm:"default:0" json:"token_balance"`
	EarningsTotal  int64     `gorm:"default:0" json:"earnings_total"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Ledger entry kinds.
const (
	LedgerContentSale     = "content_sale"
	LedgerTip             = "tip"
	LedgerSubscription    = "subscription"
	LedgerContentPurchase = "content_purchase"
)

// LedgerEntry records one balance-affecting event for a user. Entries are
// append-only; insertion order is chronological order.
type LedgerEntry struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	Kind      string    `gorm:"size:32;not null" json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}
