package dao

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/models"
)

// PurchaseDAO handles purchase record storage.
type PurchaseDAO struct {
	db *gorm.DB
}

func NewPurchaseDAO(db *gorm.DB) *PurchaseDAO {
	return &PurchaseDAO{db: db}
}

// CreatePurchaseTx appends a purchase record inside the supplied transaction.
// The unique (content_id, buyer_id) index rejects a concurrent duplicate that
// slipped past the read-side check; the violation surfaces as AlreadyPurchased.
func (d *PurchaseDAO) CreatePurchaseTx(tx *gorm.DB, contentID, buyerID uuid.UUID, amount int64) (*models.Purchase, error) {
	purchase := &models.Purchase{
		ID:        uuid.New(),
		ContentID: contentID,
		BuyerID:   buyerID,
		Amount:    amount,
	}
	if err := tx.Create(purchase).Error; err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrAlreadyPurchased
		}
		return nil, err
	}
	return purchase, nil
}

// HasPurchased reports whether the buyer already holds a purchase record for
// the content.
func (d *PurchaseDAO) HasPurchased(contentID, buyerID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Purchase{}).
		Where("content_id = ? AND buyer_id = ?", contentID, buyerID).
		Count(&count).Error
	return count > 0, err
}

// HasPurchasedTx is HasPurchased against a transaction handle.
func (d *PurchaseDAO) HasPurchasedTx(tx *gorm.DB, contentID, buyerID uuid.UUID) (bool, error) {
	var count int64
	err := tx.Model(&models.Purchase{}).
		Where("content_id = ? AND buyer_id = ?", contentID, buyerID).
		Count(&count).Error
	return count > 0, err
}

// ListByContent returns all purchase records of a content item in insertion
// order.
func (d *PurchaseDAO) ListByContent(contentID uuid.UUID) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := d.db.Where("content_id = ?", contentID).
		Order("created_at ASC").
		Find(&purchases).Error
	return purchases, err
}

// isUniqueViolation matches the duplicate-key error text of both the postgres
// and sqlite drivers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique failed")
}
