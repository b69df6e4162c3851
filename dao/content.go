package dao

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/models"
)

// ContentDAO handles content-related database operations.
type ContentDAO struct {
	db *gorm.DB
}

func NewContentDAO(db *gorm.DB) *ContentDAO {
	return &ContentDAO{db: db}
}

// ContentFilter narrows List queries. Zero values mean "no filter".
type ContentFilter struct {
	Status      string
	Visibility  string
	Type        string
	Category    string
	ContentType string
	CreatorID   uuid.UUID
	Search      string
	Page        int
	Limit       int
	Sort        string // gorm order expression, defaults to created_at DESC
}

// ContentUpdate enumerates exactly the mutable fields of a content item.
// Nil fields are left untouched.
type ContentUpdate struct {
	Title       *string
	Description *string
	Category    *string
	ContentType *string
	TokenPrice  *int64
	Tags        *string
	Status      *string
	Visibility  *string
}

// CreateContent persists a new content item with its file records.
func (d *ContentDAO) CreateContent(content *models.Content) error {
	if content.ID == uuid.Nil {
		content.ID = uuid.New()
	}
	return d.db.Create(content).Error
}

// GetContentByID retrieves a content item with its files.
func (d *ContentDAO) GetContentByID(id uuid.UUID) (*models.Content, error) {
	var content models.Content
	if err := d.db.Preload("Files").First(&content, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// GetContentForUpdateTx retrieves a content row under a write lock inside the
// supplied transaction.
func (d *ContentDAO) GetContentForUpdateTx(tx *gorm.DB, id uuid.UUID) (*models.Content, error) {
	var content models.Content
	err := LockForUpdate(tx).First(&content, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// ListContents returns contents matching the filter plus the total count.
func (d *ContentDAO) ListContents(f ContentFilter) ([]models.Content, int64, error) {
	q := d.db.Model(&models.Content{})

	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Visibility != "" {
		q = q.Where("visibility = ?", f.Visibility)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.ContentType != "" {
		q = q.Where("content_type = ?", f.ContentType)
	}
	if f.CreatorID != uuid.Nil {
		q = q.Where("creator_id = ?", f.CreatorID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sort := f.Sort
	if sort == "" {
		sort = "created_at DESC"
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = 10
	}

	var contents []models.Content
	err := q.Preload("Files").
		Order(sort).
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contents).Error
	if err != nil {
		return nil, 0, err
	}
	return contents, total, nil
}

// ApplyUpdate mutates the enumerated fields of a content item.
func (d *ContentDAO) ApplyUpdate(id uuid.UUID, upd ContentUpdate) error {
	fields := map[string]interface{}{}
	if upd.Title != nil {
		fields["title"] = *upd.Title
	}
	if upd.Description != nil {
		fields["description"] = *upd.Description
	}
	if upd.Category != nil {
		fields["category"] = *upd.Category
	}
	if upd.ContentType != nil {
		fields["content_type"] = *upd.ContentType
	}
	if upd.TokenPrice != nil {
		fields["token_price"] = *upd.TokenPrice
	}
	if upd.Tags != nil {
		fields["tags"] = *upd.Tags
	}
	if upd.Status != nil {
		fields["status"] = *upd.Status
	}
	if upd.Visibility != nil {
		fields["visibility"] = *upd.Visibility
	}
	if len(fields) == 0 {
		return nil
	}
	return d.db.Model(&models.Content{}).Where("id = ?", id).Updates(fields).Error
}

// DeleteContent removes a content item and its dependent rows.
func (d *ContentDAO) DeleteContent(id uuid.UUID) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_id = ?", id).Delete(&models.ContentFile{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("content_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Content{}, "id = ?", id).Error
	})
}

// IncrementViews bumps the view counter.
func (d *ContentDAO) IncrementViews(id uuid.UUID) error {
	return d.db.Model(&models.Content{}).
		Where("id = ?", id).
		Update("stats_views", gorm.Expr("stats_views + 1")).Error
}

// RecordPurchaseStatsTx adds one purchase and its amount to the content's
// running stats inside the supplied transaction.
func (d *ContentDAO) RecordPurchaseStatsTx(tx *gorm.DB, id uuid.UUID, amount int64) error {
	return tx.Model(&models.Content{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"stats_purchases": gorm.Expr("stats_purchases + 1"),
			"stats_earnings":  gorm.Expr("stats_earnings + ?", amount),
		}).Error
}

// CreatorStats aggregates totals across one creator's content.
type CreatorStats struct {
	TotalContent  int64 `json:"total_content"`
	TotalViews    int64 `json:"total_views"`
	TotalLikes    int64 `json:"total_likes"`
	TotalEarnings int64 `json:"total_earnings"`
}

// GetCreatorStats computes aggregate stats for a creator.
func (d *ContentDAO) GetCreatorStats(creatorID uuid.UUID) (*CreatorStats, error) {
	var stats CreatorStats
	err := d.db.Model(&models.Content{}).
		Where("creator_id = ?", creatorID).
		Select("COUNT(*) as total_content, COALESCE(SUM(stats_views),0) as total_views, COALESCE(SUM(stats_likes),0) as total_likes, COALESCE(SUM(stats_earnings),0) as total_earnings").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// TrendingContents returns the most viewed public published contents.
func (d *ContentDAO) TrendingContents(limit int) ([]models.Content, error) {
	var contents []models.Content
	err := d.db.Preload("Files").
		Where("status = ? AND visibility = ? AND stats_views > 0",
			models.ContentPublished, models.VisibilityPublic).
		Order("stats_views DESC").
		Limit(limit).
		Find(&contents).Error
	return contents, err
}

// FeaturedContents returns the top earning public premium contents.
func (d *ContentDAO) FeaturedContents(limit int) ([]models.Content, error) {
	var contents []models.Content
	err := d.db.Preload("Files").
		Where("status = ? AND visibility = ? AND content_type = ?",
			models.ContentPublished, models.VisibilityPublic, models.ContentPremium).
		Order("stats_earnings DESC").
		Limit(limit).
		Find(&contents).Error
	return contents, err
}
