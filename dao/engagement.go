package dao

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/models"
)

// EngagementDAO handles likes and comments.
type EngagementDAO struct {
	db *gorm.DB
}

func NewEngagementDAO(db *gorm.DB) *EngagementDAO {
	return &EngagementDAO{db: db}
}

// ToggleLike flips the (content, user) like membership and adjusts the
// content's like counter in one transaction. Returns the resulting state:
// true if the user now likes the content.
func (d *EngagementDAO) ToggleLike(contentID, userID uuid.UUID) (bool, error) {
	var liked bool
	err := d.db.Transaction(func(tx *gorm.DB) error {
		var like models.Like
		err := tx.Where("content_id = ? AND user_id = ?", contentID, userID).
			First(&like).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(&models.Like{ContentID: contentID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
			return tx.Model(&models.Content{}).
				Where("id = ?", contentID).
				Update("stats_likes", gorm.Expr("stats_likes + 1")).Error
		case err != nil:
			return err
		default:
			if err := tx.Delete(&like).Error; err != nil {
				return err
			}
			liked = false
			return tx.Model(&models.Content{}).
				Where("id = ?", contentID).
				Update("stats_likes", gorm.Expr("stats_likes - 1")).Error
		}
	})
	return liked, err
}

// CreateComment appends a comment to a content item.
func (d *EngagementDAO) CreateComment(contentID, userID uuid.UUID, text string) (*models.Comment, error) {
	comment := &models.Comment{
		ID:        uuid.New(),
		ContentID: contentID,
		UserID:    userID,
		Text:      text,
	}
	if err := d.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// GetCommentsByContentID retrieves all comments of a content item in
// insertion order.
func (d *EngagementDAO) GetCommentsByContentID(contentID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := d.db.Where("content_id = ?", contentID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
