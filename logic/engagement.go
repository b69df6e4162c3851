package logic

import (
	"github.com/google/uuid"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// EngagementLogic handles likes and comments on content items.
type EngagementLogic struct {
	contentDAO    *dao.ContentDAO
	engagementDAO *dao.EngagementDAO
}

func NewEngagementLogic(contentDAO *dao.ContentDAO, engagementDAO *dao.EngagementDAO) *EngagementLogic {
	return &EngagementLogic{contentDAO: contentDAO, engagementDAO: engagementDAO}
}

// ToggleLike flips the user's like on the content. Each call changes state
// exactly once; two consecutive calls restore the original state. Returns
// true if the content is liked after the call.
func (l *EngagementLogic) ToggleLike(contentID, userID uuid.UUID) (bool, error) {
	if _, err := l.contentDAO.GetContentByID(contentID); err != nil {
		return false, err
	}
	return l.engagementDAO.ToggleLike(contentID, userID)
}

// AddComment appends a comment to the content. Length limits are enforced at
// the request boundary.
func (l *EngagementLogic) AddComment(contentID, userID uuid.UUID, text string) (*models.Comment, error) {
	if _, err := l.contentDAO.GetContentByID(contentID); err != nil {
		return nil, err
	}
	return l.engagementDAO.CreateComment(contentID, userID, text)
}

// GetComments returns the content's comments in insertion order.
func (l *EngagementLogic) GetComments(contentID uuid.UUID) ([]models.Comment, error) {
	if _, err := l.contentDAO.GetContentByID(contentID); err != nil {
		return nil, err
	}
	return l.engagementDAO.GetCommentsByContentID(contentID)
}
