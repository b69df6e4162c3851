package logic

import (
	"github.com/google/uuid"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// AccessLogic decides whether a viewer may consume a content item.
type AccessLogic struct {
	purchaseDAO *dao.PurchaseDAO
}

func NewAccessLogic(purchaseDAO *dao.PurchaseDAO) *AccessLogic {
	return &AccessLogic{purchaseDAO: purchaseDAO}
}

// CanAccess evaluates the access rule in order:
//  1. Non-owners may only see published, public content. The followers tier
//     has no resolution rule and is treated as not-public.
//  2. Free content is open to anyone who passed the visibility gate.
//  3. Premium content is open to its creator and to buyers holding a
//     purchase record.
func (l *AccessLogic) CanAccess(content *models.Content, viewerID uuid.UUID) (bool, error) {
	isOwner := viewerID != uuid.Nil && viewerID == content.CreatorID

	if !isOwner {
		if content.Status != models.ContentPublished {
			return false, nil
		}
		if content.Visibility != models.VisibilityPublic {
			return false, nil
		}
	}

	if !content.IsPremium() {
		return true, nil
	}

	if isOwner {
		return true, nil
	}
	if viewerID == uuid.Nil {
		return false, nil
	}
	return l.purchaseDAO.HasPurchased(content.ID, viewerID)
}
