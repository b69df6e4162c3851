package logic

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// PurchaseLogic settles premium-content purchases. The debit, the purchase
// record, the content stats update and the creator credit all run inside one
// database transaction: a failure at any step rolls the whole transfer back,
// so a buyer is never debited without the creator being credited.
type PurchaseLogic struct {
	db          *gorm.DB
	userDAO     *dao.UserDAO
	contentDAO  *dao.ContentDAO
	purchaseDAO *dao.PurchaseDAO
	log         *zap.Logger
}

func NewPurchaseLogic(
	db *gorm.DB,
	userDAO *dao.UserDAO,
	contentDAO *dao.ContentDAO,
	purchaseDAO *dao.PurchaseDAO,
	log *zap.Logger,
) *PurchaseLogic {
	return &PurchaseLogic{
		db:          db,
		userDAO:     userDAO,
		contentDAO:  contentDAO,
		purchaseDAO: purchaseDAO,
		log:         log,
	}
}

// Purchase executes the settlement workflow for one buyer and one content
// item. Checks run strictly in order; the first unmet precondition aborts the
// request:
//
//	content exists -> premium -> not already purchased -> sufficient balance
//
// then buyer debit, purchase record, content stats and creator credit commit
// together. The unique purchase index backstops the duplicate check against
// concurrent requests by the same buyer.
func (l *PurchaseLogic) Purchase(contentID, buyerID uuid.UUID) (*models.Purchase, error) {
	var purchase *models.Purchase

	err := l.db.Transaction(func(tx *gorm.DB) error {
		content, err := l.contentDAO.GetContentForUpdateTx(tx, contentID)
		if err != nil {
			return err
		}

		if !content.IsPremium() {
			return apperrors.ErrNotPurchasable
		}

		purchased, err := l.purchaseDAO.HasPurchasedTx(tx, contentID, buyerID)
		if err != nil {
			return err
		}
		if purchased {
			return apperrors.ErrAlreadyPurchased
		}

		var buyer models.User
		err = dao.LockForUpdate(tx).First(&buyer, "id = ?", buyerID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}
		if buyer.TokenBalance < content.TokenPrice {
			return apperrors.ErrInsufficientBalance
		}

		if _, err := l.userDAO.AdjustBalanceTx(tx, buyerID, -content.TokenPrice, models.LedgerContentPurchase); err != nil {
			return err
		}

		purchase, err = l.purchaseDAO.CreatePurchaseTx(tx, contentID, buyerID, content.TokenPrice)
		if err != nil {
			return err
		}

		if err := l.contentDAO.RecordPurchaseStatsTx(tx, contentID, content.TokenPrice); err != nil {
			return err
		}

		if _, err := l.userDAO.AdjustBalanceTx(tx, content.CreatorID, content.TokenPrice, models.LedgerContentSale); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if _, ok := apperrors.As(err); !ok {
			l.log.Error("purchase settlement failed",
				zap.String("content_id", contentID.String()),
				zap.String("buyer_id", buyerID.String()),
				zap.Error(err))
		}
		return nil, err
	}

	l.log.Info("content purchased",
		zap.String("content_id", contentID.String()),
		zap.String("buyer_id", buyerID.String()),
		zap.Int64("amount", purchase.Amount))

	return purchase, nil
}
