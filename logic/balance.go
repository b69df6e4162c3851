package logic

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// BalanceLogic applies signed token adjustments to user balances. Every
// adjustment commits together with its ledger entry: a caller can never
// observe the balance updated without the matching entry appended.
type BalanceLogic struct {
	db      *gorm.DB
	userDAO *dao.UserDAO
}

func NewBalanceLogic(db *gorm.DB, userDAO *dao.UserDAO) *BalanceLogic {
	return &BalanceLogic{db: db, userDAO: userDAO}
}

// Adjust applies amount to the user's balance and appends a ledger entry of
// the given kind, atomically. Returns the updated balance. A negative
// resulting balance is not rejected; callers pre-check sufficiency before
// debiting.
func (l *BalanceLogic) Adjust(userID uuid.UUID, amount int64, kind string) (int64, error) {
	var balance int64
	err := l.db.Transaction(func(tx *gorm.DB) error {
		var err error
		balance, err = l.userDAO.AdjustBalanceTx(tx, userID, amount, kind)
		return err
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

// History returns the user's ledger entries in chronological order.
func (l *BalanceLogic) History(userID uuid.UUID) ([]models.LedgerEntry, error) {
	return l.userDAO.LedgerHistory(userID)
}
