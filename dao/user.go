package dao

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/models"
)

// UserDAO handles user-related database operations.
type UserDAO struct {
	db *gorm.DB
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{db: db}
}

// CreateUser persists a new user.
func (d *UserDAO) CreateUser(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	return d.db.Create(user).Error
}

// GetUserByID retrieves a user by id.
func (d *UserDAO) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by email.
func (d *UserDAO) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.First(&user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ExistsByEmailOrUsername reports whether a user with the given email or
// username is already registered.
func (d *UserDAO) ExistsByEmailOrUsername(email, username string) (bool, error) {
	var count int64
	err := d.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error
	return count > 0, err
}

// AdjustBalanceTx applies a signed token adjustment to a user's balance and
// appends the matching ledger entry against the supplied transaction handle.
// The balance update, earnings update and ledger append commit together or
// not at all. No floor check: a negative resulting balance is not rejected
// here, callers pre-check sufficiency before debiting.
func (d *UserDAO) AdjustBalanceTx(tx *gorm.DB, userID uuid.UUID, amount int64, kind string) (int64, error) {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"token_balance":  gorm.Expr("token_balance + ?", amount),
			"earnings_total": gorm.Expr("earnings_total + ?", amount),
		})
	if res.Error != nil {
		return 0, res.Error
	}
	if res.RowsAffected == 0 {
		return 0, apperrors.ErrUserNotFound
	}

	entry := &models.LedgerEntry{
		UserID: userID,
		Amount: amount,
		Kind:   kind,
	}
	if err := tx.Create(entry).Error; err != nil {
		return 0, err
	}

	var balance int64
	if err := tx.Model(&models.User{}).
		Where("id = ?", userID).
		Select("token_balance").
		Scan(&balance).Error; err != nil {
		return 0, err
	}
	return balance, nil
}

// LedgerHistory retrieves a user's ledger entries in insertion order.
func (d *UserDAO) LedgerHistory(userID uuid.UUID) ([]models.LedgerEntry, error) {
	var entries []models.LedgerEntry
	if err := d.db.Where("user_id = ?", userID).Order("id ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
