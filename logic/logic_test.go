package logic

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

var testDBSeq atomic.Int64

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.LedgerEntry{},
		&models.Content{},
		&models.ContentFile{},
		&models.Purchase{},
		&models.Like{},
		&models.Comment{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, role string, balance int64) *models.User {
	t.Helper()

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        username + "@example.com",
		Password:     "not-a-real-hash",
		Role:         role,
		Status:       models.StatusActive,
		TokenBalance: balance,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func newTestContent(t *testing.T, db *gorm.DB, creatorID uuid.UUID, contentType string, price int64) *models.Content {
	t.Helper()

	content := &models.Content{
		ID:          uuid.New(),
		CreatorID:   creatorID,
		Title:       "Test title",
		Description: "A sufficiently long description",
		Type:        models.TypeImage,
		Category:    "photography",
		ContentType: contentType,
		TokenPrice:  price,
		Status:      models.ContentPublished,
		Visibility:  models.VisibilityPublic,
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

func newPurchaseLogic(db *gorm.DB) *PurchaseLogic {
	return NewPurchaseLogic(
		db,
		dao.NewUserDAO(db),
		dao.NewContentDAO(db),
		dao.NewPurchaseDAO(db),
		zap.NewNop(),
	)
}

func totalBalance(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var total int64
	require.NoError(t, db.Model(&models.User{}).
		Select("COALESCE(SUM(token_balance),0)").Scan(&total).Error)
	return total
}
