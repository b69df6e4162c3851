package logic

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

func TestPurchaseTransfersExactPrice(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUserDAO(db)
	settlement := newPurchaseLogic(db)

	creator := newTestUser(t, db, "creator", models.RoleCreator, 0)
	buyer := newTestUser(t, db, "buyer", models.RoleUser, 100)
	content := newTestContent(t, db, creator.ID, models.ContentPremium, 30)

	before := totalBalance(t, db)

	purchase, err := settlement.Purchase(content.ID, buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), purchase.Amount)
	assert.Equal(t, buyer.ID, purchase.BuyerID)

	gotBuyer, err := userDAO.GetUserByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), gotBuyer.TokenBalance)

	gotCreator, err := userDAO.GetUserByID(creator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(30), gotCreator.TokenBalance)

	// Conservation: the transfer moves tokens, it never mints them.
	assert.Equal(t, before, totalBalance(t, db))

	var gotContent models.Content
	require.NoError(t, db.First(&gotContent, "id = ?", content.ID).Error)
	assert.Equal(t, int64(1), gotContent.StatsPurchases)
	assert.Equal(t, int64(30), gotContent.StatsEarnings)

	// Both sides of the transfer carry a ledger entry.
	buyerHistory, err := userDAO.LedgerHistory(buyer.ID)
	require.NoError(t, err)
	require.Len(t, buyerHistory, 1)
	assert.Equal(t, int64(-30), buyerHistory[0].Amount)
	assert.Equal(t, models.LedgerContentPurchase, buyerHistory[0].Kind)

	creatorHistory, err := userDAO.LedgerHistory(creator.ID)
	require.NoError(t, err)
	require.Len(t, creatorHistory, 1)
	assert.Equal(t, int64(30), creatorHistory[0].Amount)
	assert.Equal(t, models.LedgerContentSale, creatorHistory[0].Kind)
}

func TestPurchaseTwiceReturnsAlreadyPurchased(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUserDAO(db)
	settlement := newPurchaseLogic(db)

	creator := newTestUser(t, db, "creator", models.RoleCreator, 0)
	buyer := newTestUser(t, db, "buyer", models.RoleUser, 100)
	content := newTestContent(t, db, creator.ID, models.ContentPremium, 30)

	_, err := settlement.Purchase(content.ID, buyer.ID)
	require.NoError(t, err)

	_, err = settlement.Purchase(content.ID, buyer.ID)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyPurchased)

	// The failed attempt produced no balance change.
	gotBuyer, err := userDAO.GetUserByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), gotBuyer.TokenBalance)

	var count int64
	require.NoError(t, db.Model(&models.Purchase{}).
		Where("content_id = ? AND buyer_id = ?", content.ID, buyer.ID).
		Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPurchaseInsufficientBalance(t *testing.T) {
	db := setupTestDB(t)
	userDAO := dao.NewUserDAO(db)
	settlement := newPurchaseLogic(db)

	creator := newTestUser(t, db, "creator", models.RoleCreator, 0)
	buyer := newTestUser(t, db, "buyer", models.RoleUser, 10)
	content := newTestContent(t, db, creator.ID, models.ContentPremium, 30)

	_, err := settlement.Purchase(content.ID, buyer.ID)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)

	// Nothing moved.
	gotBuyer, err := userDAO.GetUserByID(buyer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(10), gotBuyer.TokenBalance)

	gotCreator, err := userDAO.GetUserByID(creator.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), gotCreator.TokenBalance)

	var gotContent models.Content
	require.NoError(t, db.First(&gotContent, "id = ?", content.ID).Error)
	assert.Equal(t, int64(0), gotContent.StatsPurchases)
	assert.Equal(t, int64(0), gotContent.StatsEarnings)
}

func TestPurchaseFreeContent(t *testing.T) {
	db := setupTestDB(t)
	settlement := newPurchaseLogic(db)

	creator := newTestUser(t, db, "creator", models.RoleCreator, 0)
	buyer := newTestUser(t, db, "buyer", models.RoleUser, 100)
	content := newTestContent(t, db, creator.ID, models.ContentFree, 0)

	_, err := settlement.Purchase(content.ID, buyer.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotPurchasable)
}

func TestPurchaseMissingContent(t *testing.T) {
	db := setupTestDB(t)
	settlement := newPurchaseLogic(db)
	buyer := newTestUser(t, db, "buyer", models.RoleUser, 100)

	_, err := settlement.Purchase(uuid.New(), buyer.ID)
	assert.ErrorIs(t, err, apperrors.ErrContentNotFound)
}

func TestPurchaseStatsStayConsistent(t *testing.T) {
	db := setupTestDB(t)
	settlement := newPurchaseLogic(db)
	purchaseDAO := dao.NewPurchaseDAO(db)

	creator := newTestUser(t, db, "creator", models.RoleCreator, 0)
	content := newTestContent(t, db, creator.ID, models.ContentPremium, 25)

	for i, name := range []string{"buyer1", "buyer2", "buyer3"} {
		buyer := newTestUser(t, db, name, models.RoleUser, 100)
		_, err := settlement.Purchase(content.ID, buyer.ID)
		require.NoError(t, err, "purchase %d", i+1)
	}

	purchases, err := purchaseDAO.ListByContent(content.ID)
	require.NoError(t, err)
	require.Len(t, purchases, 3)

	var sum int64
	for _, p := range purchases {
		sum += p.Amount
	}

	var gotContent models.Content
	require.NoError(t, db.First(&gotContent, "id = ?", content.ID).Error)
	assert.Equal(t, int64(len(purchases)), gotContent.StatsPurchases)
	assert.Equal(t, sum, gotContent.StatsEarnings)
}
