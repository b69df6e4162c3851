package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

func newUserLogic(db *gorm.DB) *UserLogic {
	userDAO := dao.NewUserDAO(db)
	return NewUserLogic(userDAO, NewBalanceLogic(db, userDAO), "test-secret", 1, zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	db := setupTestDB(t)
	users := newUserLogic(db)

	user, err := users.Register("alice", "alice@example.com", "s3cretpass", models.RoleCreator)
	require.NoError(t, err)
	assert.Equal(t, models.RoleCreator, user.Role)
	assert.NotEqual(t, "s3cretpass", user.Password, "password must be stored hashed")

	got, token, _, err := users.Login("alice@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, token)

	_, _, _, err = users.Login("alice@example.com", "wrongpass")
	assert.Error(t, err)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	users := newUserLogic(db)

	_, err := users.Register("alice", "alice@example.com", "s3cretpass", "")
	require.NoError(t, err)

	_, err = users.Register("alice", "other@example.com", "s3cretpass", "")
	assert.Error(t, err)

	_, err = users.Register("other", "alice@example.com", "s3cretpass", "")
	assert.Error(t, err)
}

func TestGrantTokensAdminOnly(t *testing.T) {
	db := setupTestDB(t)
	users := newUserLogic(db)
	target := newTestUser(t, db, "target", models.RoleUser, 0)

	_, err := users.GrantTokens(models.RoleUser, target.ID, 100)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	balance, err := users.GrantTokens(models.RoleAdmin, target.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), balance)

	_, err = users.GrantTokens(models.RoleAdmin, target.ID, -5)
	assert.Error(t, err)

	// The grant lands as a ledger entry.
	history, err := dao.NewUserDAO(db).LedgerHistory(target.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.LedgerTip, history[0].Kind)
}
