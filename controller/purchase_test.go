package controller

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/logic"
	"github.com/Gdheubs/Apex-club665/middleware"
	"github.com/Gdheubs/Apex-club665/models"
)

const testSecret = "test-secret"

var testDBSeq atomic.Int64

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:ctrltestdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
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

	log := zap.NewNop()
	userDAO := dao.NewUserDAO(db)
	contentDAO := dao.NewContentDAO(db)
	purchaseDAO := dao.NewPurchaseDAO(db)
	engagementDAO := dao.NewEngagementDAO(db)

	balanceLogic := logic.NewBalanceLogic(db, userDAO)
	accessLogic := logic.NewAccessLogic(purchaseDAO)
	userLogic := logic.NewUserLogic(userDAO, balanceLogic, testSecret, 1, log)
	contentLogic := logic.NewContentLogic(contentDAO, accessLogic, log)
	purchaseLogic := logic.NewPurchaseLogic(db, userDAO, contentDAO, purchaseDAO, log)
	engagementLogic := logic.NewEngagementLogic(contentDAO, engagementDAO)

	userCtrl := NewUserController(userLogic, log)
	contentCtrl := NewContentController(contentLogic, log)
	purchaseCtrl := NewPurchaseController(purchaseLogic, log)
	engagementCtrl := NewEngagementController(engagementLogic, log)

	auth := middleware.NewAuth(testSecret, userDAO)
	optionalAuth := middleware.NewOptionalAuth(testSecret, userDAO)

	r := gin.New()
	r.POST("/auth/register", userCtrl.Register)
	r.POST("/auth/login", userCtrl.Login)
	r.GET("/content/:id", optionalAuth, contentCtrl.Get)
	r.POST("/content/:id/like", auth, engagementCtrl.Like)
	r.POST("/content/:id/purchase", auth, purchaseCtrl.Purchase)
	r.GET("/wallet", auth, userCtrl.Wallet)

	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, username, role string, balance int64) *models.User {
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

func seedContent(t *testing.T, db *gorm.DB, creatorID uuid.UUID, contentType string, price int64) *models.Content {
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
		Files:       []models.ContentFile{{URL: "https://cdn.example.com/a.jpg"}},
	}
	require.NoError(t, db.Create(content).Error)
	return content
}

func bearerToken(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": userID.String(),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func doRequest(r *gin.Engine, method, path, auth, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPurchaseEndpointStatusMapping(t *testing.T) {
	r, db := setupRouter(t)
	creator := seedUser(t, db, "creator", models.RoleCreator, 0)
	buyer := seedUser(t, db, "buyer", models.RoleUser, 100)
	premium := seedContent(t, db, creator.ID, models.ContentPremium, 30)
	free := seedContent(t, db, creator.ID, models.ContentFree, 0)
	token := bearerToken(t, buyer.ID)

	// Unauthenticated.
	w := doRequest(r, http.MethodPost, "/content/"+premium.ID.String()+"/purchase", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Unknown content.
	w = doRequest(r, http.MethodPost, "/content/"+uuid.NewString()+"/purchase", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Free content.
	w = doRequest(r, http.MethodPost, "/content/"+free.ID.String()+"/purchase", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "this content is free")

	// Happy path.
	w = doRequest(r, http.MethodPost, "/content/"+premium.ID.String()+"/purchase", token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "content purchased successfully")

	// Second attempt fails without a second debit.
	w = doRequest(r, http.MethodPost, "/content/"+premium.ID.String()+"/purchase", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already purchased")

	// Insufficient balance (70 left, price 80).
	expensive := seedContent(t, db, creator.ID, models.ContentPremium, 80)
	w = doRequest(r, http.MethodPost, "/content/"+expensive.ID.String()+"/purchase", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "insufficient token balance")

	var gotBuyer models.User
	require.NoError(t, db.First(&gotBuyer, "id = ?", buyer.ID).Error)
	assert.Equal(t, int64(70), gotBuyer.TokenBalance)
}

func TestGetContentHidesFilesUntilPurchased(t *testing.T) {
	r, db := setupRouter(t)
	creator := seedUser(t, db, "creator", models.RoleCreator, 0)
	buyer := seedUser(t, db, "buyer", models.RoleUser, 100)
	premium := seedContent(t, db, creator.ID, models.ContentPremium, 30)
	token := bearerToken(t, buyer.ID)

	w := doRequest(r, http.MethodGet, "/content/"+premium.ID.String(), token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locked":true`)
	assert.NotContains(t, w.Body.String(), "cdn.example.com")

	w = doRequest(r, http.MethodPost, "/content/"+premium.ID.String()+"/purchase", token, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/content/"+premium.ID.String(), token, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"locked":false`)
	assert.Contains(t, w.Body.String(), "cdn.example.com")
}

func TestWalletReflectsLedger(t *testing.T) {
	r, db := setupRouter(t)
	creator := seedUser(t, db, "creator", models.RoleCreator, 0)
	buyer := seedUser(t, db, "buyer", models.RoleUser, 100)
	premium := seedContent(t, db, creator.ID, models.ContentPremium, 30)
	buyerToken := bearerToken(t, buyer.ID)
	creatorToken := bearerToken(t, creator.ID)

	w := doRequest(r, http.MethodPost, "/content/"+premium.ID.String()+"/purchase", buyerToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(r, http.MethodGet, "/wallet", buyerToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token_balance":70`)
	assert.Contains(t, w.Body.String(), models.LedgerContentPurchase)

	w = doRequest(r, http.MethodGet, "/wallet", creatorToken, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token_balance":30`)
	assert.Contains(t, w.Body.String(), models.LedgerContentSale)
}

func TestRegisterLoginRoundTrip(t *testing.T) {
	r, _ := setupRouter(t)

	w := doRequest(r, http.MethodPost, "/auth/register", "",
		`{"username":"alice","email":"alice@example.com","password":"s3cretpass","role":"creator"}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(r, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"s3cretpass"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"token"`)

	w = doRequest(r, http.MethodPost, "/auth/login", "",
		`{"email":"alice@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
