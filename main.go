package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Gdheubs/Apex-club665/config"
	"github.com/Gdheubs/Apex-club665/controller"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/logic"
	"github.com/Gdheubs/Apex-club665/middleware"
	"github.com/Gdheubs/Apex-club665/models"
	"github.com/Gdheubs/Apex-club665/pkg"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run main.go <config.yaml>")
	}
	cfg, err := config.Load(os.Args[1])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := pkg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.LedgerEntry{},
		&models.Content{},
		&models.ContentFile{},
		&models.Purchase{},
		&models.Like{},
		&models.Comment{},
	); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	contentDAO := dao.NewContentDAO(db)
	purchaseDAO := dao.NewPurchaseDAO(db)
	engagementDAO := dao.NewEngagementDAO(db)

	// Initialize Logics
	balanceLogic := logic.NewBalanceLogic(db, userDAO)
	accessLogic := logic.NewAccessLogic(purchaseDAO)
	userLogic := logic.NewUserLogic(userDAO, balanceLogic, cfg.Auth.Secret, cfg.Auth.ExpHour, logger)
	contentLogic := logic.NewContentLogic(contentDAO, accessLogic, logger)
	purchaseLogic := logic.NewPurchaseLogic(db, userDAO, contentDAO, purchaseDAO, logger)
	engagementLogic := logic.NewEngagementLogic(contentDAO, engagementDAO)

	// Initialize Controllers
	userCtrl := controller.NewUserController(userLogic, logger)
	contentCtrl := controller.NewContentController(contentLogic, logger)
	purchaseCtrl := controller.NewPurchaseController(purchaseLogic, logger)
	engagementCtrl := controller.NewEngagementController(engagementLogic, logger)

	auth := middleware.NewAuth(cfg.Auth.Secret, userDAO)
	optionalAuth := middleware.NewOptionalAuth(cfg.Auth.Secret, userDAO)
	creatorOnly := middleware.RequireRole(models.RoleCreator, models.RoleAdmin)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	// Setup Gin router
	r := gin.Default()
	r.POST("/auth/register", userCtrl.Register)
	r.POST("/auth/login", userCtrl.Login)
	r.GET("/auth/me", auth, userCtrl.Me)

	r.POST("/content", auth, creatorOnly, contentCtrl.Create)
	r.GET("/content", contentCtrl.List)
	r.GET("/content/discover/trending", contentCtrl.Trending)
	r.GET("/content/discover/featured", contentCtrl.Featured)
	r.GET("/content/creator/stats", auth, creatorOnly, contentCtrl.CreatorStats)
	r.GET("/content/creator/content", auth, creatorOnly, contentCtrl.CreatorContent)
	r.GET("/content/:id", optionalAuth, contentCtrl.Get)
	r.PATCH("/content/:id", auth, creatorOnly, contentCtrl.Update)
	r.DELETE("/content/:id", auth, creatorOnly, contentCtrl.Delete)

	r.POST("/content/:id/like", auth, engagementCtrl.Like)
	r.POST("/content/:id/comment", auth, engagementCtrl.Comment)
	r.GET("/content/:id/comments", engagementCtrl.Comments)
	r.POST("/content/:id/purchase", auth, purchaseCtrl.Purchase)

	r.GET("/wallet", auth, userCtrl.Wallet)
	r.POST("/wallet/grant", auth, adminOnly, userCtrl.GrantTokens)

	// Run server
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		logger.Fatal("failed to run server", zap.Error(err))
	}
}
