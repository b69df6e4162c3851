package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/logic"
)

// UserController handles registration, login and wallet requests.
type UserController struct {
	userLogic *logic.UserLogic
	log       *zap.Logger
}

func NewUserController(userLogic *logic.UserLogic, log *zap.Logger) *UserController {
	return &UserController{userLogic: userLogic, log: log}
}

// Register handles POST /auth/register
func (c *UserController) Register(ctx *gin.Context) {
	type Request struct {
		Username string `json:"username" binding:"required,min=3,max=30"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userLogic.Register(req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
func (c *UserController) Login(ctx *gin.Context) {
	type Request struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, expireAt, err := c.userLogic.Login(req.Email, req.Password)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"user":      user,
		"token":     token,
		"expire_at": expireAt.Format(time.RFC3339),
	})
}

// Me handles GET /auth/me
func (c *UserController) Me(ctx *gin.Context) {
	user, err := c.userLogic.GetUser(currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

// Wallet handles GET /wallet
func (c *UserController) Wallet(ctx *gin.Context) {
	user, history, err := c.userLogic.Wallet(currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"token_balance":  user.TokenBalance,
		"earnings_total": user.EarningsTotal,
		"history":        history,
	})
}

// GrantTokens handles POST /wallet/grant
func (c *UserController) GrantTokens(ctx *gin.Context) {
	type Request struct {
		UserID string `json:"user_id" binding:"required"`
		Amount int64  `json:"amount" binding:"required"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user ID"})
		return
	}

	balance, err := c.userLogic.GrantTokens(currentUserRole(ctx), userID, req.Amount)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"token_balance": balance})
}
