package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/logic"
)

// PurchaseController handles purchase settlement requests.
type PurchaseController struct {
	purchaseLogic *logic.PurchaseLogic
	log           *zap.Logger
}

func NewPurchaseController(purchaseLogic *logic.PurchaseLogic, log *zap.Logger) *PurchaseController {
	return &PurchaseController{purchaseLogic: purchaseLogic, log: log}
}

// Purchase handles POST /content/:id/purchase
func (c *PurchaseController) Purchase(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	purchase, err := c.purchaseLogic.Purchase(id, currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message":  "content purchased successfully",
		"purchase": purchase,
	})
}
