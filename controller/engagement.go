package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/logic"
)

// EngagementController handles like and comment requests.
type EngagementController struct {
	engagementLogic *logic.EngagementLogic
	log             *zap.Logger
}

func NewEngagementController(engagementLogic *logic.EngagementLogic, log *zap.Logger) *EngagementController {
	return &EngagementController{engagementLogic: engagementLogic, log: log}
}

// Like handles POST /content/:id/like
func (c *EngagementController) Like(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	liked, err := c.engagementLogic.ToggleLike(id, currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	msg := "content unliked"
	if liked {
		msg = "content liked"
	}
	ctx.JSON(http.StatusOK, gin.H{"message": msg, "liked": liked})
}

// Comment handles POST /content/:id/comment
func (c *EngagementController) Comment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	type Request struct {
		Text string `json:"text" binding:"required,min=1,max=500"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := c.engagementLogic.AddComment(id, currentUserID(ctx), req.Text)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, comment)
}

// Comments handles GET /content/:id/comments
func (c *EngagementController) Comments(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	comments, err := c.engagementLogic.GetComments(id)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"data": comments})
}
