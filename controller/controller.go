package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/middleware"
)

// currentUserID reads the authenticated caller's id from the request context.
// Returns uuid.Nil if the route ran without the auth middleware.
func currentUserID(ctx *gin.Context) uuid.UUID {
	v, ok := ctx.Get(middleware.CtxUserID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// currentUserRole reads the authenticated caller's role, or "".
func currentUserRole(ctx *gin.Context) string {
	v, ok := ctx.Get(middleware.CtxUserRole)
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}

// writeError maps a domain error to its HTTP status. Anything that is not an
// AppError is logged with full request context and surfaced as a generic 500.
func writeError(ctx *gin.Context, log *zap.Logger, err error) {
	if appErr, ok := apperrors.As(err); ok {
		ctx.JSON(appErr.Status, gin.H{"error": appErr.Message})
		return
	}

	log.Error("request failed",
		zap.String("path", ctx.FullPath()),
		zap.String("method", ctx.Request.Method),
		zap.String("caller", currentUserID(ctx).String()),
		zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
}

// parseIDParam parses the :id path parameter.
func parseIDParam(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid content ID"})
		return uuid.Nil, false
	}
	return id, true
}
