package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/logic"
	"github.com/Gdheubs/Apex-club665/models"
)

// ContentController handles content lifecycle and discovery requests.
type ContentController struct {
	contentLogic *logic.ContentLogic
	log          *zap.Logger
}

func NewContentController(contentLogic *logic.ContentLogic, log *zap.Logger) *ContentController {
	return &ContentController{contentLogic: contentLogic, log: log}
}

type fileRequest struct {
	URL       string `json:"url" binding:"required"`
	MimeType  string `json:"mime_type"`
	Thumbnail string `json:"thumbnail"`
}

// Create handles POST /content
func (c *ContentController) Create(ctx *gin.Context) {
	type Request struct {
		Title       string        `json:"title" binding:"required,min=3,max=100"`
		Description string        `json:"description" binding:"required,min=10,max=2000"`
		Type        string        `json:"type" binding:"required"`
		Category    string        `json:"category" binding:"required"`
		ContentType string        `json:"content_type"`
		TokenPrice  int64         `json:"token_price"`
		Tags        string        `json:"tags"`
		Visibility  string        `json:"visibility"`
		Files       []fileRequest `json:"files" binding:"required,min=1"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files := make([]models.ContentFile, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, models.ContentFile{
			URL:       f.URL,
			MimeType:  f.MimeType,
			Thumbnail: f.Thumbnail,
		})
	}

	content, err := c.contentLogic.CreateContent(logic.NewContentParams{
		CreatorID:   currentUserID(ctx),
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		Category:    req.Category,
		ContentType: req.ContentType,
		TokenPrice:  req.TokenPrice,
		Tags:        req.Tags,
		Visibility:  req.Visibility,
		Files:       files,
	})
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusCreated, content)
}

// List handles GET /content
func (c *ContentController) List(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	contents, total, err := c.contentLogic.ListContents(dao.ContentFilter{
		Type:        ctx.Query("type"),
		Category:    ctx.Query("category"),
		ContentType: ctx.Query("content_type"),
		Search:      ctx.Query("search"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": contents,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// Get handles GET /content/:id
func (c *ContentController) Get(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	content, allowed, err := c.contentLogic.GetContent(id, currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	// Unpurchased premium: metadata only, no file payload.
	if !allowed {
		content.Files = nil
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data":   content,
		"locked": !allowed,
	})
}

// Update handles PATCH /content/:id
func (c *ContentController) Update(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	type Request struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Category    *string `json:"category"`
		ContentType *string `json:"content_type"`
		TokenPrice  *int64  `json:"token_price"`
		Tags        *string `json:"tags"`
		Status      *string `json:"status"`
		Visibility  *string `json:"visibility"`
	}
	var req Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	content, err := c.contentLogic.UpdateContent(id, currentUserID(ctx), dao.ContentUpdate{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ContentType: req.ContentType,
		TokenPrice:  req.TokenPrice,
		Tags:        req.Tags,
		Status:      req.Status,
		Visibility:  req.Visibility,
	})
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, content)
}

// Delete handles DELETE /content/:id
func (c *ContentController) Delete(ctx *gin.Context) {
	id, ok := parseIDParam(ctx)
	if !ok {
		return
	}

	if err := c.contentLogic.DeleteContent(id, currentUserID(ctx)); err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "content deleted successfully"})
}

// CreatorStats handles GET /content/creator/stats
func (c *ContentController) CreatorStats(ctx *gin.Context) {
	stats, err := c.contentLogic.CreatorStats(currentUserID(ctx))
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, stats)
}

// CreatorContent handles GET /content/creator/content
func (c *ContentController) CreatorContent(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "10"))

	contents, total, err := c.contentLogic.ListByCreator(currentUserID(ctx), page, limit)
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"data": contents,
		"pagination": gin.H{
			"page":  page,
			"limit": limit,
			"total": total,
		},
	})
}

// Trending handles GET /content/discover/trending
func (c *ContentController) Trending(ctx *gin.Context) {
	contents, err := c.contentLogic.Trending()
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": contents})
}

// Featured handles GET /content/discover/featured
func (c *ContentController) Featured(ctx *gin.Context) {
	contents, err := c.contentLogic.Featured()
	if err != nil {
		writeError(ctx, c.log, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"data": contents})
}
