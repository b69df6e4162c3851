package logic

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Gdheubs/Apex-club665/apperrors"
	"github.com/Gdheubs/Apex-club665/dao"
	"github.com/Gdheubs/Apex-club665/models"
)

// ContentLogic handles content lifecycle and discovery.
type ContentLogic struct {
	contentDAO *dao.ContentDAO
	access     *AccessLogic
	log        *zap.Logger
}

func NewContentLogic(contentDAO *dao.ContentDAO, access *AccessLogic, log *zap.Logger) *ContentLogic {
	return &ContentLogic{contentDAO: contentDAO, access: access, log: log}
}

// validatePricing enforces the price/type invariant: premium content carries a
// positive token price, free content carries zero.
func validatePricing(contentType string, tokenPrice int64) error {
	switch contentType {
	case models.ContentPremium:
		if tokenPrice <= 0 {
			return apperrors.Validation("token price must be greater than 0 for premium content")
		}
	case models.ContentFree:
		if tokenPrice != 0 {
			return apperrors.Validation("token price must be 0 for free content")
		}
	default:
		return apperrors.Validation("invalid content type")
	}
	return nil
}

// NewContentParams carries the fields accepted at upload time.
type NewContentParams struct {
	CreatorID   uuid.UUID
	Title       string
	Description string
	Type        string
	Category    string
	ContentType string
	TokenPrice  int64
	Tags        string
	Visibility  string
	Files       []models.ContentFile
}

// CreateContent validates and persists a new content item.
func (l *ContentLogic) CreateContent(p NewContentParams) (*models.Content, error) {
	if p.Type != models.TypeImage && p.Type != models.TypeVideo && p.Type != models.TypeArticle {
		return nil, apperrors.Validation("invalid media type")
	}
	if !slices.Contains(models.Categories, p.Category) {
		return nil, apperrors.Validation("invalid category")
	}
	if p.ContentType == "" {
		p.ContentType = models.ContentFree
	}
	if err := validatePricing(p.ContentType, p.TokenPrice); err != nil {
		return nil, err
	}
	if p.Visibility == "" {
		p.Visibility = models.VisibilityPublic
	}

	content := &models.Content{
		CreatorID:   p.CreatorID,
		Title:       strings.TrimSpace(p.Title),
		Description: strings.TrimSpace(p.Description),
		Type:        p.Type,
		Category:    p.Category,
		ContentType: p.ContentType,
		TokenPrice:  p.TokenPrice,
		Tags:        p.Tags,
		Status:      models.ContentPublished,
		Visibility:  p.Visibility,
		Files:       p.Files,
	}
	if err := l.contentDAO.CreateContent(content); err != nil {
		return nil, err
	}

	l.log.Info("content created",
		zap.String("content_id", content.ID.String()),
		zap.String("creator_id", p.CreatorID.String()),
		zap.String("content_type", content.ContentType))

	return content, nil
}

// GetContent fetches a single content item for a viewer and reports whether
// the viewer may consume it. Unpurchased premium items still expose their
// metadata, but the caller must withhold the file payload when access is
// denied. Each fetch counts one view.
func (l *ContentLogic) GetContent(id, viewerID uuid.UUID) (*models.Content, bool, error) {
	content, err := l.contentDAO.GetContentByID(id)
	if err != nil {
		return nil, false, err
	}

	allowed, err := l.access.CanAccess(content, viewerID)
	if err != nil {
		return nil, false, err
	}

	// Listing visibility still applies to the single-item fetch: outsiders
	// do not learn that unpublished or non-public content exists.
	isOwner := viewerID != uuid.Nil && viewerID == content.CreatorID
	if !isOwner && (content.Status != models.ContentPublished || content.Visibility != models.VisibilityPublic) {
		return nil, false, apperrors.ErrContentNotFound
	}

	if err := l.contentDAO.IncrementViews(id); err != nil {
		l.log.Warn("view counter update failed", zap.String("content_id", id.String()), zap.Error(err))
	}

	return content, allowed, nil
}

// ListContents returns the public published feed matching the filter.
func (l *ContentLogic) ListContents(f dao.ContentFilter) ([]models.Content, int64, error) {
	f.Status = models.ContentPublished
	f.Visibility = models.VisibilityPublic
	return l.contentDAO.ListContents(f)
}

// ListByCreator returns all of one creator's own content, any status.
func (l *ContentLogic) ListByCreator(creatorID uuid.UUID, page, limit int) ([]models.Content, int64, error) {
	return l.contentDAO.ListContents(dao.ContentFilter{
		CreatorID: creatorID,
		Page:      page,
		Limit:     limit,
	})
}

// UpdateContent applies a partial update after an ownership check. The
// resulting price/type combination is re-validated.
func (l *ContentLogic) UpdateContent(id, callerID uuid.UUID, upd dao.ContentUpdate) (*models.Content, error) {
	content, err := l.contentDAO.GetContentByID(id)
	if err != nil {
		return nil, err
	}
	if content.CreatorID != callerID {
		return nil, apperrors.ErrForbidden
	}

	contentType := content.ContentType
	if upd.ContentType != nil {
		contentType = *upd.ContentType
	}
	tokenPrice := content.TokenPrice
	if upd.TokenPrice != nil {
		tokenPrice = *upd.TokenPrice
	}
	// Switching to free without an explicit price resets it.
	if upd.ContentType != nil && *upd.ContentType == models.ContentFree && upd.TokenPrice == nil {
		tokenPrice = 0
		upd.TokenPrice = &tokenPrice
	}
	if err := validatePricing(contentType, tokenPrice); err != nil {
		return nil, err
	}

	if err := l.contentDAO.ApplyUpdate(id, upd); err != nil {
		return nil, err
	}
	return l.contentDAO.GetContentByID(id)
}

// DeleteContent removes a content item after an ownership check.
func (l *ContentLogic) DeleteContent(id, callerID uuid.UUID) error {
	content, err := l.contentDAO.GetContentByID(id)
	if err != nil {
		return err
	}
	if content.CreatorID != callerID {
		return apperrors.ErrForbidden
	}
	return l.contentDAO.DeleteContent(id)
}

// CreatorStats aggregates totals across the creator's content.
func (l *ContentLogic) CreatorStats(creatorID uuid.UUID) (*dao.CreatorStats, error) {
	return l.contentDAO.GetCreatorStats(creatorID)
}

// Trending returns the most viewed public contents.
func (l *ContentLogic) Trending() ([]models.Content, error) {
	return l.contentDAO.TrendingContents(10)
}

// Featured returns the top earning premium contents.
func (l *ContentLogic) Featured() ([]models.Content, error) {
	return l.contentDAO.FeaturedContents(5)
}
