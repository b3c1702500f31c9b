package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/turbota/feedsync/internal/domain/feed"
)

// defaultLogLimit is how many runs the dashboard shows by default
const defaultLogLimit = 50

// FeedLogHandler serves run history and validation errors
type FeedLogHandler struct {
	BaseHandler
	logs feed.FeedLogRepository
}

// NewFeedLogHandler creates a new FeedLogHandler
func NewFeedLogHandler(logs feed.FeedLogRepository) *FeedLogHandler {
	return &FeedLogHandler{logs: logs}
}

// RegisterRoutes registers feed log routes
func (h *FeedLogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	logs := rg.Group("/feed-logs")
	{
		logs.GET("", h.List)
		logs.GET("/:id/errors", h.ListValidationErrors)
	}
}

// FeedLogResponse is the wire representation of one run
type FeedLogResponse struct {
	ID              string    `json:"id"`
	MarketplaceSlug string    `json:"marketplace_slug"`
	Status          string    `json:"status"`
	ProductCount    int       `json:"product_count"`
	DurationMs      int64     `json:"duration_ms"`
	ErrorMessage    string    `json:"error_message,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ValidationErrorResponse is the wire representation of one rejection
type ValidationErrorResponse struct {
	ID           string `json:"id"`
	ErrorType    string `json:"error_type"`
	ErrorMessage string `json:"error_message"`
	ProductSKU   string `json:"product_sku,omitempty"`
	ProductTitle string `json:"product_title,omitempty"`
}

// List returns the latest runs, newest first. Optional query parameters:
// marketplace (slug filter) and limit.
func (h *FeedLogHandler) List(c *gin.Context) {
	slug := c.Query("marketplace")
	limit := defaultLogLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		limit = parsed
	}

	logs, err := h.logs.FindRecent(c.Request.Context(), slug, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]FeedLogResponse, 0, len(logs))
	for i := range logs {
		l := &logs[i]
		responses = append(responses, FeedLogResponse{
			ID:              l.ID.String(),
			MarketplaceSlug: l.MarketplaceSlug,
			Status:          string(l.Status),
			ProductCount:    l.ProductCount,
			DurationMs:      l.DurationMs,
			ErrorMessage:    l.ErrorMessage,
			CreatedAt:       l.CreatedAt,
		})
	}
	h.Success(c, responses)
}

// ListValidationErrors returns every rejection recorded for one run
func (h *FeedLogHandler) ListValidationErrors(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid feed log ID")
		return
	}

	validationErrors, err := h.logs.FindValidationErrors(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]ValidationErrorResponse, 0, len(validationErrors))
	for i := range validationErrors {
		ve := &validationErrors[i]
		responses = append(responses, ValidationErrorResponse{
			ID:           ve.ID.String(),
			ErrorType:    string(ve.ErrorType),
			ErrorMessage: ve.ErrorMessage,
			ProductSKU:   ve.ProductSKU,
			ProductTitle: ve.ProductTitle,
		})
	}
	h.Success(c, responses)
}
