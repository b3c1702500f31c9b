package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appfeed "github.com/turbota/feedsync/internal/application/feed"
)

// feedContentType is the content type of a generated feed document
const feedContentType = "application/xml; charset=utf-8"

// FeedHandler serves feed generation requests
type FeedHandler struct {
	BaseHandler
	service *appfeed.Service
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(service *appfeed.Service) *FeedHandler {
	return &FeedHandler{service: service}
}

// RegisterRoutes registers feed routes. Generation answers both GET and POST:
// marketplaces poll the URL with GET, the admin UI triggers runs with POST.
func (h *FeedHandler) RegisterRoutes(rg *gin.RouterGroup) {
	feeds := rg.Group("/feeds")
	{
		feeds.GET("/:slug/generate", h.Generate)
		feeds.POST("/:slug/generate", h.Generate)
	}
}

// Generate runs a full feed generation pass and streams the XML document.
// Failures answer with the legacy JSON error shape consumed by the admin UI.
func (h *FeedHandler) Generate(c *gin.Context) {
	slug := c.Param("slug")

	result, err := h.service.Generate(c.Request.Context(), slug)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, appfeed.ErrUnknownMarketplace) {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error(), "product_count": 0})
		return
	}

	c.Data(http.StatusOK, feedContentType, []byte(result.XML))
}
