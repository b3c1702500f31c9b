package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/turbota/feedsync/internal/domain/catalog"
)

// ShopifyHandler proxies catalog reads for the admin UI so the upstream
// access token never leaves the server.
type ShopifyHandler struct {
	BaseHandler
	source catalog.ProductSource
}

// NewShopifyHandler creates a new ShopifyHandler
func NewShopifyHandler(source catalog.ProductSource) *ShopifyHandler {
	return &ShopifyHandler{source: source}
}

// RegisterRoutes registers shopify proxy routes
func (h *ShopifyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/shopify/products", h.ListProducts)
}

// ListProducts fetches products from the upstream catalog, following
// pagination to exhaustion. Upstream failures pass the upstream status
// through so the admin UI can distinguish auth problems from rate limits.
func (h *ShopifyHandler) ListProducts(c *gin.Context) {
	query := catalog.ProductQuery{
		SinceID:      c.Query("since_id"),
		CollectionID: c.Query("collection_id"),
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			h.BadRequest(c, "Invalid limit")
			return
		}
		query.Limit = limit
	}

	products, err := h.source.FetchProducts(c.Request.Context(), query)
	if err != nil {
		var upstreamErr *catalog.UpstreamError
		if errors.As(err, &upstreamErr) {
			c.JSON(upstreamErr.StatusCode, gin.H{"error": upstreamErr.Error()})
			return
		}
		h.InternalError(c, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"total":    len(products),
	})
}
