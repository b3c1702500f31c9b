package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/feed"
)

// MarketplaceHandler manages marketplace configuration
type MarketplaceHandler struct {
	BaseHandler
	marketplaces feed.MarketplaceRepository
}

// NewMarketplaceHandler creates a new MarketplaceHandler
func NewMarketplaceHandler(marketplaces feed.MarketplaceRepository) *MarketplaceHandler {
	return &MarketplaceHandler{marketplaces: marketplaces}
}

// RegisterRoutes registers marketplace routes
func (h *MarketplaceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	marketplaces := rg.Group("/marketplaces")
	{
		marketplaces.GET("", h.List)
		marketplaces.GET("/:slug", h.Get)
		marketplaces.PUT("/:slug", h.Update)
	}
}

// UpdateMarketplaceRequest updates pricing settings and activation
type UpdateMarketplaceRequest struct {
	GlobalMultiplier *decimal.Decimal `json:"global_multiplier"`
	RoundingRule     *string          `json:"rounding_rule"`
	IsActive         *bool            `json:"is_active"`
}

// MarketplaceResponse is the wire representation of a marketplace
type MarketplaceResponse struct {
	ID               string          `json:"id"`
	Slug             string          `json:"slug"`
	Name             string          `json:"name"`
	IsActive         bool            `json:"is_active"`
	GlobalMultiplier decimal.Decimal `json:"global_multiplier"`
	RoundingRule     string          `json:"rounding_rule"`
	FeedURL          string          `json:"feed_url,omitempty"`
}

func toMarketplaceResponse(m *feed.Marketplace) MarketplaceResponse {
	return MarketplaceResponse{
		ID:               m.ID.String(),
		Slug:             m.Slug,
		Name:             m.Name,
		IsActive:         m.IsActive,
		GlobalMultiplier: m.GlobalMultiplier,
		RoundingRule:     string(m.RoundingRule),
		FeedURL:          m.FeedURL,
	}
}

// List returns all configured marketplaces
func (h *MarketplaceHandler) List(c *gin.Context) {
	marketplaces, err := h.marketplaces.FindAll(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]MarketplaceResponse, 0, len(marketplaces))
	for i := range marketplaces {
		responses = append(responses, toMarketplaceResponse(&marketplaces[i]))
	}
	h.Success(c, responses)
}

// Get returns one marketplace by slug
func (h *MarketplaceHandler) Get(c *gin.Context) {
	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMarketplaceResponse(marketplace))
}

// Update changes pricing settings and/or activation for a marketplace
func (h *MarketplaceHandler) Update(c *gin.Context) {
	var req UpdateMarketplaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if req.GlobalMultiplier != nil || req.RoundingRule != nil {
		multiplier := marketplace.GlobalMultiplier
		if req.GlobalMultiplier != nil {
			multiplier = *req.GlobalMultiplier
		}
		rule := marketplace.RoundingRule
		if req.RoundingRule != nil {
			rule = feed.RoundingRule(*req.RoundingRule)
		}
		if err := marketplace.UpdatePricing(multiplier, rule); err != nil {
			h.HandleError(c, err)
			return
		}
	}
	if req.IsActive != nil {
		marketplace.SetActive(*req.IsActive)
	}

	if err := h.marketplaces.Save(c.Request.Context(), marketplace); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toMarketplaceResponse(marketplace))
}
