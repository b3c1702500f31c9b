package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// PriceMultiplierHandler manages collection-level multiplier overrides
type PriceMultiplierHandler struct {
	BaseHandler
	multipliers  feed.PriceMultiplierRepository
	marketplaces feed.MarketplaceRepository
}

// NewPriceMultiplierHandler creates a new PriceMultiplierHandler
func NewPriceMultiplierHandler(multipliers feed.PriceMultiplierRepository, marketplaces feed.MarketplaceRepository) *PriceMultiplierHandler {
	return &PriceMultiplierHandler{multipliers: multipliers, marketplaces: marketplaces}
}

// RegisterRoutes registers price multiplier routes
func (h *PriceMultiplierHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/marketplaces/:slug/multipliers", h.List)
	multipliers := rg.Group("/multipliers")
	{
		multipliers.POST("", h.Create)
		multipliers.PUT("/:id", h.Update)
		multipliers.DELETE("/:id", h.Delete)
	}
}

// PriceMultiplierRequest creates or updates a multiplier override
type PriceMultiplierRequest struct {
	MarketplaceSlug        string          `json:"marketplace_slug" binding:"required"`
	ShopifyCollectionID    string          `json:"shopify_collection_id" binding:"required"`
	ShopifyCollectionTitle string          `json:"shopify_collection_title"`
	Multiplier             decimal.Decimal `json:"multiplier"`
}

// PriceMultiplierResponse is the wire representation of a multiplier override
type PriceMultiplierResponse struct {
	ID                     string          `json:"id"`
	MarketplaceID          string          `json:"marketplace_id"`
	ShopifyCollectionID    string          `json:"shopify_collection_id"`
	ShopifyCollectionTitle string          `json:"shopify_collection_title,omitempty"`
	Multiplier             decimal.Decimal `json:"multiplier"`
}

func toPriceMultiplierResponse(pm *feed.PriceMultiplier) PriceMultiplierResponse {
	return PriceMultiplierResponse{
		ID:                     pm.ID.String(),
		MarketplaceID:          pm.MarketplaceID.String(),
		ShopifyCollectionID:    pm.ShopifyCollectionID,
		ShopifyCollectionTitle: pm.ShopifyCollectionTitle,
		Multiplier:             pm.Multiplier,
	}
}

// List returns all multiplier overrides for a marketplace
func (h *PriceMultiplierHandler) List(c *gin.Context) {
	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	multipliers, err := h.multipliers.FindByMarketplace(c.Request.Context(), marketplace.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]PriceMultiplierResponse, 0, len(multipliers))
	for i := range multipliers {
		responses = append(responses, toPriceMultiplierResponse(&multipliers[i]))
	}
	h.Success(c, responses)
}

// Create adds a multiplier override
func (h *PriceMultiplierHandler) Create(c *gin.Context) {
	var req PriceMultiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), req.MarketplaceSlug)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	multiplier, err := feed.NewPriceMultiplier(marketplace.ID, req.ShopifyCollectionID, req.Multiplier)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	multiplier.ShopifyCollectionTitle = req.ShopifyCollectionTitle

	if err := h.multipliers.Save(c.Request.Context(), multiplier); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toPriceMultiplierResponse(multiplier))
}

// Update replaces the mutable fields of a multiplier override
func (h *PriceMultiplierHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid multiplier ID")
		return
	}

	var req PriceMultiplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if !req.Multiplier.IsPositive() {
		h.HandleError(c, shared.NewDomainError("INVALID_MULTIPLIER", "Multiplier must be greater than zero"))
		return
	}

	multiplier, err := h.multipliers.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	multiplier.ShopifyCollectionID = req.ShopifyCollectionID
	multiplier.ShopifyCollectionTitle = req.ShopifyCollectionTitle
	multiplier.Multiplier = req.Multiplier

	if err := h.multipliers.Save(c.Request.Context(), multiplier); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toPriceMultiplierResponse(multiplier))
}

// Delete removes a multiplier override
func (h *PriceMultiplierHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid multiplier ID")
		return
	}

	if err := h.multipliers.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
