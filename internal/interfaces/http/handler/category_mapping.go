package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/turbota/feedsync/internal/domain/feed"
)

// CategoryMappingHandler manages category mappings per marketplace
type CategoryMappingHandler struct {
	BaseHandler
	mappings     feed.CategoryMappingRepository
	marketplaces feed.MarketplaceRepository
}

// NewCategoryMappingHandler creates a new CategoryMappingHandler
func NewCategoryMappingHandler(mappings feed.CategoryMappingRepository, marketplaces feed.MarketplaceRepository) *CategoryMappingHandler {
	return &CategoryMappingHandler{mappings: mappings, marketplaces: marketplaces}
}

// RegisterRoutes registers category mapping routes
func (h *CategoryMappingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/marketplaces/:slug/mappings", h.List)
	mappings := rg.Group("/mappings")
	{
		mappings.POST("", h.Create)
		mappings.PUT("/:id", h.Update)
		mappings.DELETE("/:id", h.Delete)
	}
}

// CategoryMappingRequest creates or updates a mapping
type CategoryMappingRequest struct {
	MarketplaceSlug         string   `json:"marketplace_slug" binding:"required"`
	ShopifyCollectionID     string   `json:"shopify_collection_id"`
	ShopifyCollectionTitle  string   `json:"shopify_collection_title"`
	ShopifyProductTypes     []string `json:"shopify_product_types"`
	MarketplaceCategoryID   string   `json:"marketplace_category_id" binding:"required"`
	MarketplaceCategoryName string   `json:"marketplace_category_name"`
	PortalID                string   `json:"portal_id"`
	RzID                    string   `json:"rz_id"`
	EpicentrCategoryCode    string   `json:"epicentr_category_code"`
	IsActive                *bool    `json:"is_active"`
}

// CategoryMappingResponse is the wire representation of a mapping
type CategoryMappingResponse struct {
	ID                      string   `json:"id"`
	MarketplaceID           string   `json:"marketplace_id"`
	ShopifyCollectionID     string   `json:"shopify_collection_id,omitempty"`
	ShopifyCollectionTitle  string   `json:"shopify_collection_title,omitempty"`
	ShopifyProductTypes     []string `json:"shopify_product_types,omitempty"`
	MarketplaceCategoryID   string   `json:"marketplace_category_id"`
	MarketplaceCategoryName string   `json:"marketplace_category_name,omitempty"`
	PortalID                string   `json:"portal_id,omitempty"`
	RzID                    string   `json:"rz_id,omitempty"`
	EpicentrCategoryCode    string   `json:"epicentr_category_code,omitempty"`
	IsActive                *bool    `json:"is_active"`
}

func toCategoryMappingResponse(cm *feed.CategoryMapping) CategoryMappingResponse {
	return CategoryMappingResponse{
		ID:                      cm.ID.String(),
		MarketplaceID:           cm.MarketplaceID.String(),
		ShopifyCollectionID:     cm.ShopifyCollectionID,
		ShopifyCollectionTitle:  cm.ShopifyCollectionTitle,
		ShopifyProductTypes:     cm.ShopifyProductTypes,
		MarketplaceCategoryID:   cm.MarketplaceCategoryID,
		MarketplaceCategoryName: cm.MarketplaceCategoryName,
		PortalID:                cm.PortalID,
		RzID:                    cm.RzID,
		EpicentrCategoryCode:    cm.EpicentrCategoryCode,
		IsActive:                cm.IsActive,
	}
}

// List returns all mappings for a marketplace, in resolution order
func (h *CategoryMappingHandler) List(c *gin.Context) {
	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	mappings, err := h.mappings.FindByMarketplace(c.Request.Context(), marketplace.ID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	responses := make([]CategoryMappingResponse, 0, len(mappings))
	for i := range mappings {
		responses = append(responses, toCategoryMappingResponse(&mappings[i]))
	}
	h.Success(c, responses)
}

// Create adds a mapping for a marketplace
func (h *CategoryMappingHandler) Create(c *gin.Context) {
	var req CategoryMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	marketplace, err := h.marketplaces.FindBySlug(c.Request.Context(), req.MarketplaceSlug)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	mapping, err := feed.NewCategoryMapping(marketplace.ID, req.MarketplaceCategoryID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.applyRequest(mapping, &req)

	if err := h.mappings.Save(c.Request.Context(), mapping); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, toCategoryMappingResponse(mapping))
}

// Update replaces the mutable fields of a mapping
func (h *CategoryMappingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID")
		return
	}

	var req CategoryMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	mapping, err := h.mappings.FindByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	mapping.MarketplaceCategoryID = req.MarketplaceCategoryID
	h.applyRequest(mapping, &req)

	if err := h.mappings.Save(c.Request.Context(), mapping); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, toCategoryMappingResponse(mapping))
}

// Delete removes a mapping
func (h *CategoryMappingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID")
		return
	}

	if err := h.mappings.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CategoryMappingHandler) applyRequest(mapping *feed.CategoryMapping, req *CategoryMappingRequest) {
	mapping.ShopifyCollectionID = req.ShopifyCollectionID
	mapping.ShopifyCollectionTitle = req.ShopifyCollectionTitle
	mapping.ShopifyProductTypes = pq.StringArray(req.ShopifyProductTypes)
	mapping.MarketplaceCategoryName = req.MarketplaceCategoryName
	mapping.PortalID = req.PortalID
	mapping.RzID = req.RzID
	mapping.EpicentrCategoryCode = req.EpicentrCategoryCode
	mapping.IsActive = req.IsActive
}
