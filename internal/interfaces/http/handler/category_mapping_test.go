package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

func mappingTestRouter(mappings *stubMappings, marketplaces *stubMarketplaces) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1")
	NewCategoryMappingHandler(mappings, marketplaces).RegisterRoutes(group)
	return engine
}

func TestCategoryMappingList(t *testing.T) {
	marketplace := activeRozetka()
	marketplaces := &stubMarketplaces{bySlug: map[string]*feed.Marketplace{"rozetka": marketplace}}
	mappings := &stubMappings{mappings: []feed.CategoryMapping{{
		BaseEntity:             shared.NewBaseEntity(),
		MarketplaceID:          marketplace.ID,
		ShopifyCollectionTitle: "Креми",
		MarketplaceCategoryID:  "123",
		RzID:                   "rz9",
	}}}
	router := mappingTestRouter(mappings, marketplaces)

	t.Run("lists mappings", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplaces/rozetka/mappings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]any)
		require.Len(t, items, 1)
		entry := items[0].(map[string]any)
		assert.Equal(t, "123", entry["marketplace_category_id"])
		assert.Equal(t, "rz9", entry["rz_id"])
	})

	t.Run("unknown marketplace", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/marketplaces/amazon/mappings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryMappingCreate(t *testing.T) {
	marketplace := activeRozetka()
	marketplaces := &stubMarketplaces{bySlug: map[string]*feed.Marketplace{"rozetka": marketplace}}

	t.Run("creates mapping", func(t *testing.T) {
		mappings := &stubMappings{}
		router := mappingTestRouter(mappings, marketplaces)

		body := `{
			"marketplace_slug": "rozetka",
			"marketplace_category_id": "123",
			"shopify_product_types": ["Креми", "Лосьйони"],
			"rz_id": "rz9"
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, mappings.mappings, 1)
		created := mappings.mappings[0]
		assert.Equal(t, marketplace.ID, created.MarketplaceID)
		assert.Equal(t, []string{"Креми", "Лосьйони"}, []string(created.ShopifyProductTypes))
		assert.Equal(t, "rz9", created.RzID)
	})

	t.Run("missing category id", func(t *testing.T) {
		mappings := &stubMappings{}
		router := mappingTestRouter(mappings, marketplaces)

		body := `{"marketplace_slug": "rozetka"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, mappings.mappings)
	})

	t.Run("unknown marketplace", func(t *testing.T) {
		mappings := &stubMappings{}
		router := mappingTestRouter(mappings, marketplaces)

		body := `{"marketplace_slug": "amazon", "marketplace_category_id": "123"}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/mappings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCategoryMappingDeleteEndpoint(t *testing.T) {
	marketplace := activeRozetka()
	marketplaces := &stubMarketplaces{bySlug: map[string]*feed.Marketplace{"rozetka": marketplace}}
	existing := feed.CategoryMapping{
		BaseEntity:            shared.NewBaseEntity(),
		MarketplaceID:         marketplace.ID,
		MarketplaceCategoryID: "123",
	}

	t.Run("deletes mapping", func(t *testing.T) {
		mappings := &stubMappings{mappings: []feed.CategoryMapping{existing}}
		router := mappingTestRouter(mappings, marketplaces)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/"+existing.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, mappings.mappings)
	})

	t.Run("missing mapping", func(t *testing.T) {
		mappings := &stubMappings{}
		router := mappingTestRouter(mappings, marketplaces)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/"+existing.ID.String(), nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		mappings := &stubMappings{}
		router := mappingTestRouter(mappings, marketplaces)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/mappings/not-a-uuid", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
