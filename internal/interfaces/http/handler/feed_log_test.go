package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

func feedLogTestRouter(logs *stubLogs) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/api/v1")
	NewFeedLogHandler(logs).RegisterRoutes(group)
	return engine
}

func TestFeedLogList(t *testing.T) {
	logs := &stubLogs{logs: []feed.FeedLog{
		*feed.NewSuccessLog("rozetka", 120, 4500),
		*feed.NewErrorLog("maudau", 900, "Shopify API error: 500"),
	}}
	router := feedLogTestRouter(logs)

	t.Run("lists runs", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed-logs", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]any)
		require.Len(t, items, 2)
		first := items[0].(map[string]any)
		assert.Equal(t, "rozetka", first["marketplace_slug"])
		assert.Equal(t, "success", first["status"])
		assert.Equal(t, float64(120), first["product_count"])
	})

	t.Run("filters by marketplace", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed-logs?marketplace=maudau", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]any)
		require.Len(t, items, 1)
		entry := items[0].(map[string]any)
		assert.Equal(t, "error", entry["status"])
		assert.Equal(t, "Shopify API error: 500", entry["error_message"])
	})

	t.Run("invalid limit", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed-logs?limit=0", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFeedLogListValidationErrors(t *testing.T) {
	run := feed.NewSuccessLog("rozetka", 10, 1200)
	rejection := feed.ValidationError{
		BaseEntity:      shared.NewBaseEntity(),
		FeedLogID:       &run.ID,
		MarketplaceSlug: "rozetka",
		ErrorType:       feed.ErrorTypeZeroPrice,
		ErrorMessage:    "Ціна 0",
		ProductSKU:      "CRM-50",
		ProductTitle:    "Крем для рук",
	}
	logs := &stubLogs{logs: []feed.FeedLog{*run}, validation: []feed.ValidationError{rejection}}
	router := feedLogTestRouter(logs)

	t.Run("lists rejections for one run", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed-logs/"+run.ID.String()+"/errors", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		items := resp.Data.([]any)
		require.Len(t, items, 1)
		entry := items[0].(map[string]any)
		assert.Equal(t, "zero_price", entry["error_type"])
		assert.Equal(t, "Ціна 0", entry["error_message"])
		assert.Equal(t, "CRM-50", entry["product_sku"])
	})

	t.Run("invalid id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed-logs/not-a-uuid/errors", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
