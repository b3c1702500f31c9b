package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

func TestGormFeedLogRepository(t *testing.T) {
	db := setupTestDB(t, &feed.FeedLog{}, &feed.ValidationError{})
	repo := NewGormFeedLogRepository(db)
	ctx := context.Background()

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	rozetkaRun := feed.NewSuccessLog("rozetka", 120, 4500)
	rozetkaRun.CreatedAt = base
	maudauRun := feed.NewSuccessLog("maudau", 80, 3200)
	maudauRun.CreatedAt = base.Add(time.Minute)
	failedRun := feed.NewErrorLog("rozetka", 900, "Shopify API error: 500")
	failedRun.CreatedAt = base.Add(2 * time.Minute)

	require.NoError(t, repo.Save(ctx, rozetkaRun))
	require.NoError(t, repo.Save(ctx, maudauRun))
	require.NoError(t, repo.Save(ctx, failedRun))

	t.Run("FindRecent newest first", func(t *testing.T) {
		logs, err := repo.FindRecent(ctx, "", 10)
		require.NoError(t, err)
		require.Len(t, logs, 3)
		assert.Equal(t, failedRun.ID, logs[0].ID)
		assert.Equal(t, maudauRun.ID, logs[1].ID)
		assert.Equal(t, rozetkaRun.ID, logs[2].ID)
	})

	t.Run("FindRecent filters by slug", func(t *testing.T) {
		logs, err := repo.FindRecent(ctx, "rozetka", 10)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, feed.FeedStatusError, logs[0].Status)
		assert.Equal(t, "Shopify API error: 500", logs[0].ErrorMessage)
		assert.Equal(t, feed.FeedStatusSuccess, logs[1].Status)
		assert.Equal(t, 120, logs[1].ProductCount)
	})

	t.Run("FindRecent honors limit", func(t *testing.T) {
		logs, err := repo.FindRecent(ctx, "", 1)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, failedRun.ID, logs[0].ID)
	})

	t.Run("validation error batch round trip", func(t *testing.T) {
		batch := []feed.ValidationError{
			{BaseEntity: shared.NewBaseEntity(), MarketplaceSlug: "rozetka", ErrorType: feed.ErrorTypeDraft, ErrorMessage: "Товар у статусі draft", ProductTitle: "Крем"},
			{BaseEntity: shared.NewBaseEntity(), MarketplaceSlug: "rozetka", ErrorType: feed.ErrorTypeZeroPrice, ErrorMessage: "Ціна 0", ProductSKU: "CRM-50", ProductTitle: "Крем"},
		}
		batch[0].CreatedAt = base
		batch[1].CreatedAt = base.Add(time.Second)
		for i := range batch {
			batch[i].FeedLogID = &rozetkaRun.ID
		}
		require.NoError(t, repo.SaveValidationErrors(ctx, batch))

		found, err := repo.FindValidationErrors(ctx, rozetkaRun.ID)
		require.NoError(t, err)
		require.Len(t, found, 2)
		assert.Equal(t, feed.ErrorTypeDraft, found[0].ErrorType)
		assert.Equal(t, "CRM-50", found[1].ProductSKU)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.SaveValidationErrors(ctx, nil))
	})

	t.Run("no validation errors for other runs", func(t *testing.T) {
		found, err := repo.FindValidationErrors(ctx, maudauRun.ID)
		require.NoError(t, err)
		assert.Empty(t, found)
	})
}
