package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

func setupTestDB(t *testing.T, models ...any) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models...))

	return db
}

func TestGormMarketplaceRepository(t *testing.T) {
	db := setupTestDB(t, &feed.Marketplace{})
	repo := NewGormMarketplaceRepository(db)
	ctx := context.Background()

	rozetka, err := feed.NewMarketplace("rozetka", "Rozetka")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, rozetka))

	t.Run("FindBySlug", func(t *testing.T) {
		found, err := repo.FindBySlug(ctx, "rozetka")
		require.NoError(t, err)
		assert.Equal(t, rozetka.ID, found.ID)
		assert.Equal(t, "Rozetka", found.Name)
		assert.Equal(t, feed.RoundingMath, found.RoundingRule)
	})

	t.Run("FindBySlug not found", func(t *testing.T) {
		_, err := repo.FindBySlug(ctx, "amazon")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("Save updates pricing", func(t *testing.T) {
		require.NoError(t, rozetka.UpdatePricing(decimal.RequireFromString("1.5"), feed.RoundingDot99))
		require.NoError(t, repo.Save(ctx, rozetka))

		found, err := repo.FindBySlug(ctx, "rozetka")
		require.NoError(t, err)
		assert.True(t, found.GlobalMultiplier.Equal(decimal.RequireFromString("1.5")))
		assert.Equal(t, feed.RoundingDot99, found.RoundingRule)
	})

	t.Run("FindAll ordered by slug", func(t *testing.T) {
		maudau, err := feed.NewMarketplace("maudau", "MAUDAU")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, maudau))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "maudau", all[0].Slug)
		assert.Equal(t, "rozetka", all[1].Slug)
	})

	t.Run("UpdateFeedURL", func(t *testing.T) {
		url := "https://feeds.example.com/api/v1/feeds/rozetka/generate"
		require.NoError(t, repo.UpdateFeedURL(ctx, rozetka.ID, url))

		found, err := repo.FindBySlug(ctx, "rozetka")
		require.NoError(t, err)
		assert.Equal(t, url, found.FeedURL)
	})
}
