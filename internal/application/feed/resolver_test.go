package feed

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turbota/feedsync/internal/domain/feed"
)

func TestResolveByCollection(t *testing.T) {
	mappings := []feed.CategoryMapping{
		{ShopifyCollectionID: "111", ShopifyCollectionTitle: "Креми", MarketplaceCategoryID: "cat-creams"},
		{ShopifyCollectionID: "222", ShopifyCollectionTitle: "Шампуні", MarketplaceCategoryID: "cat-shampoo"},
	}

	t.Run("matches by collection title", func(t *testing.T) {
		got := resolveByCollection("Шампуні", mappings)
		require.NotNil(t, got)
		assert.Equal(t, "cat-shampoo", got.MarketplaceCategoryID)
	})

	t.Run("matches by collection id", func(t *testing.T) {
		got := resolveByCollection("111", mappings)
		require.NotNil(t, got)
		assert.Equal(t, "cat-creams", got.MarketplaceCategoryID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, resolveByCollection("Олії", mappings))
	})

	t.Run("first match wins", func(t *testing.T) {
		dup := append([]feed.CategoryMapping{
			{ShopifyCollectionTitle: "Креми", MarketplaceCategoryID: "cat-first"},
		}, mappings...)
		got := resolveByCollection("Креми", dup)
		require.NotNil(t, got)
		assert.Equal(t, "cat-first", got.MarketplaceCategoryID)
	})
}

func TestResolveByTypeList(t *testing.T) {
	mappings := []feed.CategoryMapping{
		{
			ShopifyCollectionTitle: "Догляд",
			ShopifyProductTypes:    pq.StringArray{"Креми", "Лосьйони"},
			MarketplaceCategoryID:  "cat-care",
		},
		{
			ShopifyCollectionTitle: "Шампуні",
			MarketplaceCategoryID:  "cat-shampoo",
		},
	}

	t.Run("matches by type list membership", func(t *testing.T) {
		got := resolveByTypeList("Лосьйони", mappings)
		require.NotNil(t, got)
		assert.Equal(t, "cat-care", got.MarketplaceCategoryID)
	})

	t.Run("type list does not fall back to its own title", func(t *testing.T) {
		// "Догляд" is the first mapping's title but not in its type list,
		// so the first mapping must not match.
		assert.Nil(t, resolveByTypeList("Догляд", mappings))
	})

	t.Run("mapping without type list matches by title", func(t *testing.T) {
		got := resolveByTypeList("Шампуні", mappings)
		require.NotNil(t, got)
		assert.Equal(t, "cat-shampoo", got.MarketplaceCategoryID)
	})

	t.Run("empty product type skips type lists and compares titles", func(t *testing.T) {
		withEmptyTitle := []feed.CategoryMapping{
			{
				ShopifyProductTypes:    pq.StringArray{"Креми"},
				ShopifyCollectionTitle: "",
				MarketplaceCategoryID:  "cat-first",
			},
		}
		got := resolveByTypeList("", withEmptyTitle)
		require.NotNil(t, got)
		assert.Equal(t, "cat-first", got.MarketplaceCategoryID)
	})

	t.Run("no match", func(t *testing.T) {
		assert.Nil(t, resolveByTypeList("Олії", mappings))
	})
}
