package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// GormMarketplaceRepository implements MarketplaceRepository using GORM
type GormMarketplaceRepository struct {
	db *gorm.DB
}

// NewGormMarketplaceRepository creates a new GormMarketplaceRepository
func NewGormMarketplaceRepository(db *gorm.DB) *GormMarketplaceRepository {
	return &GormMarketplaceRepository{db: db}
}

// FindBySlug finds a marketplace by its slug
func (r *GormMarketplaceRepository) FindBySlug(ctx context.Context, slug string) (*feed.Marketplace, error) {
	var marketplace feed.Marketplace
	if err := r.db.WithContext(ctx).First(&marketplace, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &marketplace, nil
}

// FindAll returns all marketplaces ordered by slug
func (r *GormMarketplaceRepository) FindAll(ctx context.Context) ([]feed.Marketplace, error) {
	var marketplaces []feed.Marketplace
	if err := r.db.WithContext(ctx).Order("slug ASC").Find(&marketplaces).Error; err != nil {
		return nil, err
	}
	return marketplaces, nil
}

// Save creates or updates a marketplace
func (r *GormMarketplaceRepository) Save(ctx context.Context, marketplace *feed.Marketplace) error {
	return r.db.WithContext(ctx).Save(marketplace).Error
}

// UpdateFeedURL records the retrieval URL of the most recent successful run.
// Last writer wins; concurrent runs for the same marketplace write the same value.
func (r *GormMarketplaceRepository) UpdateFeedURL(ctx context.Context, id uuid.UUID, feedURL string) error {
	return r.db.WithContext(ctx).
		Model(&feed.Marketplace{}).
		Where("id = ?", id).
		Update("feed_url", feedURL).Error
}

// Ensure GormMarketplaceRepository implements MarketplaceRepository
var _ feed.MarketplaceRepository = (*GormMarketplaceRepository)(nil)
