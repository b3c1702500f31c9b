package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// GormPriceMultiplierRepository implements PriceMultiplierRepository using GORM
type GormPriceMultiplierRepository struct {
	db *gorm.DB
}

// NewGormPriceMultiplierRepository creates a new GormPriceMultiplierRepository
func NewGormPriceMultiplierRepository(db *gorm.DB) *GormPriceMultiplierRepository {
	return &GormPriceMultiplierRepository{db: db}
}

// FindByID finds a price multiplier by its ID
func (r *GormPriceMultiplierRepository) FindByID(ctx context.Context, id uuid.UUID) (*feed.PriceMultiplier, error) {
	var multiplier feed.PriceMultiplier
	if err := r.db.WithContext(ctx).First(&multiplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &multiplier, nil
}

// FindByMarketplace returns all collection overrides for a marketplace
func (r *GormPriceMultiplierRepository) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]feed.PriceMultiplier, error) {
	var multipliers []feed.PriceMultiplier
	if err := r.db.WithContext(ctx).
		Where("marketplace_id = ?", marketplaceID).
		Order("created_at ASC").
		Find(&multipliers).Error; err != nil {
		return nil, err
	}
	return multipliers, nil
}

// Save creates or updates a price multiplier
func (r *GormPriceMultiplierRepository) Save(ctx context.Context, multiplier *feed.PriceMultiplier) error {
	return r.db.WithContext(ctx).Save(multiplier).Error
}

// Delete deletes a price multiplier
func (r *GormPriceMultiplierRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feed.PriceMultiplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormPriceMultiplierRepository implements PriceMultiplierRepository
var _ feed.PriceMultiplierRepository = (*GormPriceMultiplierRepository)(nil)
