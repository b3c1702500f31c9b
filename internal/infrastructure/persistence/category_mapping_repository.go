package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// GormCategoryMappingRepository implements CategoryMappingRepository using GORM
type GormCategoryMappingRepository struct {
	db *gorm.DB
}

// NewGormCategoryMappingRepository creates a new GormCategoryMappingRepository
func NewGormCategoryMappingRepository(db *gorm.DB) *GormCategoryMappingRepository {
	return &GormCategoryMappingRepository{db: db}
}

// FindByID finds a category mapping by its ID
func (r *GormCategoryMappingRepository) FindByID(ctx context.Context, id uuid.UUID) (*feed.CategoryMapping, error) {
	var mapping feed.CategoryMapping
	if err := r.db.WithContext(ctx).First(&mapping, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mapping, nil
}

// FindByMarketplace returns all mappings for a marketplace in creation order.
// Category resolution is first-match, so the order is part of the contract.
func (r *GormCategoryMappingRepository) FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]feed.CategoryMapping, error) {
	var mappings []feed.CategoryMapping
	if err := r.db.WithContext(ctx).
		Where("marketplace_id = ?", marketplaceID).
		Order("created_at ASC").
		Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

// Save creates or updates a category mapping
func (r *GormCategoryMappingRepository) Save(ctx context.Context, mapping *feed.CategoryMapping) error {
	return r.db.WithContext(ctx).Save(mapping).Error
}

// Delete deletes a category mapping
func (r *GormCategoryMappingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&feed.CategoryMapping{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCategoryMappingRepository implements CategoryMappingRepository
var _ feed.CategoryMappingRepository = (*GormCategoryMappingRepository)(nil)
