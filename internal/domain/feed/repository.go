package feed

import (
	"context"

	"github.com/google/uuid"
)

// MarketplaceRepository provides access to marketplace configuration rows.
type MarketplaceRepository interface {
	FindBySlug(ctx context.Context, slug string) (*Marketplace, error)
	FindAll(ctx context.Context) ([]Marketplace, error)
	Save(ctx context.Context, marketplace *Marketplace) error
	UpdateFeedURL(ctx context.Context, id uuid.UUID, feedURL string) error
}

// CategoryMappingRepository provides access to category mappings.
// FindByMarketplace returns mappings in stored order; resolution is
// first-match in that order.
type CategoryMappingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CategoryMapping, error)
	FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]CategoryMapping, error)
	Save(ctx context.Context, mapping *CategoryMapping) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PriceMultiplierRepository provides access to collection multiplier overrides.
type PriceMultiplierRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PriceMultiplier, error)
	FindByMarketplace(ctx context.Context, marketplaceID uuid.UUID) ([]PriceMultiplier, error)
	Save(ctx context.Context, multiplier *PriceMultiplier) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FeedLogRepository persists run summaries and their validation errors.
type FeedLogRepository interface {
	Save(ctx context.Context, log *FeedLog) error
	SaveValidationErrors(ctx context.Context, errors []ValidationError) error
	FindRecent(ctx context.Context, slug string, limit int) ([]FeedLog, error)
	FindValidationErrors(ctx context.Context, feedLogID uuid.UUID) ([]ValidationError, error)
}
