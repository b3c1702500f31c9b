package feed

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/shared"
)

// PriceMultiplier overrides the marketplace's global multiplier for products
// resolved to one source collection.
type PriceMultiplier struct {
	shared.BaseEntity
	MarketplaceID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	ShopifyCollectionID    string          `gorm:"type:varchar(64);not null;index"`
	ShopifyCollectionTitle string          `gorm:"type:varchar(255)"`
	Multiplier             decimal.Decimal `gorm:"type:decimal(10,4);not null;default:1"`
}

// TableName returns the table name for GORM
func (PriceMultiplier) TableName() string {
	return "price_multipliers"
}

// NewPriceMultiplier creates a collection-level multiplier override.
func NewPriceMultiplier(marketplaceID uuid.UUID, shopifyCollectionID string, multiplier decimal.Decimal) (*PriceMultiplier, error) {
	if marketplaceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MARKETPLACE", "Marketplace ID cannot be empty")
	}
	if shopifyCollectionID == "" {
		return nil, shared.NewDomainError("INVALID_COLLECTION", "Shopify collection ID cannot be empty")
	}
	if !multiplier.IsPositive() {
		return nil, shared.NewDomainError("INVALID_MULTIPLIER", "Multiplier must be greater than zero")
	}

	return &PriceMultiplier{
		BaseEntity:          shared.NewBaseEntity(),
		MarketplaceID:       marketplaceID,
		ShopifyCollectionID: shopifyCollectionID,
		Multiplier:          multiplier,
	}, nil
}
