package feed

import (
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/turbota/feedsync/internal/domain/shared"
)

// CategoryMapping binds a Shopify collection and/or a set of product type
// strings to one marketplace category. Exactly one of the extra identifiers
// (PortalID, RzID, EpicentrCategoryCode) is meaningful per target; the others
// are ignored by that target's encoder.
type CategoryMapping struct {
	shared.BaseEntity
	MarketplaceID           uuid.UUID      `gorm:"type:uuid;not null;index"`
	ShopifyCollectionID     string         `gorm:"type:varchar(64);index"`
	ShopifyCollectionTitle  string         `gorm:"type:varchar(255)"`
	ShopifyProductTypes     pq.StringArray `gorm:"type:text[]"`
	MarketplaceCategoryID   string         `gorm:"type:varchar(64);not null"`
	MarketplaceCategoryName string         `gorm:"type:varchar(255)"`
	PortalID                string         `gorm:"type:varchar(64)"`
	RzID                    string         `gorm:"type:varchar(64)"`
	EpicentrCategoryCode    string         `gorm:"type:varchar(64)"`
	IsActive                *bool          `gorm:"default:true"`
}

// TableName returns the table name for GORM
func (CategoryMapping) TableName() string {
	return "category_mapping"
}

// NewCategoryMapping creates a mapping for one marketplace.
func NewCategoryMapping(marketplaceID uuid.UUID, marketplaceCategoryID string) (*CategoryMapping, error) {
	if marketplaceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_MARKETPLACE", "Marketplace ID cannot be empty")
	}
	if marketplaceCategoryID == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Marketplace category ID cannot be empty")
	}

	return &CategoryMapping{
		BaseEntity:            shared.NewBaseEntity(),
		MarketplaceID:         marketplaceID,
		MarketplaceCategoryID: marketplaceCategoryID,
	}, nil
}

// CategoryName returns the display name for the mapped category, falling
// back to the source collection title when no explicit name is set.
func (cm *CategoryMapping) CategoryName() string {
	if cm.MarketplaceCategoryName != "" {
		return cm.MarketplaceCategoryName
	}
	return cm.ShopifyCollectionTitle
}

// Disabled reports whether the mapping has been explicitly deactivated.
// A mapping with no activation flag counts as active.
func (cm *CategoryMapping) Disabled() bool {
	return cm.IsActive != nil && !*cm.IsActive
}

// HasTypeList reports whether the mapping declares product type strings.
func (cm *CategoryMapping) HasTypeList() bool {
	return len(cm.ShopifyProductTypes) > 0
}

// ContainsType reports whether the product type is in the mapping's list.
func (cm *CategoryMapping) ContainsType(productType string) bool {
	for _, t := range cm.ShopifyProductTypes {
		if t == productType {
			return true
		}
	}
	return false
}
