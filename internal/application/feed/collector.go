package feed

import (
	"github.com/turbota/feedsync/internal/domain/catalog"
	"github.com/turbota/feedsync/internal/domain/feed"
	"github.com/turbota/feedsync/internal/domain/shared"
)

// Operator-facing rejection messages, kept in the catalog owner's language.
const (
	msgDraft      = "Товар у статусі draft"
	msgNoImage    = "Немає фото"
	msgNoCategory = "Немає mapping категорії"
	msgZeroPrice  = "Ціна 0"
)

// Collector accumulates validation errors during a run without halting it.
// Rejections are data, not control flow; the collected batch is persisted
// once after the full pass, linked to the run's FeedLog.
type Collector struct {
	slug   string
	errors []feed.ValidationError
}

// NewCollector creates a collector for one marketplace run
func NewCollector(slug string) *Collector {
	return &Collector{slug: slug}
}

// RejectProduct records a product-level rejection. The whole product and all
// of its variants are discarded from the feed.
func (c *Collector) RejectProduct(errorType feed.ErrorType, message string, product *catalog.Product) {
	c.errors = append(c.errors, feed.ValidationError{
		BaseEntity:      shared.NewBaseEntity(),
		MarketplaceSlug: c.slug,
		ErrorType:       errorType,
		ErrorMessage:    message,
		ProductTitle:    product.Title,
	})
}

// RejectVariant records a variant-level rejection. Sibling variants of the
// same product are still processed.
func (c *Collector) RejectVariant(errorType feed.ErrorType, message string, product *catalog.Product, variant *catalog.Variant) {
	c.errors = append(c.errors, feed.ValidationError{
		BaseEntity:      shared.NewBaseEntity(),
		MarketplaceSlug: c.slug,
		ErrorType:       errorType,
		ErrorMessage:    message,
		ProductSKU:      variant.SKU,
		ProductTitle:    product.Title,
	})
}

// Errors returns the collected rejections in recording order
func (c *Collector) Errors() []feed.ValidationError {
	return c.errors
}

// Len returns the number of recorded rejections
func (c *Collector) Len() int {
	return len(c.errors)
}
