package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/turbota/feedsync/internal/domain/catalog"
	"github.com/turbota/feedsync/internal/domain/feed"
)

// Category is one entry of a feed's standalone category listing.
type Category struct {
	ID      string
	Name    string
	ExtraID string // rz_id or portal_id, depending on the target
}

// Offer is one validated, transformed, categorized variant ready to be
// rendered as a feed fragment.
type Offer struct {
	Product  *catalog.Product
	Variant  *catalog.Variant
	Category Category
	Price    decimal.Decimal
	// OldPrice is set only when the transformed compare-at price is
	// strictly greater than the final price.
	OldPrice *decimal.Decimal
}

// Encoder is the per-marketplace strategy: how categories resolve, how one
// offer fragment renders and how the complete document is assembled. The
// shared pipeline in Service drives all targets through this interface so
// the draft/image/price logic cannot drift between them.
type Encoder interface {
	Slug() string

	// ResolveCategory returns the first mapping matching the product type,
	// or nil when none matches.
	ResolveCategory(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping

	// SkipDisabled reports whether a matched but deactivated mapping drops
	// the product silently, without a validation row.
	SkipDisabled() bool

	// Category projects a resolved mapping into this target's category entry.
	Category(mapping *feed.CategoryMapping) Category

	// EncodeOffer renders one offer fragment.
	EncodeOffer(offer *Offer) string

	// Envelope assembles the complete document from the rendered fragments
	// and the deduplicated category listing. generatedAt is the moment the
	// document is finalized.
	Envelope(fragments []string, categories []Category, generatedAt time.Time) string
}

// categoryIndex deduplicates the standalone category listing by category id,
// first seen wins, preserving insertion order.
type categoryIndex struct {
	seen  map[string]struct{}
	order []Category
}

func newCategoryIndex() *categoryIndex {
	return &categoryIndex{seen: make(map[string]struct{})}
}

func (ci *categoryIndex) Add(c Category) {
	if _, ok := ci.seen[c.ID]; ok {
		return
	}
	ci.seen[c.ID] = struct{}{}
	ci.order = append(ci.order, c)
}

func (ci *categoryIndex) List() []Category {
	return ci.order
}

// offerName composes the offer display name: the product title plus the
// variant title, unless the variant is the option-less sentinel.
func offerName(p *catalog.Product, v *catalog.Variant) string {
	if v.HasDefaultTitle() {
		return p.Title
	}
	return p.Title + " " + v.Title
}

// compositeOfferID is the product-id/variant-id offer identifier used when a
// target does not key offers by SKU, or as the fallback when SKU is absent.
func compositeOfferID(p *catalog.Product, v *catalog.Variant) string {
	return fmt.Sprintf("%d-%d", p.ID, v.ID)
}

// writeOptionParams emits one <param> per declared product option,
// zip-matching option names against the variant's positional values. A count
// mismatch silently produces fewer params.
func writeOptionParams(b *strings.Builder, p *catalog.Product, v *catalog.Variant) {
	if v.HasDefaultTitle() {
		return
	}
	values := v.OptionValues()
	for i, opt := range p.Options {
		if opt.Name == "" || i >= len(values) || values[i] == "" {
			continue
		}
		b.WriteString(`      <param name="` + escapeXML(opt.Name) + `">` + escapeXML(values[i]) + "</param>\n")
	}
}

// writePictures emits the picture list, capped at max entries when max > 0.
func writePictures(b *strings.Builder, images []catalog.Image, max int) {
	if max > 0 && len(images) > max {
		images = images[:max]
	}
	for i, img := range images {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("      <picture>" + escapeXML(img.Src) + "</picture>")
	}
	b.WriteString("\n")
}
