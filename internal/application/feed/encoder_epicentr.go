package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/turbota/feedsync/internal/domain/feed"
)

const epicentrSlug = "epicentr"

// EpicentrEncoder renders the Epicentr dialect: no standalone category
// listing, the category code inline per offer, an enumerated availability
// tag, and typed parameter entries for barcode, measurement unit, minimum
// order quantity and brand.
type EpicentrEncoder struct{}

// NewEpicentrEncoder creates the Epicentr feed encoder
func NewEpicentrEncoder() *EpicentrEncoder {
	return &EpicentrEncoder{}
}

// Slug returns the marketplace slug this encoder handles
func (e *EpicentrEncoder) Slug() string {
	return epicentrSlug
}

// ResolveCategory matches by exact collection title or collection id equality
func (e *EpicentrEncoder) ResolveCategory(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping {
	return resolveByCollection(productType, mappings)
}

// SkipDisabled returns false: Epicentr emits offers for deactivated mappings
func (e *EpicentrEncoder) SkipDisabled() bool {
	return false
}

// Category projects the mapping into the inline category reference. The
// category code supersedes the plain category id when present.
func (e *EpicentrEncoder) Category(mapping *feed.CategoryMapping) Category {
	code := mapping.EpicentrCategoryCode
	if code == "" {
		code = mapping.MarketplaceCategoryID
	}
	return Category{
		ID:   code,
		Name: mapping.CategoryName(),
	}
}

// EncodeOffer renders one Epicentr offer fragment
func (e *EpicentrEncoder) EncodeOffer(o *Offer) string {
	p, v := o.Product, o.Variant
	name := offerName(p, v)

	offerID := v.SKU
	if offerID == "" {
		offerID = compositeOfferID(p, v)
	}

	availability := "out_of_stock"
	if v.Available() {
		availability = "in_stock"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "    <offer id=\"%s\" available=\"%t\">\n", escapeXML(offerID), v.Available())
	b.WriteString("      <price>" + formatPrice(o.Price) + "</price>\n")
	if o.OldPrice != nil {
		b.WriteString("      <price_old>" + formatPrice(*o.OldPrice) + "</price_old>\n")
	}
	b.WriteString("      <availability>" + availability + "</availability>\n")
	b.WriteString("      <category code=\"" + escapeXML(o.Category.ID) + "\">" + escapeXML(o.Category.Name) + "</category>\n")
	writePictures(&b, p.Images, 0)
	b.WriteString("      <name lang=\"ua\">" + escapeXML(name) + "</name>\n")
	b.WriteString("      <name lang=\"ru\">" + escapeXML(name) + "</name>\n")
	b.WriteString("      <description lang=\"ua\">" + cdata(p.BodyHTML) + "</description>\n")
	b.WriteString("      <description lang=\"ru\">" + cdata(p.BodyHTML) + "</description>\n")
	b.WriteString("      <attribute_set code=\"" + escapeXML(o.Category.ID) + "\">" + escapeXML(o.Category.Name) + "</attribute_set>\n")
	writeOptionParams(&b, p, v)
	if v.Barcode != "" {
		b.WriteString("      <param paramcode=\"barcodes\" name=\"Штрих код\">" + cdata(v.Barcode) + "</param>\n")
	}
	b.WriteString("      <param paramcode=\"measure\" name=\"Міра виміру\" valuecode=\"measure_pcs\">шт.</param>\n")
	b.WriteString("      <param paramcode=\"ratio\" name=\"Мінімальна кратність товару\">" + cdata("1") + "</param>\n")
	if p.Vendor != "" {
		b.WriteString("      <param paramcode=\"brand\" name=\"Бренд\">" + escapeXML(p.Vendor) + "</param>\n")
	}
	b.WriteString("    </offer>")
	return b.String()
}

// Envelope assembles the complete Epicentr document. The target embeds the
// category inline per offer, so there is no standalone category section.
func (e *EpicentrEncoder) Envelope(fragments []string, _ []Category, generatedAt time.Time) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="` + formatFeedDate(generatedAt) + `">
  <offers>
` + strings.Join(fragments, "\n") + `
  </offers>
</yml_catalog>`
}

// Ensure EpicentrEncoder implements Encoder
var _ Encoder = (*EpicentrEncoder)(nil)
