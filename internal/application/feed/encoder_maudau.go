package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/turbota/feedsync/internal/domain/feed"
)

const (
	maudauSlug        = "maudau"
	maudauMaxPictures = 12
)

// MaudauEncoder renders the MAUDAU dialect: plain-text names and
// descriptions (markup stripped, then escaped), a category listing carrying
// portal_id attributes, and old_price for crossed-out pricing.
type MaudauEncoder struct{}

// NewMaudauEncoder creates the MAUDAU feed encoder
func NewMaudauEncoder() *MaudauEncoder {
	return &MaudauEncoder{}
}

// Slug returns the marketplace slug this encoder handles
func (e *MaudauEncoder) Slug() string {
	return maudauSlug
}

// ResolveCategory matches by product type list with title fallback
func (e *MaudauEncoder) ResolveCategory(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping {
	return resolveByTypeList(productType, mappings)
}

// SkipDisabled returns true: a matched but deactivated mapping drops the
// product silently, with no validation row.
func (e *MaudauEncoder) SkipDisabled() bool {
	return true
}

// Category projects the mapping into a category entry with the portal_id extra
func (e *MaudauEncoder) Category(mapping *feed.CategoryMapping) Category {
	return Category{
		ID:      mapping.MarketplaceCategoryID,
		Name:    mapping.CategoryName(),
		ExtraID: mapping.PortalID,
	}
}

// EncodeOffer renders one MAUDAU offer fragment
func (e *MaudauEncoder) EncodeOffer(o *Offer) string {
	p, v := o.Product, o.Variant
	name := stripHTMLTags(offerName(p, v))
	description := stripHTMLTags(p.BodyHTML)

	var b strings.Builder
	fmt.Fprintf(&b, "    <offer id=\"%s\" available=\"%t\">\n", escapeXML(compositeOfferID(p, v)), v.Available())
	b.WriteString("      <name_ua>" + escapeXML(name) + "</name_ua>\n")
	b.WriteString("      <name_ru>" + escapeXML(name) + "</name_ru>\n")
	b.WriteString("      <description_ua>" + escapeXML(description) + "</description_ua>\n")
	b.WriteString("      <description_ru>" + escapeXML(description) + "</description_ru>\n")
	b.WriteString("      <price>" + formatPrice(o.Price) + "</price>\n")
	if o.OldPrice != nil {
		b.WriteString("      <old_price>" + formatPrice(*o.OldPrice) + "</old_price>\n")
	}
	b.WriteString("      <categoryId>" + escapeXML(o.Category.ID) + "</categoryId>\n")
	b.WriteString("      <vendor>" + escapeXML(p.Vendor) + "</vendor>\n")
	writePictures(&b, p.Images, maudauMaxPictures)
	writeOptionParams(&b, p, v)
	b.WriteString("    </offer>")
	return b.String()
}

// Envelope assembles the complete MAUDAU document
func (e *MaudauEncoder) Envelope(fragments []string, categories []Category, generatedAt time.Time) string {
	var cats strings.Builder
	for i, c := range categories {
		if i > 0 {
			cats.WriteString("\n")
		}
		cats.WriteString("      <category id=\"" + escapeXML(c.ID) + "\"")
		if c.ExtraID != "" {
			cats.WriteString(" portal_id=\"" + escapeXML(c.ExtraID) + "\"")
		}
		cats.WriteString(">" + escapeXML(c.Name) + "</category>")
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="` + formatFeedDate(generatedAt) + `">
  <shop>
    <categories>
` + cats.String() + `
    </categories>
    <offers>
` + strings.Join(fragments, "\n") + `
    </offers>
  </shop>
</yml_catalog>`
}

// Ensure MaudauEncoder implements Encoder
var _ Encoder = (*MaudauEncoder)(nil)
