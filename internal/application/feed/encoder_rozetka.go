package feed

import (
	"fmt"
	"strings"
	"time"

	"github.com/turbota/feedsync/internal/domain/feed"
)

const (
	rozetkaSlug        = "rozetka"
	rozetkaMaxPictures = 15
)

// Rozetka shop header values
const (
	shopName = "TURBOTA"
	shopURL  = "https://turbota.com.ua/"
)

// RozetkaEncoder renders the Rozetka YML dialect: a full shop envelope with
// currencies, a standalone category listing carrying rz_id attributes, and
// CDATA names/descriptions per offer.
type RozetkaEncoder struct{}

// NewRozetkaEncoder creates the Rozetka feed encoder
func NewRozetkaEncoder() *RozetkaEncoder {
	return &RozetkaEncoder{}
}

// Slug returns the marketplace slug this encoder handles
func (e *RozetkaEncoder) Slug() string {
	return rozetkaSlug
}

// ResolveCategory matches by product type list with title fallback
func (e *RozetkaEncoder) ResolveCategory(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping {
	return resolveByTypeList(productType, mappings)
}

// SkipDisabled returns false: Rozetka emits offers for deactivated mappings
func (e *RozetkaEncoder) SkipDisabled() bool {
	return false
}

// Category projects the mapping into a category entry with the rz_id extra
func (e *RozetkaEncoder) Category(mapping *feed.CategoryMapping) Category {
	return Category{
		ID:      mapping.MarketplaceCategoryID,
		Name:    mapping.CategoryName(),
		ExtraID: mapping.RzID,
	}
}

// EncodeOffer renders one Rozetka offer fragment
func (e *RozetkaEncoder) EncodeOffer(o *Offer) string {
	p, v := o.Product, o.Variant
	name := offerName(p, v)

	var b strings.Builder
	fmt.Fprintf(&b, "    <offer id=\"%s\" available=\"%t\">\n", escapeXML(compositeOfferID(p, v)), v.Available())
	b.WriteString("      <price>" + formatPrice(o.Price) + "</price>\n")
	if o.OldPrice != nil {
		b.WriteString("      <price_old>" + formatPrice(*o.OldPrice) + "</price_old>\n")
	}
	b.WriteString("      <currencyId>UAH</currencyId>\n")
	b.WriteString("      <categoryId>" + escapeXML(o.Category.ID) + "</categoryId>\n")
	writePictures(&b, p.Images, rozetkaMaxPictures)
	b.WriteString("      <vendor>" + escapeXML(p.Vendor) + "</vendor>\n")
	if v.SKU != "" {
		b.WriteString("      <article>" + escapeXML(v.SKU) + "</article>\n")
	}
	fmt.Fprintf(&b, "      <stock_quantity>%d</stock_quantity>\n", v.StockQuantity())
	b.WriteString("      <name>" + cdata(name) + "</name>\n")
	b.WriteString("      <name_ua>" + cdata(name) + "</name_ua>\n")
	b.WriteString("      <description>" + cdata(p.BodyHTML) + "</description>\n")
	b.WriteString("      <description_ua>" + cdata(p.BodyHTML) + "</description_ua>\n")
	writeOptionParams(&b, p, v)
	b.WriteString("    </offer>")
	return b.String()
}

// Envelope assembles the complete Rozetka document
func (e *RozetkaEncoder) Envelope(fragments []string, categories []Category, generatedAt time.Time) string {
	var cats strings.Builder
	for i, c := range categories {
		if i > 0 {
			cats.WriteString("\n")
		}
		cats.WriteString("      <category id=\"" + escapeXML(c.ID) + "\"")
		if c.ExtraID != "" {
			cats.WriteString(" rz_id=\"" + escapeXML(c.ExtraID) + "\"")
		}
		cats.WriteString(">" + escapeXML(c.Name) + "</category>")
	}

	return `<?xml version="1.0" encoding="UTF-8"?>
<yml_catalog date="` + formatFeedDate(generatedAt) + `">
  <shop>
    <name>` + shopName + `</name>
    <company>` + shopName + `</company>
    <url>` + shopURL + `</url>
    <currencies>
      <currency id="UAH" rate="1"/>
    </currencies>
    <categories>
` + cats.String() + `
    </categories>
    <offers>
` + strings.Join(fragments, "\n") + `
    </offers>
  </shop>
</yml_catalog>`
}

// Ensure RozetkaEncoder implements Encoder
var _ Encoder = (*RozetkaEncoder)(nil)
