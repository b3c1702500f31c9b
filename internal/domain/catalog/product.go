package catalog

import "strings"

// ProductStatusActive is the only lifecycle status that makes a product
// eligible for feed generation. Drafts and archived products are rejected.
const ProductStatusActive = "active"

// DefaultVariantTitle is the sentinel Shopify assigns to the single variant
// of a product that declares no options.
const DefaultVariantTitle = "Default Title"

// optionValueSeparator joins option values into a variant title.
const optionValueSeparator = " / "

// Product is one upstream catalog product as returned by the Shopify Admin
// REST API. A product is fetched once per feed run and is read-only afterwards.
type Product struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	BodyHTML    string    `json:"body_html"`
	Vendor      string    `json:"vendor"`
	ProductType string    `json:"product_type"`
	Handle      string    `json:"handle"`
	Status      string    `json:"status"`
	Tags        string    `json:"tags"`
	Images      []Image   `json:"images"`
	Options     []Option  `json:"options"`
	Variants    []Variant `json:"variants"`
}

// Image is a product image reference, ordered by position.
type Image struct {
	ID       int64  `json:"id"`
	Src      string `json:"src"`
	Position int    `json:"position"`
}

// Option is a product option definition (e.g. "Color"), ordered by position.
// Variant titles carry the option values positionally.
type Option struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// Variant is one sellable unit of a product. Price fields arrive as strings
// on the wire and are parsed at the transformation boundary.
type Variant struct {
	ID                int64  `json:"id"`
	ProductID         int64  `json:"product_id"`
	Title             string `json:"title"`
	SKU               string `json:"sku"`
	Barcode           string `json:"barcode"`
	Price             string `json:"price"`
	CompareAtPrice    string `json:"compare_at_price"`
	InventoryQuantity int    `json:"inventory_quantity"`
}

// IsActive reports whether the product is in the active lifecycle status.
func (p *Product) IsActive() bool {
	return p.Status == ProductStatusActive
}

// HasImages reports whether the product has at least one image.
func (p *Product) HasImages() bool {
	return len(p.Images) > 0
}

// HasDefaultTitle reports whether the variant is the option-less sentinel.
func (v *Variant) HasDefaultTitle() bool {
	return v.Title == DefaultVariantTitle
}

// OptionValues splits the variant title into its positional option values.
// Returns nil for the option-less sentinel.
func (v *Variant) OptionValues() []string {
	if v.HasDefaultTitle() || v.Title == "" {
		return nil
	}
	return strings.Split(v.Title, optionValueSeparator)
}

// StockQuantity returns the available inventory, never negative.
// An absent quantity is treated as zero.
func (v *Variant) StockQuantity() int {
	if v.InventoryQuantity < 0 {
		return 0
	}
	return v.InventoryQuantity
}

// Available reports whether the variant has stock on hand.
func (v *Variant) Available() bool {
	return v.InventoryQuantity > 0
}
