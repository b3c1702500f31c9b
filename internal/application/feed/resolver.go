package feed

import (
	"github.com/turbota/feedsync/internal/domain/feed"
)

// resolveByCollection matches the product type by exact equality against the
// mapping's stored collection title or collection id. First match in stored
// order wins. Used by code-based targets (Epicentr).
func resolveByCollection(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping {
	for i := range mappings {
		cm := &mappings[i]
		if cm.ShopifyCollectionTitle == productType || cm.ShopifyCollectionID == productType {
			return cm
		}
	}
	return nil
}

// resolveByTypeList matches against the mapping's declared product type list
// when it is non-empty, falling back to collection title equality otherwise.
// A mapping with a type list never falls back to its title for a product
// that is not in the list. Used by Rozetka and MAUDAU.
func resolveByTypeList(productType string, mappings []feed.CategoryMapping) *feed.CategoryMapping {
	for i := range mappings {
		cm := &mappings[i]
		if cm.HasTypeList() && productType != "" {
			if cm.ContainsType(productType) {
				return cm
			}
			continue
		}
		if cm.ShopifyCollectionTitle == productType {
			return cm
		}
	}
	return nil
}
