package catalog

import "context"

// ProductQuery narrows a product fetch. The zero value fetches the full
// catalog with the standard field projection.
type ProductQuery struct {
	Limit        int
	SinceID      string
	CollectionID string
}

// ProductSource materializes products from the upstream catalog.
// Implementations must follow cursor pagination to exhaustion, so the
// returned slice is always the complete set visible to the query.
type ProductSource interface {
	FetchProducts(ctx context.Context, query ProductQuery) ([]Product, error)
}
