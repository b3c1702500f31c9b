package catalog

import "fmt"

// UpstreamError indicates a non-success response from the catalog API during
// pagination. It is fatal to a feed run: no partial document is emitted.
type UpstreamError struct {
	StatusCode int
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Shopify API error: %d", e.StatusCode)
}
