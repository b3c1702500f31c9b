package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"

	"time"

	"github.com/turbota/feedsync/internal/domain/catalog"
)

// maxResponseSize is the maximum allowed response size from the Shopify API (20MB)
const maxResponseSize = 20 * 1024 * 1024

// maxPageSize is the upstream limit on products per page
const maxPageSize = 250

const defaultAPIVersion = "2024-01"

// productFields is the fixed field projection requested on every page to
// avoid over-fetching. Kept in one place so every caller paginates the same
// shape.
const productFields = "id,title,body_html,vendor,product_type,handle,status,variants,images,tags,options"

// nextLinkPattern extracts the opaque next-page URL from the Link header.
var nextLinkPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// Client fetches products from the Shopify Admin REST API. It follows
// cursor-based pagination via the Link response header until exhaustion.
// A run is restartable but never resumes mid-pagination.
type Client struct {
	config     *Config
	httpClient *http.Client
}

// NewClient creates a Shopify client with the given configuration
func NewClient(config *Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// productsResponse is one page of the products endpoint
type productsResponse struct {
	Products []catalog.Product `json:"products"`
}

// FetchProducts retrieves every product visible to the query, following the
// Link header's rel="next" pointer until no further pointer is returned.
// Any non-success page response aborts the fetch with *catalog.UpstreamError.
func (c *Client) FetchProducts(ctx context.Context, query catalog.ProductQuery) ([]catalog.Product, error) {
	var all []catalog.Product

	pageURL := c.initialURL(query)
	for pageURL != "" {
		page, next, err := c.fetchPage(ctx, pageURL)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		pageURL = next
	}

	return all, nil
}

// initialURL builds the first page request URL with the fixed projection
func (c *Client) initialURL(query catalog.ProductQuery) string {
	limit := query.Limit
	if limit <= 0 || limit > maxPageSize {
		limit = maxPageSize
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("fields", productFields)
	if query.SinceID != "" {
		params.Set("since_id", query.SinceID)
	}
	if query.CollectionID != "" {
		params.Set("collection_id", query.CollectionID)
	}

	return fmt.Sprintf("https://%s/admin/api/%s/products.json?%s",
		c.config.StoreDomain, c.config.APIVersion, params.Encode())
}

// fetchPage requests one page and returns its products plus the next-page URL
func (c *Client) fetchPage(ctx context.Context, pageURL string) ([]catalog.Product, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("shopify: failed to create request: %w", err)
	}

	req.Header.Set("X-Shopify-Access-Token", c.config.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("shopify: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", &catalog.UpstreamError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, "", fmt.Errorf("shopify: failed to read response: %w", err)
	}

	var page productsResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", fmt.Errorf("shopify: failed to parse response: %w", err)
	}

	return page.Products, nextPageURL(resp.Header.Get("Link")), nil
}

// nextPageURL extracts the rel="next" URL from a Link header, or "" when the
// final page has been reached
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}
	if m := nextLinkPattern.FindStringSubmatch(linkHeader); m != nil {
		return m[1]
	}
	return ""
}

// Ensure Client implements ProductSource
var _ catalog.ProductSource = (*Client)(nil)
