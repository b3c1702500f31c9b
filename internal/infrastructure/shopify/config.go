package shopify

import "errors"

// Config holds Shopify Admin API credentials and client settings.
type Config struct {
	// StoreDomain is the myshopify domain, e.g. "example.myshopify.com"
	StoreDomain string
	// AccessToken is the Admin API access token
	AccessToken string
	// APIVersion is the Admin API version, e.g. "2024-01"
	APIVersion string
	// TimeoutSeconds bounds each page request
	TimeoutSeconds int
}

// Validate checks that the configuration is complete
func (c *Config) Validate() error {
	if c.StoreDomain == "" {
		return errors.New("shopify: store domain is required")
	}
	if c.AccessToken == "" {
		return errors.New("shopify: access token is required")
	}
	if c.APIVersion == "" {
		c.APIVersion = defaultAPIVersion
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
	return nil
}
