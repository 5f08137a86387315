package shopify

import (
	"fmt"
	"strings"
	"time"

	"draftorder-gateway/internal/pkg/helper"
)

const (
	// DefaultAPIVersion is used when SHOPIFY_API_VERSION is unset.
	DefaultAPIVersion = "2024-01"
	// DefaultTimeoutSeconds bounds one upstream call end to end.
	DefaultTimeoutSeconds = 25

	accessTokenHeader = "X-Shopify-Access-Token"
)

type Config struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	Timeout     time.Duration
}

// ResolveConfig reads the upstream settings from the environment on every
// call. StoreDomain and AccessToken are required with no default; a missing
// value is a deployment fault and must surface before the request body is
// even looked at. The token value itself is never logged.
func ResolveConfig() (*Config, error) {
	domain := helper.GetEnv("SHOPIFY_STORE_DOMAIN")
	token := helper.GetEnv("SHOPIFY_ADMIN_ACCESS_TOKEN")

	if domain == "" {
		return nil, fmt.Errorf("SHOPIFY_STORE_DOMAIN is not set")
	}
	if token == "" {
		return nil, fmt.Errorf("SHOPIFY_ADMIN_ACCESS_TOKEN is not set")
	}

	timeout := helper.GetEnvAsIntWithDefault("SHOPIFY_TIMEOUT_SECONDS", DefaultTimeoutSeconds)

	return &Config{
		StoreDomain: domain,
		AccessToken: token,
		APIVersion:  helper.GetEnv("SHOPIFY_API_VERSION", DefaultAPIVersion),
		Timeout:     time.Duration(timeout) * time.Second,
	}, nil
}

// Endpoint builds the Admin GraphQL URL. StoreDomain is normally a bare
// host (my-shop.myshopify.com); a domain already carrying a scheme is used
// as-is so non-TLS targets keep working.
func (c *Config) Endpoint() string {
	base := c.StoreDomain
	if !strings.Contains(base, "://") {
		base = "https://" + base
	}
	return fmt.Sprintf("%s/admin/api/%s/graphql.json", strings.TrimSuffix(base, "/"), c.APIVersion)
}
