// Package gloclient provides the main entry point for creating Glo API clients
package gloclient

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/glo/internal/client"
	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// New creates a new Glo API client from config. config is not modified.
func New(config *glo.Config) (glo.Client, error) {
	if config == nil {
		return nil, glo.ErrConfigRequired
	}

	normalized := *config
	normalized.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	// Use the internal client implementation
	c, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// normalizeEndpoint trims a trailing slash and adds https:// when no scheme
// is given. An empty endpoint selects the public Glo API.
func normalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSuffix(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return constants.DefaultBaseURL
	}

	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}

// NewWithToken creates a client for the public Glo API. token is sent as the
// Authorization header verbatim.
func NewWithToken(token string) (glo.Client, error) {
	return New(&glo.Config{
		Token: token,
	})
}

// NewWithEndpoint creates a client for a non-default API root, such as a
// proxy or a test server.
func NewWithEndpoint(endpoint, token string) (glo.Client, error) {
	return New(&glo.Config{
		APIEndpoint: endpoint,
		Token:       token,
	})
}
