package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// UsersClient implements glo.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// GetCurrentUser implements glo.UsersClient.GetCurrentUser.
func (c *UsersClient) GetCurrentUser(ctx context.Context, opts *glo.UserGetOptions) (*glo.User, error) {
	resp, err := c.httpClient.Get(ctx, "users.get_current", "/user", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	return decode[glo.User](resp, "user")
}
