package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/glo/internal/auth"
	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// Client implements the glo.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	boards *BoardsClient
	users  *UsersClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *glo.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a Glo API client that sends config.Token as the Authorization
// header exactly as given, even when empty.
func New(config *glo.Config) (*Client, error) {
	if config == nil {
		return nil, glo.ErrConfigRequired
	}

	return NewWithTokenProvider(config, auth.NewStaticToken(config.Token))
}

// NewWithTokenProvider creates a Glo API client with a custom token provider.
// config.Token is ignored. A nil provider sends no Authorization header.
func NewWithTokenProvider(config *glo.Config, tokenProvider auth.TokenProvider) (*Client, error) {
	if config == nil {
		return nil, glo.ErrConfigRequired
	}

	baseURL := config.APIEndpoint
	if baseURL == "" {
		baseURL = constants.DefaultBaseURL
	}

	httpClient := http.NewClient(baseURL, tokenProvider, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    httpClient.BaseURL(),
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.boards = NewBoardsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Boards implements glo.Client.Boards.
func (c *Client) Boards() glo.BoardsClient {
	return c.boards
}

// Users implements glo.Client.Users.
func (c *Client) Users() glo.UsersClient {
	return c.users
}

// GetAllBoards implements glo.Client.GetAllBoards.
func (c *Client) GetAllBoards(ctx context.Context, opts *glo.BoardListOptions) ([]glo.Board, error) {
	return c.boards.GetAll(ctx, opts)
}

// Path helpers. Identifiers are escaped as single path segments.

func boardPath(boardID string) string {
	return "/boards/" + url.PathEscape(boardID)
}

func boardChildPath(boardID, collection string, ids ...string) string {
	path := boardPath(boardID) + "/" + collection

	for _, id := range ids {
		path += "/" + url.PathEscape(id)
	}

	return path
}

func cardPath(boardID, cardID string) string {
	return boardChildPath(boardID, "cards", cardID)
}

// decode unmarshals an API response body into a fresh T.
func decode[T any](resp *http.Response, what string) (*T, error) {
	var result T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	return &result, nil
}

// decodeList unmarshals a JSON array response. An empty or blank body
// yields an empty slice.
func decodeList[T any](resp *http.Response, what string) ([]T, error) {
	if isBlank(resp.Body) {
		return []T{}, nil
	}

	var result []T

	err := json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", what, err)
	}

	if result == nil {
		result = []T{}
	}

	return result, nil
}

// rawPayload returns a copy of the response body as returned by the API,
// or nil when the body is empty or blank.
func rawPayload(resp *http.Response) json.RawMessage {
	if resp == nil || isBlank(resp.Body) {
		return nil
	}

	return append(json.RawMessage(nil), resp.Body...)
}

func isBlank(body []byte) bool {
	return len(bytes.TrimSpace(body)) == 0
}
