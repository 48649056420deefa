package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// BoardsClient implements glo.BoardsClient.
type BoardsClient struct {
	httpClient *http.Client

	labels  *LabelsClient
	columns *ColumnsClient
	cards   *CardsClient
}

// NewBoardsClient creates a new boards client.
func NewBoardsClient(httpClient *http.Client) *BoardsClient {
	return &BoardsClient{
		httpClient: httpClient,
		labels:     NewLabelsClient(httpClient),
		columns:    NewColumnsClient(httpClient),
		cards:      NewCardsClient(httpClient),
	}
}

// GetAll implements glo.BoardsClient.GetAll.
func (c *BoardsClient) GetAll(ctx context.Context, opts *glo.BoardListOptions) ([]glo.Board, error) {
	resp, err := c.httpClient.Get(ctx, "boards.get_all", "/boards", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing boards: %w", err)
	}

	return decodeList[glo.Board](resp, "boards list")
}

// Get implements glo.BoardsClient.Get.
func (c *BoardsClient) Get(ctx context.Context, boardID string, opts *glo.BoardGetOptions) (*glo.Board, error) {
	resp, err := c.httpClient.Get(ctx, "boards.get", boardPath(boardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting board: %w", err)
	}

	return decode[glo.Board](resp, "board")
}

// Create implements glo.BoardsClient.Create.
func (c *BoardsClient) Create(ctx context.Context, name string) (*glo.Board, error) {
	body := map[string]string{"name": name}

	resp, err := c.httpClient.Post(ctx, "boards.create", "/boards", body)
	if err != nil {
		return nil, fmt.Errorf("creating board: %w", err)
	}

	return decode[glo.Board](resp, "board")
}

// Delete implements glo.BoardsClient.Delete.
func (c *BoardsClient) Delete(ctx context.Context, boardID string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, "boards.delete", boardPath(boardID))
	if err != nil {
		return nil, fmt.Errorf("deleting board: %w", err)
	}

	return rawPayload(resp), nil
}

// Labels implements glo.BoardsClient.Labels.
func (c *BoardsClient) Labels() glo.LabelsClient {
	return c.labels
}

// Columns implements glo.BoardsClient.Columns.
func (c *BoardsClient) Columns() glo.ColumnsClient {
	return c.columns
}

// Cards implements glo.BoardsClient.Cards.
func (c *BoardsClient) Cards() glo.CardsClient {
	return c.cards
}
