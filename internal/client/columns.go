package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// ColumnsClient implements glo.ColumnsClient.
type ColumnsClient struct {
	httpClient *http.Client
}

// NewColumnsClient creates a new columns client.
func NewColumnsClient(httpClient *http.Client) *ColumnsClient {
	return &ColumnsClient{
		httpClient: httpClient,
	}
}

// columnBatchRequest is the body of POST /boards/{id}/columns/batch.
type columnBatchRequest struct {
	Columns           []glo.NewColumn `json:"columns"`
	SendNotifications bool            `json:"send_notifications"`
}

// Create implements glo.ColumnsClient.Create.
func (c *ColumnsClient) Create(ctx context.Context, boardID string, column *glo.NewColumn) (*glo.Column, error) {
	resp, err := c.httpClient.Post(ctx, "columns.create", boardChildPath(boardID, "columns"), column)
	if err != nil {
		return nil, fmt.Errorf("creating column: %w", err)
	}

	return decode[glo.Column](resp, "column")
}

// Edit implements glo.ColumnsClient.Edit.
func (c *ColumnsClient) Edit(ctx context.Context, boardID, columnID string, column *glo.NewColumn) (*glo.Column, error) {
	resp, err := c.httpClient.Post(ctx, "columns.edit", boardChildPath(boardID, "columns", columnID), column)
	if err != nil {
		return nil, fmt.Errorf("editing column: %w", err)
	}

	return decode[glo.Column](resp, "column")
}

// Delete implements glo.ColumnsClient.Delete.
func (c *ColumnsClient) Delete(ctx context.Context, boardID, columnID string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, "columns.delete", boardChildPath(boardID, "columns", columnID))
	if err != nil {
		return nil, fmt.Errorf("deleting column: %w", err)
	}

	return rawPayload(resp), nil
}

// GetCards implements glo.ColumnsClient.GetCards.
func (c *ColumnsClient) GetCards(ctx context.Context, boardID, columnID string, opts *glo.CardListOptions) ([]glo.Card, error) {
	path := boardChildPath(boardID, "columns", columnID) + "/cards"

	resp, err := c.httpClient.Get(ctx, "columns.get_cards", path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing column cards: %w", err)
	}

	return decodeList[glo.Card](resp, "column cards list")
}

// BatchCreate implements glo.ColumnsClient.BatchCreate.
func (c *ColumnsClient) BatchCreate(
	ctx context.Context,
	boardID string,
	columns []glo.NewColumn,
	opts *glo.BatchOptions,
) (*glo.BatchResult[glo.Column], error) {
	body := columnBatchRequest{
		Columns:           columns,
		SendNotifications: opts.SendNotificationsOrDefault(),
	}

	resp, err := c.httpClient.Post(ctx, "columns.batch_create", boardChildPath(boardID, "columns")+"/batch", body)
	if err != nil {
		return nil, fmt.Errorf("batch creating columns: %w", err)
	}

	return decode[glo.BatchResult[glo.Column]](resp, "column batch result")
}
