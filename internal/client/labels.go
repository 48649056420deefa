package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// LabelsClient implements glo.LabelsClient.
type LabelsClient struct {
	httpClient *http.Client
}

// NewLabelsClient creates a new labels client.
func NewLabelsClient(httpClient *http.Client) *LabelsClient {
	return &LabelsClient{
		httpClient: httpClient,
	}
}

// Create implements glo.LabelsClient.Create.
func (c *LabelsClient) Create(ctx context.Context, boardID string, label *glo.NewLabel) (*glo.Label, error) {
	resp, err := c.httpClient.Post(ctx, "labels.create", boardChildPath(boardID, "labels"), label)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	return decode[glo.Label](resp, "label")
}

// Edit implements glo.LabelsClient.Edit.
func (c *LabelsClient) Edit(ctx context.Context, boardID, labelID string, label *glo.Label) (*glo.Label, error) {
	resp, err := c.httpClient.Post(ctx, "labels.edit", boardChildPath(boardID, "labels", labelID), label)
	if err != nil {
		return nil, fmt.Errorf("editing label: %w", err)
	}

	return decode[glo.Label](resp, "label")
}

// Delete implements glo.LabelsClient.Delete.
func (c *LabelsClient) Delete(ctx context.Context, boardID, labelID string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, "labels.delete", boardChildPath(boardID, "labels", labelID))
	if err != nil {
		return nil, fmt.Errorf("deleting label: %w", err)
	}

	return rawPayload(resp), nil
}
