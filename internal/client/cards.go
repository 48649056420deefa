package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// CardsClient implements glo.CardsClient.
type CardsClient struct {
	httpClient *http.Client
	comments   *CommentsClient
}

// NewCardsClient creates a new cards client.
func NewCardsClient(httpClient *http.Client) *CardsClient {
	return &CardsClient{
		httpClient: httpClient,
		comments:   NewCommentsClient(httpClient),
	}
}

type cardBatchRequest struct {
	Cards             []glo.NewCard `json:"cards"`
	SendNotifications bool          `json:"send_notifications"`
}

// GetAll implements glo.CardsClient.GetAll.
func (c *CardsClient) GetAll(ctx context.Context, boardID string, opts *glo.CardListOptions) ([]glo.Card, error) {
	resp, err := c.httpClient.Get(ctx, "cards.get_all", boardChildPath(boardID, "cards"), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing cards: %w", err)
	}

	return decodeList[glo.Card](resp, "cards list")
}

// Get implements glo.CardsClient.Get.
func (c *CardsClient) Get(ctx context.Context, boardID, cardID string, opts *glo.CardGetOptions) (*glo.Card, error) {
	resp, err := c.httpClient.Get(ctx, "cards.get", cardPath(boardID, cardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting card: %w", err)
	}

	return decode[glo.Card](resp, "card")
}

// Create implements glo.CardsClient.Create.
func (c *CardsClient) Create(ctx context.Context, boardID string, card *glo.NewCard) (*glo.Card, error) {
	resp, err := c.httpClient.Post(ctx, "cards.create", boardChildPath(boardID, "cards"), card)
	if err != nil {
		return nil, fmt.Errorf("creating card: %w", err)
	}

	return decode[glo.Card](resp, "card")
}

// Edit implements glo.CardsClient.Edit.
func (c *CardsClient) Edit(ctx context.Context, boardID, cardID string, card *glo.NewCard) (*glo.Card, error) {
	resp, err := c.httpClient.Post(ctx, "cards.edit", cardPath(boardID, cardID), card)
	if err != nil {
		return nil, fmt.Errorf("editing card: %w", err)
	}

	return decode[glo.Card](resp, "card")
}

// Delete implements glo.CardsClient.Delete.
func (c *CardsClient) Delete(ctx context.Context, boardID, cardID string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, "cards.delete", cardPath(boardID, cardID))
	if err != nil {
		return nil, fmt.Errorf("deleting card: %w", err)
	}

	return rawPayload(resp), nil
}

// GetAttachments implements glo.CardsClient.GetAttachments.
func (c *CardsClient) GetAttachments(
	ctx context.Context,
	boardID, cardID string,
	opts *glo.AttachmentListOptions,
) ([]glo.Attachment, error) {
	path := cardPath(boardID, cardID) + "/attachments"

	resp, err := c.httpClient.Get(ctx, "cards.get_attachments", path, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing attachments: %w", err)
	}

	return decodeList[glo.Attachment](resp, "attachments list")
}

// BatchCreate implements glo.CardsClient.BatchCreate.
func (c *CardsClient) BatchCreate(
	ctx context.Context,
	boardID string,
	cards []glo.NewCard,
	opts *glo.BatchOptions,
) (*glo.BatchResult[glo.Card], error) {
	body := cardBatchRequest{
		Cards:             cards,
		SendNotifications: opts.SendNotificationsOrDefault(),
	}

	resp, err := c.httpClient.Post(ctx, "cards.batch_create", boardChildPath(boardID, "cards")+"/batch", body)
	if err != nil {
		return nil, fmt.Errorf("batch creating cards: %w", err)
	}

	return decode[glo.BatchResult[glo.Card]](resp, "card batch result")
}

// Comments implements glo.CardsClient.Comments.
func (c *CardsClient) Comments() glo.CommentsClient {
	return c.comments
}
