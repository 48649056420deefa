package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/glo/internal/http"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// CommentsClient implements glo.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{
		httpClient: httpClient,
	}
}

type commentBatchRequest struct {
	Comments          []glo.NewComment `json:"comments"`
	SendNotifications bool             `json:"send_notifications"`
}

func commentsPath(boardID, cardID string) string {
	return cardPath(boardID, cardID) + "/comments"
}

func commentPath(boardID, cardID, commentID string) string {
	return commentsPath(boardID, cardID) + "/" + url.PathEscape(commentID)
}

// Get implements glo.CommentsClient.Get.
func (c *CommentsClient) Get(ctx context.Context, boardID, cardID string, opts *glo.CommentListOptions) ([]glo.Comment, error) {
	resp, err := c.httpClient.Get(ctx, "comments.get", commentsPath(boardID, cardID), opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	return decodeList[glo.Comment](resp, "comments list")
}

// Create implements glo.CommentsClient.Create.
func (c *CommentsClient) Create(ctx context.Context, boardID, cardID string, comment *glo.NewComment) (*glo.Comment, error) {
	resp, err := c.httpClient.Post(ctx, "comments.create", commentsPath(boardID, cardID), comment)
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	return decode[glo.Comment](resp, "comment")
}

// Edit implements glo.CommentsClient.Edit.
func (c *CommentsClient) Edit(
	ctx context.Context,
	boardID, cardID, commentID string,
	comment *glo.NewComment,
) (*glo.Comment, error) {
	resp, err := c.httpClient.Post(ctx, "comments.edit", commentPath(boardID, cardID, commentID), comment)
	if err != nil {
		return nil, fmt.Errorf("editing comment: %w", err)
	}

	return decode[glo.Comment](resp, "comment")
}

// Delete implements glo.CommentsClient.Delete.
func (c *CommentsClient) Delete(ctx context.Context, boardID, cardID, commentID string) (json.RawMessage, error) {
	resp, err := c.httpClient.Delete(ctx, "comments.delete", commentPath(boardID, cardID, commentID))
	if err != nil {
		return nil, fmt.Errorf("deleting comment: %w", err)
	}

	return rawPayload(resp), nil
}

// BatchCreate implements glo.CommentsClient.BatchCreate.
func (c *CommentsClient) BatchCreate(
	ctx context.Context,
	boardID, cardID string,
	comments []glo.NewComment,
	opts *glo.BatchOptions,
) (*glo.BatchResult[glo.Comment], error) {
	body := commentBatchRequest{
		Comments:          comments,
		SendNotifications: opts.SendNotificationsOrDefault(),
	}

	resp, err := c.httpClient.Post(ctx, "comments.batch_create", commentsPath(boardID, cardID)+"/batch", body)
	if err != nil {
		return nil, fmt.Errorf("batch creating comments: %w", err)
	}

	return decode[glo.BatchResult[glo.Comment]](resp, "comment batch result")
}
