package glo

import (
	"context"
	"encoding/json"
	"time"
)

// BoardsClient accesses /boards and the resources nested under a board.
type BoardsClient interface {
	GetAll(ctx context.Context, opts *BoardListOptions) ([]Board, error)
	Get(ctx context.Context, boardID string, opts *BoardGetOptions) (*Board, error)
	Create(ctx context.Context, name string) (*Board, error)
	Delete(ctx context.Context, boardID string) (json.RawMessage, error)

	Labels() LabelsClient
	Columns() ColumnsClient
	Cards() CardsClient
}

// LabelsClient accesses /boards/{board_id}/labels.
type LabelsClient interface {
	Create(ctx context.Context, boardID string, label *NewLabel) (*Label, error)
	Edit(ctx context.Context, boardID, labelID string, label *Label) (*Label, error)
	Delete(ctx context.Context, boardID, labelID string) (json.RawMessage, error)
}

// ColumnsClient accesses /boards/{board_id}/columns.
type ColumnsClient interface {
	Create(ctx context.Context, boardID string, column *NewColumn) (*Column, error)
	Edit(ctx context.Context, boardID, columnID string, column *NewColumn) (*Column, error)
	Delete(ctx context.Context, boardID, columnID string) (json.RawMessage, error)
	GetCards(ctx context.Context, boardID, columnID string, opts *CardListOptions) ([]Card, error)
	BatchCreate(ctx context.Context, boardID string, columns []NewColumn, opts *BatchOptions) (*BatchResult[Column], error)
}

// CardsClient accesses /boards/{board_id}/cards.
type CardsClient interface {
	GetAll(ctx context.Context, boardID string, opts *CardListOptions) ([]Card, error)
	Get(ctx context.Context, boardID, cardID string, opts *CardGetOptions) (*Card, error)
	Create(ctx context.Context, boardID string, card *NewCard) (*Card, error)
	Edit(ctx context.Context, boardID, cardID string, card *NewCard) (*Card, error)
	Delete(ctx context.Context, boardID, cardID string) (json.RawMessage, error)
	GetAttachments(ctx context.Context, boardID, cardID string, opts *AttachmentListOptions) ([]Attachment, error)
	BatchCreate(ctx context.Context, boardID string, cards []NewCard, opts *BatchOptions) (*BatchResult[Card], error)

	Comments() CommentsClient
}

// CommentsClient accesses /boards/{board_id}/cards/{card_id}/comments.
type CommentsClient interface {
	Get(ctx context.Context, boardID, cardID string, opts *CommentListOptions) ([]Comment, error)
	Create(ctx context.Context, boardID, cardID string, comment *NewComment) (*Comment, error)
	Edit(ctx context.Context, boardID, cardID, commentID string, comment *NewComment) (*Comment, error)
	Delete(ctx context.Context, boardID, cardID, commentID string) (json.RawMessage, error)
	BatchCreate(ctx context.Context, boardID, cardID string, comments []NewComment, opts *BatchOptions) (*BatchResult[Comment], error)
}

// UsersClient accesses /user.
type UsersClient interface {
	GetCurrentUser(ctx context.Context, opts *UserGetOptions) (*User, error)
}

// Client is the entry point to the Glo API. Its configuration is fixed at
// construction, so one Client may be shared by concurrent callers.
type Client interface {
	Boards() BoardsClient
	Users() UsersClient

	// GetAllBoards is shorthand for Boards().GetAll.
	GetAllBoards(ctx context.Context, opts *BoardListOptions) ([]Board, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a Client.
//
// Only Token is required. The token is sent as the Authorization header
// exactly as given: pass "Bearer <token>" if the account expects a scheme.
//
// Per-request timeouts should be controlled through the context passed to
// each call. Retries are disabled unless RetryMax is positive.
type Config struct {
	// APIEndpoint overrides the default https://gloapi.gitkraken.com/v1/glo.
	APIEndpoint string
	// Token is the Authorization header value.
	Token string

	// HTTPTimeout is an optional whole-request timeout. Zero leaves it to
	// the transport default and the caller's context.
	HTTPTimeout time.Duration
	// RetryMax is the number of retries for 429, 5xx and connection errors.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration
	// Debug logs every request and response when a Logger is provided.
	Debug bool
	// Logger receives transport logs. Nil disables logging.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Interceptors run around every request. Build the chain before
	// passing it in; it is not modified afterwards.
	Interceptors *InterceptorChain
}
