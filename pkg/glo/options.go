package glo

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/glo/internal/constants"
)

// SortOrder is the sort direction of a list endpoint.
type SortOrder string

// Sort orders accepted by the API.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder validates a user supplied sort order.
func ParseSortOrder(value string) (SortOrder, error) {
	switch SortOrder(strings.ToLower(strings.TrimSpace(value))) {
	case SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, value)
	}
}

// Default field selections per endpoint.
var (
	defaultBoardFields      = []string{"name"}
	defaultCardListFields   = []string{"name", "board_id", "column_id"}
	defaultCardGetFields    = []string{"name", "board_id", "card_id"}
	defaultAttachmentFields = []string{"filename", "mime_type"}
	defaultCommentFields    = []string{"text"}
	defaultUserFields       = []string{"username"}
)

// PageOptions holds the paging parameters shared by list endpoints.
// A zero Page or PerPage and an empty Sort mean "use the default".
type PageOptions struct {
	Page    int
	PerPage int
	Sort    SortOrder
}

func defaultPageOptions() PageOptions {
	return PageOptions{
		Page:    constants.DefaultPage,
		PerPage: constants.DefaultPerPage,
		Sort:    SortOrder(constants.DefaultSort),
	}
}

// withDefaults merges p over the default paging parameters field by field.
func (p PageOptions) withDefaults() PageOptions {
	merged := defaultPageOptions()

	if p.Page > 0 {
		merged.Page = p.Page
	}

	if p.PerPage > 0 {
		merged.PerPage = p.PerPage
	}

	if p.Sort != "" {
		merged.Sort = p.Sort
	}

	return merged
}

func (p PageOptions) addTo(values url.Values) {
	values.Set(constants.QueryPage, strconv.Itoa(p.Page))
	values.Set(constants.QueryPerPage, strconv.Itoa(p.PerPage))
	values.Set(constants.QuerySort, string(p.Sort))
}

// mergeFields returns a copy of fields, or of defaults when none were supplied.
// Supplied fields replace the defaults entirely.
func mergeFields(fields, defaults []string) []string {
	if len(fields) == 0 {
		fields = defaults
	}

	return append([]string(nil), fields...)
}

// fieldsValue joins fields in the given order.
func fieldsValue(fields []string) string {
	return strings.Join(fields, ",")
}

// BoardListOptions configures Boards().GetAll.
type BoardListOptions struct {
	PageOptions

	Archived bool
	Fields   []string
}

// DefaultBoardListOptions returns archived=false, page=1, per_page=50,
// sort=asc, fields=[name].
func DefaultBoardListOptions() BoardListOptions {
	return BoardListOptions{
		PageOptions: defaultPageOptions(),
		Archived:    constants.DefaultArchived,
		Fields:      mergeFields(nil, defaultBoardFields),
	}
}

// WithDefaults merges o over DefaultBoardListOptions. o may be nil.
func (o *BoardListOptions) WithDefaults() BoardListOptions {
	if o == nil {
		return DefaultBoardListOptions()
	}

	return BoardListOptions{
		PageOptions: o.PageOptions.withDefaults(),
		Archived:    o.Archived,
		Fields:      mergeFields(o.Fields, defaultBoardFields),
	}
}

// ToValues renders the merged options as query parameters.
func (o *BoardListOptions) ToValues() url.Values {
	merged := o.WithDefaults()
	values := url.Values{}

	merged.PageOptions.addTo(values)
	values.Set(constants.QueryArchived, strconv.FormatBool(merged.Archived))
	values.Set(constants.QueryFields, fieldsValue(merged.Fields))

	return values
}

// BoardGetOptions configures Boards().Get.
type BoardGetOptions struct {
	Fields []string
}

// DefaultBoardGetOptions returns fields=[name].
func DefaultBoardGetOptions() BoardGetOptions {
	return BoardGetOptions{Fields: mergeFields(nil, defaultBoardFields)}
}

// WithDefaults merges o over DefaultBoardGetOptions. o may be nil.
func (o *BoardGetOptions) WithDefaults() BoardGetOptions {
	if o == nil {
		return DefaultBoardGetOptions()
	}

	return BoardGetOptions{Fields: mergeFields(o.Fields, defaultBoardFields)}
}

// ToValues renders the merged options as query parameters.
func (o *BoardGetOptions) ToValues() url.Values {
	return url.Values{constants.QueryFields: {fieldsValue(o.WithDefaults().Fields)}}
}

// CardListOptions configures Boards().Cards().GetAll and
// Boards().Columns().GetCards.
type CardListOptions struct {
	PageOptions

	Archived bool
	Fields   []string
}

// DefaultCardListOptions returns page=1, per_page=50, archived=false,
// sort=asc, fields=[name board_id column_id].
func DefaultCardListOptions() CardListOptions {
	return CardListOptions{
		PageOptions: defaultPageOptions(),
		Archived:    constants.DefaultArchived,
		Fields:      mergeFields(nil, defaultCardListFields),
	}
}

// WithDefaults merges o over DefaultCardListOptions. o may be nil.
func (o *CardListOptions) WithDefaults() CardListOptions {
	if o == nil {
		return DefaultCardListOptions()
	}

	return CardListOptions{
		PageOptions: o.PageOptions.withDefaults(),
		Archived:    o.Archived,
		Fields:      mergeFields(o.Fields, defaultCardListFields),
	}
}

// ToValues renders the merged options as query parameters.
func (o *CardListOptions) ToValues() url.Values {
	merged := o.WithDefaults()
	values := url.Values{}

	merged.PageOptions.addTo(values)
	values.Set(constants.QueryArchived, strconv.FormatBool(merged.Archived))
	values.Set(constants.QueryFields, fieldsValue(merged.Fields))

	return values
}

// CardGetOptions configures Boards().Cards().Get.
type CardGetOptions struct {
	Fields []string
}

// DefaultCardGetOptions returns fields=[name board_id card_id].
// This differs from the list default, which selects column_id.
func DefaultCardGetOptions() CardGetOptions {
	return CardGetOptions{Fields: mergeFields(nil, defaultCardGetFields)}
}

// WithDefaults merges o over DefaultCardGetOptions. o may be nil.
func (o *CardGetOptions) WithDefaults() CardGetOptions {
	if o == nil {
		return DefaultCardGetOptions()
	}

	return CardGetOptions{Fields: mergeFields(o.Fields, defaultCardGetFields)}
}

// ToValues renders the merged options as query parameters.
func (o *CardGetOptions) ToValues() url.Values {
	return url.Values{constants.QueryFields: {fieldsValue(o.WithDefaults().Fields)}}
}

// AttachmentListOptions configures Boards().Cards().GetAttachments.
type AttachmentListOptions struct {
	PageOptions

	Fields []string
}

// DefaultAttachmentListOptions returns page=1, per_page=50, sort=asc,
// fields=[filename mime_type].
func DefaultAttachmentListOptions() AttachmentListOptions {
	return AttachmentListOptions{
		PageOptions: defaultPageOptions(),
		Fields:      mergeFields(nil, defaultAttachmentFields),
	}
}

// WithDefaults merges o over DefaultAttachmentListOptions. o may be nil.
func (o *AttachmentListOptions) WithDefaults() AttachmentListOptions {
	if o == nil {
		return DefaultAttachmentListOptions()
	}

	return AttachmentListOptions{
		PageOptions: o.PageOptions.withDefaults(),
		Fields:      mergeFields(o.Fields, defaultAttachmentFields),
	}
}

// ToValues renders the merged options as query parameters.
func (o *AttachmentListOptions) ToValues() url.Values {
	merged := o.WithDefaults()
	values := url.Values{}

	merged.PageOptions.addTo(values)
	values.Set(constants.QueryFields, fieldsValue(merged.Fields))

	return values
}

// CommentListOptions configures Boards().Cards().Comments().Get.
type CommentListOptions struct {
	PageOptions

	Fields []string
}

// DefaultCommentListOptions returns page=1, per_page=50, sort=asc,
// fields=[text].
func DefaultCommentListOptions() CommentListOptions {
	return CommentListOptions{
		PageOptions: defaultPageOptions(),
		Fields:      mergeFields(nil, defaultCommentFields),
	}
}

// WithDefaults merges o over DefaultCommentListOptions. o may be nil.
func (o *CommentListOptions) WithDefaults() CommentListOptions {
	if o == nil {
		return DefaultCommentListOptions()
	}

	return CommentListOptions{
		PageOptions: o.PageOptions.withDefaults(),
		Fields:      mergeFields(o.Fields, defaultCommentFields),
	}
}

// ToValues renders the merged options as query parameters.
func (o *CommentListOptions) ToValues() url.Values {
	merged := o.WithDefaults()
	values := url.Values{}

	merged.PageOptions.addTo(values)
	values.Set(constants.QueryFields, fieldsValue(merged.Fields))

	return values
}

// UserGetOptions configures Users().GetCurrentUser.
type UserGetOptions struct {
	Fields []string
}

// DefaultUserGetOptions returns fields=[username].
func DefaultUserGetOptions() UserGetOptions {
	return UserGetOptions{Fields: mergeFields(nil, defaultUserFields)}
}

// WithDefaults merges o over DefaultUserGetOptions. o may be nil.
func (o *UserGetOptions) WithDefaults() UserGetOptions {
	if o == nil {
		return DefaultUserGetOptions()
	}

	return UserGetOptions{Fields: mergeFields(o.Fields, defaultUserFields)}
}

// ToValues renders the merged options as query parameters.
func (o *UserGetOptions) ToValues() url.Values {
	return url.Values{constants.QueryFields: {fieldsValue(o.WithDefaults().Fields)}}
}

// BatchOptions configures the batch create endpoints.
type BatchOptions struct {
	SendNotifications bool
}

// SendNotificationsOrDefault returns the flag to send, false when o is nil.
func (o *BatchOptions) SendNotificationsOrDefault() bool {
	if o == nil {
		return constants.DefaultSendNotifications
	}

	return o.SendNotifications
}
