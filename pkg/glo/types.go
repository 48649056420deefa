package glo

import (
	"time"
)

// PartialUser is the abbreviated user reference embedded in other resources.
type PartialUser struct {
	ID       string `json:"id"                 yaml:"id"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Member represents a user's membership of a board.
type Member struct {
	ID       string `json:"id"                 yaml:"id"`
	Role     string `json:"role,omitempty"     yaml:"role,omitempty"`
	Username string `json:"username,omitempty" yaml:"username,omitempty"`
}

// Color is an RGBA label color.
type Color struct {
	R int     `json:"r" yaml:"r"`
	G int     `json:"g" yaml:"g"`
	B int     `json:"b" yaml:"b"`
	A float64 `json:"a" yaml:"a"`
}

// Board represents a Glo board.
type Board struct {
	ID              string       `json:"id"                         yaml:"id"`
	Name            string       `json:"name,omitempty"             yaml:"name,omitempty"`
	Columns         []Column     `json:"columns,omitempty"          yaml:"columns,omitempty"`
	ArchivedColumns []Column     `json:"archived_columns,omitempty" yaml:"archived_columns,omitempty"`
	Labels          []Label      `json:"labels,omitempty"           yaml:"labels,omitempty"`
	Members         []Member     `json:"members,omitempty"          yaml:"members,omitempty"`
	InvitedMembers  []Member     `json:"invited_members,omitempty"  yaml:"invited_members,omitempty"`
	ArchivedDate    *time.Time   `json:"archived_date,omitempty"    yaml:"archived_date,omitempty"`
	CreatedDate     *time.Time   `json:"created_date,omitempty"     yaml:"created_date,omitempty"`
	CreatedBy       *PartialUser `json:"created_by,omitempty"       yaml:"created_by,omitempty"`
}

// Column represents a column on a board.
type Column struct {
	ID           string       `json:"id"                      yaml:"id"`
	BoardID      string       `json:"board_id,omitempty"      yaml:"board_id,omitempty"`
	Name         string       `json:"name,omitempty"          yaml:"name,omitempty"`
	Position     *int         `json:"position,omitempty"      yaml:"position,omitempty"`
	ArchivedDate *time.Time   `json:"archived_date,omitempty" yaml:"archived_date,omitempty"`
	CreatedDate  *time.Time   `json:"created_date,omitempty"  yaml:"created_date,omitempty"`
	CreatedBy    *PartialUser `json:"created_by,omitempty"    yaml:"created_by,omitempty"`
}

// Description is the markdown body of a card.
type Description struct {
	Text        string       `json:"text"                   yaml:"text"`
	CreatedDate *time.Time   `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	UpdatedDate *time.Time   `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
	CreatedBy   *PartialUser `json:"created_by,omitempty"   yaml:"created_by,omitempty"`
	UpdatedBy   *PartialUser `json:"updated_by,omitempty"   yaml:"updated_by,omitempty"`
}

// PartialLabel is the label reference attached to a card.
type PartialLabel struct {
	ID   string `json:"id"             yaml:"id"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}

// Card represents a card on a board.
type Card struct {
	ID                 string         `json:"id"                             yaml:"id"`
	BoardID            string         `json:"board_id,omitempty"             yaml:"board_id,omitempty"`
	ColumnID           string         `json:"column_id,omitempty"            yaml:"column_id,omitempty"`
	Name               string         `json:"name,omitempty"                 yaml:"name,omitempty"`
	Position           *int           `json:"position,omitempty"             yaml:"position,omitempty"`
	Description        *Description   `json:"description,omitempty"          yaml:"description,omitempty"`
	Labels             []PartialLabel `json:"labels,omitempty"               yaml:"labels,omitempty"`
	Assignees          []PartialUser  `json:"assignees,omitempty"            yaml:"assignees,omitempty"`
	AttachmentCount    int            `json:"attachment_count,omitempty"     yaml:"attachment_count,omitempty"`
	CommentCount       int            `json:"comment_count,omitempty"        yaml:"comment_count,omitempty"`
	TotalTaskCount     int            `json:"total_task_count,omitempty"     yaml:"total_task_count,omitempty"`
	CompletedTaskCount int            `json:"completed_task_count,omitempty" yaml:"completed_task_count,omitempty"`
	DueDate            *time.Time     `json:"due_date,omitempty"             yaml:"due_date,omitempty"`
	ArchivedDate       *time.Time     `json:"archived_date,omitempty"        yaml:"archived_date,omitempty"`
	CreatedDate        *time.Time     `json:"created_date,omitempty"         yaml:"created_date,omitempty"`
	UpdatedDate        *time.Time     `json:"updated_date,omitempty"         yaml:"updated_date,omitempty"`
	CreatedBy          *PartialUser   `json:"created_by,omitempty"           yaml:"created_by,omitempty"`
}

// Label represents a board label.
type Label struct {
	ID          string       `json:"id,omitempty"           yaml:"id,omitempty"`
	Name        string       `json:"name,omitempty"         yaml:"name,omitempty"`
	Color       *Color       `json:"color,omitempty"        yaml:"color,omitempty"`
	CreatedDate *time.Time   `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	CreatedBy   *PartialUser `json:"created_by,omitempty"   yaml:"created_by,omitempty"`
}

// Comment represents a comment on a card.
type Comment struct {
	ID          string       `json:"id"                     yaml:"id"`
	CardID      string       `json:"card_id,omitempty"      yaml:"card_id,omitempty"`
	BoardID     string       `json:"board_id,omitempty"     yaml:"board_id,omitempty"`
	Text        string       `json:"text,omitempty"         yaml:"text,omitempty"`
	CreatedBy   *PartialUser `json:"created_by,omitempty"   yaml:"created_by,omitempty"`
	UpdatedBy   *PartialUser `json:"updated_by,omitempty"   yaml:"updated_by,omitempty"`
	CreatedDate *time.Time   `json:"created_date,omitempty" yaml:"created_date,omitempty"`
	UpdatedDate *time.Time   `json:"updated_date,omitempty" yaml:"updated_date,omitempty"`
}

// Attachment represents a file attached to a card.
type Attachment struct {
	ID          string       `json:"id"                     yaml:"id"`
	Filename    string       `json:"filename,omitempty"     yaml:"filename,omitempty"`
	MimeType    string       `json:"mime_type,omitempty"    yaml:"mime_type,omitempty"`
	CreatedBy   *PartialUser `json:"created_by,omitempty"   yaml:"created_by,omitempty"`
	CreatedDate *time.Time   `json:"created_date,omitempty" yaml:"created_date,omitempty"`
}

// User represents a Glo user.
type User struct {
	ID          string     `json:"id"                     yaml:"id"`
	Username    string     `json:"username,omitempty"     yaml:"username,omitempty"`
	Name        string     `json:"name,omitempty"         yaml:"name,omitempty"`
	Email       string     `json:"email,omitempty"        yaml:"email,omitempty"`
	CreatedDate *time.Time `json:"created_date,omitempty" yaml:"created_date,omitempty"`
}

// Request bodies. They are marshaled as given; unset fields are omitted.

// NewLabel is the body of a label create request.
type NewLabel struct {
	Name  string `json:"name"            yaml:"name"`
	Color *Color `json:"color,omitempty" yaml:"color,omitempty"`
}

// NewColumn is the body of a column create or edit request.
type NewColumn struct {
	Name     string `json:"name,omitempty"     yaml:"name,omitempty"`
	Position *int   `json:"position,omitempty" yaml:"position,omitempty"`
}

// NewCard is the body of a card create or edit request.
type NewCard struct {
	Name        string         `json:"name,omitempty"        yaml:"name,omitempty"`
	ColumnID    string         `json:"column_id,omitempty"   yaml:"column_id,omitempty"`
	Position    *int           `json:"position,omitempty"    yaml:"position,omitempty"`
	Description *Description   `json:"description,omitempty" yaml:"description,omitempty"`
	Assignees   []PartialUser  `json:"assignees,omitempty"   yaml:"assignees,omitempty"`
	Labels      []PartialLabel `json:"labels,omitempty"      yaml:"labels,omitempty"`
	DueDate     *time.Time     `json:"due_date,omitempty"    yaml:"due_date,omitempty"`
}

// NewComment is the body of a comment create or edit request.
type NewComment struct {
	Text string `json:"text" yaml:"text"`
}

// BatchError describes one item of a batch request that the API rejected.
type BatchError struct {
	Index   int    `json:"index"        yaml:"index"`
	ID      string `json:"id,omitempty" yaml:"id,omitempty"`
	Message string `json:"message"      yaml:"message"`
}

// BatchResult is the response of a batch create call. A non-empty Errors
// slice is a normal outcome, not a failed call.
type BatchResult[T any] struct {
	Successful []T          `json:"successful" yaml:"successful"`
	Errors     []BatchError `json:"errors"     yaml:"errors"`
}

// Total returns the number of items the API reported on.
func (r *BatchResult[T]) Total() int {
	if r == nil {
		return 0
	}

	return len(r.Successful) + len(r.Errors)
}
