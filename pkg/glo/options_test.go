package glo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/pkg/glo"
)

func TestBoardListOptions_ToValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *glo.BoardListOptions
		want string
	}{
		{name: "nil", opts: nil, want: "archived=false&fields=name&page=1&per_page=50&sort=asc"},
		{name: "zero value", opts: &glo.BoardListOptions{}, want: "archived=false&fields=name&page=1&per_page=50&sort=asc"},
		{
			name: "only page",
			opts: &glo.BoardListOptions{PageOptions: glo.PageOptions{Page: 4}},
			want: "archived=false&fields=name&page=4&per_page=50&sort=asc",
		},
		{
			name: "only archived",
			opts: &glo.BoardListOptions{Archived: true},
			want: "archived=true&fields=name&page=1&per_page=50&sort=asc",
		},
		{
			name: "fields in caller order",
			opts: &glo.BoardListOptions{Fields: []string{"columns", "name"}},
			want: "archived=false&fields=columns%2Cname&page=1&per_page=50&sort=asc",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, testCase.opts.ToValues().Encode())
		})
	}
}

func TestDefaultOptions(t *testing.T) {
	t.Parallel()

	boards := glo.DefaultBoardListOptions()
	assert.Equal(t, 1, boards.Page)
	assert.Equal(t, 50, boards.PerPage)
	assert.Equal(t, glo.SortAsc, boards.Sort)
	assert.False(t, boards.Archived)
	assert.Equal(t, []string{"name"}, boards.Fields)

	assert.Equal(t, []string{"name"}, glo.DefaultBoardGetOptions().Fields)
	assert.Equal(t, []string{"name", "board_id", "column_id"}, glo.DefaultCardListOptions().Fields)
	assert.Equal(t, []string{"name", "board_id", "card_id"}, glo.DefaultCardGetOptions().Fields)
	assert.Equal(t, []string{"filename", "mime_type"}, glo.DefaultAttachmentListOptions().Fields)
	assert.Equal(t, []string{"text"}, glo.DefaultCommentListOptions().Fields)
	assert.Equal(t, []string{"username"}, glo.DefaultUserGetOptions().Fields)
}

func TestDefaultOptions_AreIndependentCopies(t *testing.T) {
	t.Parallel()

	first := glo.DefaultCardListOptions()
	first.Fields[0] = "mutated"

	second := glo.DefaultCardListOptions()
	assert.Equal(t, "name", second.Fields[0])
}

func TestWithDefaults_DoesNotAliasCallerFields(t *testing.T) {
	t.Parallel()

	fields := []string{"text"}
	opts := &glo.CommentListOptions{Fields: fields}

	merged := opts.WithDefaults()
	merged.Fields[0] = "changed"

	assert.Equal(t, "text", fields[0])
}

func TestGetOptions_ToValues(t *testing.T) {
	t.Parallel()

	var cardGet *glo.CardGetOptions
	assert.Equal(t, "fields=name%2Cboard_id%2Ccard_id", cardGet.ToValues().Encode())

	var user *glo.UserGetOptions
	assert.Equal(t, "fields=username", user.ToValues().Encode())

	user = &glo.UserGetOptions{Fields: []string{"email"}}
	assert.Equal(t, "fields=email", user.ToValues().Encode())

	var attachments *glo.AttachmentListOptions
	assert.Equal(t, "fields=filename%2Cmime_type&page=1&per_page=50&sort=asc", attachments.ToValues().Encode())
}

func TestParseSortOrder(t *testing.T) {
	t.Parallel()

	order, err := glo.ParseSortOrder("DESC")
	require.NoError(t, err)
	assert.Equal(t, glo.SortDesc, order)

	order, err = glo.ParseSortOrder(" asc ")
	require.NoError(t, err)
	assert.Equal(t, glo.SortAsc, order)

	_, err = glo.ParseSortOrder("sideways")
	require.ErrorIs(t, err, glo.ErrInvalidSortOrder)
}

func TestBatchOptions_SendNotificationsOrDefault(t *testing.T) {
	t.Parallel()

	var opts *glo.BatchOptions
	assert.False(t, opts.SendNotificationsOrDefault())
	assert.True(t, (&glo.BatchOptions{SendNotifications: true}).SendNotificationsOrDefault())
}

func TestBatchResult_Total(t *testing.T) {
	t.Parallel()

	var nilResult *glo.BatchResult[glo.Card]
	assert.Equal(t, 0, nilResult.Total())

	result := &glo.BatchResult[glo.Card]{
		Successful: []glo.Card{{ID: "k1"}, {ID: "k2"}},
		Errors:     []glo.BatchError{{Index: 2, Message: "bad"}},
	}
	assert.Equal(t, 3, result.Total())
}
