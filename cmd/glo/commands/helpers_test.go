package commands

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input   string
		want    *glo.Color
		wantErr bool
	}{
		{input: "255,0,10", want: &glo.Color{R: 255, G: 0, B: 10, A: 1}},
		{input: "1, 2, 3, 0.25", want: &glo.Color{R: 1, G: 2, B: 3, A: 0.25}},
		{input: "1,2", wantErr: true},
		{input: "256,0,0", wantErr: true},
		{input: "1,2,3,1.5", wantErr: true},
		{input: "red,0,0", wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()

			got, err := parseColor(testCase.input)
			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
			assert.NotEmpty(t, formatColor(got))
		})
	}
}

func TestMaskToken(t *testing.T) {
	t.Parallel()

	assert.Empty(t, maskToken(""))
	assert.Equal(t, constants.MaskedSecret, maskToken("abc"))
	assert.Equal(t, "Bear"+constants.MaskedSecret, maskToken("Bearer pat-123"))
}

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	due, err := parseDueDate("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), due)

	due, err = parseDueDate("2024-03-01T10:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, 8, due.UTC().Hour())

	_, err = parseDueDate("tomorrow")
	require.Error(t, err)
}

func TestListFlags_PageOptions(t *testing.T) {
	t.Parallel()

	opts, err := (&listFlags{page: 2, sort: "Desc"}).pageOptions()
	require.NoError(t, err)
	assert.Equal(t, glo.PageOptions{Page: 2, Sort: glo.SortDesc}, opts)

	_, err = (&listFlags{perPage: -1}).pageOptions()
	require.ErrorIs(t, err, errPagingFlags)

	_, err = (&listFlags{sort: "up"}).pageOptions()
	require.ErrorIs(t, err, glo.ErrInvalidSortOrder)
}

func TestCLILogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger, err := newCLILogger(&buf, "", false)
	require.NoError(t, err)

	logger.Debug("hidden", nil)
	logger.Warn("retrying", map[string]interface{}{"attempt": 2})
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "retrying")
	assert.Contains(t, buf.String(), "attempt=2")

	buf.Reset()

	verbose, err := newCLILogger(&buf, "error", true)
	require.NoError(t, err)
	verbose.Debug("HTTP Request", map[string]interface{}{"method": "GET"})
	assert.Contains(t, buf.String(), "HTTP Request")

	_, err = newCLILogger(&buf, "chatty", false)
	require.Error(t, err)

	level, err := parseLogLevel("INFO")
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}
