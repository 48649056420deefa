package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/pkg/glo"
)

var errPagingFlags = errors.New("--page and --per-page must not be negative")

// listFlags holds the paging flags shared by list commands. Zero values
// leave the library defaults in place.
type listFlags struct {
	page     int
	perPage  int
	sort     string
	archived bool
	fields   []string
}

func addListFlags(cmd *cobra.Command, flags *listFlags, withArchived bool) {
	cmd.Flags().IntVar(&flags.page, "page", 0, "page number (default 1)")
	cmd.Flags().IntVar(&flags.perPage, "per-page", 0, "results per page (default 50)")
	cmd.Flags().StringVar(&flags.sort, "sort", "", "sort order: asc or desc (default asc)")
	cmd.Flags().StringSliceVar(&flags.fields, "fields", nil, "fields to request, replaces the defaults")

	if withArchived {
		cmd.Flags().BoolVar(&flags.archived, "archived", false, "list archived items instead")
	}
}

func (f *listFlags) pageOptions() (glo.PageOptions, error) {
	opts := glo.PageOptions{Page: f.page, PerPage: f.perPage}

	if f.page < 0 || f.perPage < 0 {
		return opts, errPagingFlags
	}

	if f.sort != "" {
		sort, err := glo.ParseSortOrder(f.sort)
		if err != nil {
			return opts, err
		}

		opts.Sort = sort
	}

	return opts, nil
}

// parseColor reads "r,g,b" or "r,g,b,a".
func parseColor(value string) (*glo.Color, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return nil, fmt.Errorf("color must be r,g,b or r,g,b,a, got %q", value)
	}

	channels := make([]int, 3)

	for i := range channels {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return nil, fmt.Errorf("color channel %q must be 0-255", parts[i])
		}

		channels[i] = n
	}

	color := &glo.Color{R: channels[0], G: channels[1], B: channels[2], A: 1}

	if len(parts) == 4 {
		alpha, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil || alpha < 0 || alpha > 1 {
			return nil, fmt.Errorf("color alpha %q must be between 0 and 1", parts[3])
		}

		color.A = alpha
	}

	return color, nil
}

func formatColor(color *glo.Color) string {
	if color == nil {
		return ""
	}

	return fmt.Sprintf("%d,%d,%d,%s", color.R, color.G, color.B, strconv.FormatFloat(color.A, 'f', -1, 64))
}
