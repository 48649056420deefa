package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

func validateOutputFormat(format string) error {
	switch format {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, format)
	}
}

func outputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	if format == "" {
		return constants.FormatTable, nil
	}

	err := validateOutputFormat(format)
	if err != nil {
		return "", err
	}

	return format, nil
}

// renderOutput writes value as JSON or YAML, or hands a table to fill for
// the default table format.
func renderOutput(w io.Writer, value interface{}, fill func(table *tablewriter.Table)) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(constants.JSONIndentSize)

		err := encoder.Encode(value)
		if err != nil {
			return err
		}

		return encoder.Close()
	default:
		table := tablewriter.NewWriter(w)
		fill(table)

		return table.Render()
	}
}

// renderDeleted reports a delete call. The API payload is printed verbatim
// when the format is JSON or YAML and the server returned one.
func renderDeleted(w io.Writer, what, id string, payload json.RawMessage) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format == constants.FormatTable {
		_, _ = fmt.Fprintf(w, "Deleted %s %s\n", what, id)

		return nil
	}

	var value interface{} = map[string]string{"id": id, "status": "deleted"}

	if len(payload) > 0 {
		var decoded interface{}

		err := json.Unmarshal(payload, &decoded)
		if err == nil {
			value = decoded
		}
	}

	return renderOutput(w, value, nil)
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return constants.NotAvailable
	}

	return t.Format(time.RFC3339)
}

func formatPosition(position *int) string {
	if position == nil {
		return constants.NotAvailable
	}

	return strconv.Itoa(*position)
}

func formatUser(user *glo.PartialUser) string {
	if user == nil {
		return constants.NotAvailable
	}

	if user.Username != "" {
		return user.Username
	}

	return user.ID
}

// commandContext returns the context cobra was executed with.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// confirm asks before destructive operations unless force is set.
func confirm(cmd *cobra.Command, force bool, prompt string) bool {
	if force {
		return true
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	var response string

	_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)
	if response != "y" && response != "Y" {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

		return false
	}

	return true
}
