package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// batchFlags are shared by the batch-create commands.
type batchFlags struct {
	file   string
	notify bool
}

func addBatchFlags(cmd *cobra.Command, flags *batchFlags, what string) {
	cmd.Flags().StringVarP(&flags.file, "file", "f", "",
		fmt.Sprintf("JSON or YAML file holding a list of %s, or - for stdin", what))
	cmd.Flags().BoolVar(&flags.notify, "notify", false, "send notifications for the created items")
}

func (f *batchFlags) options() *glo.BatchOptions {
	return &glo.BatchOptions{SendNotifications: f.notify}
}

// readBatchFile decodes a list of items from path. "-" reads stdin. Files
// ending in .yml or .yaml are decoded as YAML, everything else as JSON.
func readBatchFile[T any](cmd *cobra.Command, path string) ([]T, error) {
	if path == "" {
		return nil, constants.ErrBatchFileRequired
	}

	var (
		data []byte
		err  error
	)

	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		data, err = readRegularFile(path)
		if err != nil {
			return nil, err
		}
	}

	var items []T

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yml" || ext == ".yaml" {
		err = yaml.Unmarshal(data, &items)
	} else {
		err = json.Unmarshal(data, &items)
	}

	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(items) == 0 {
		return nil, fmt.Errorf("%s holds no items", path)
	}

	return items, nil
}

func readRegularFile(path string) ([]byte, error) {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == ".." {
			return nil, fmt.Errorf("%w: %s", constants.ErrDirectoryTraversalDetected, path)
		}
	}

	cleaned := filepath.Clean(path)

	info, err := os.Stat(cleaned)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", constants.ErrNotRegularFile, path)
	}

	data, err := os.ReadFile(cleaned)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	return data, nil
}

// renderBatchResult prints created items first and rejected items after.
func renderBatchResult[T any](cmd *cobra.Command, result *glo.BatchResult[T], header []string, row func(T) []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format != constants.FormatTable {
		return renderOutput(cmd.OutOrStdout(), result, nil)
	}

	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Created %d of %d\n", len(result.Successful), result.Total())

	if len(result.Successful) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header(toCells(header)...)

		for _, item := range result.Successful {
			_ = table.Append(toCells(row(item))...)
		}

		err = table.Render()
		if err != nil {
			return err
		}
	}

	if len(result.Errors) > 0 {
		_, _ = fmt.Fprintln(out, "Errors:")

		table := tablewriter.NewWriter(out)
		table.Header("Index", "ID", "Message")

		for _, batchErr := range result.Errors {
			_ = table.Append(strconv.Itoa(batchErr.Index), valueOrDefault(batchErr.ID, constants.NotAvailable), batchErr.Message)
		}

		return table.Render()
	}

	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, value := range values {
		cells[i] = value
	}

	return cells
}
