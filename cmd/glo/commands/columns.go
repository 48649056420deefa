package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewColumnsCommand creates the columns command group
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column"},
		Short:   "Manage board columns",
		Long:    "Create, edit and delete the columns of a board and list their cards",
	}

	cmd.AddCommand(newColumnsCreateCommand())
	cmd.AddCommand(newColumnsEditCommand())
	cmd.AddCommand(newColumnsDeleteCommand())
	cmd.AddCommand(newColumnsCardsCommand())
	cmd.AddCommand(newColumnsBatchCreateCommand())

	return cmd
}

func columnRow(column glo.Column) []string {
	return []string{column.ID, column.Name, formatPosition(column.Position), formatTime(column.CreatedDate)}
}

var columnHeader = []string{"ID", "Name", "Position", "Created"}

func renderColumn(cmd *cobra.Command, column *glo.Column) error {
	return renderOutput(cmd.OutOrStdout(), column, func(table *tablewriter.Table) {
		table.Header(toCells(columnHeader)...)
		_ = table.Append(toCells(columnRow(*column))...)
	})
}

// columnFlags builds a column body from --name and --position. The
// position is only sent when the flag was given.
type columnFlags struct {
	name     string
	position int
}

func (f *columnFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "column name")
	cmd.Flags().IntVar(&f.position, "position", 0, "zero-based column position")
}

func (f *columnFlags) body(cmd *cobra.Command) *glo.NewColumn {
	column := &glo.NewColumn{Name: f.name}

	if cmd.Flags().Changed("position") {
		position := f.position
		column.Position = &position
	}

	return column
}

func newColumnsCreateCommand() *cobra.Command {
	var flags columnFlags

	cmd := &cobra.Command{
		Use:   "create BOARD_ID",
		Short: "Create a column",
		Long:  "Create a column on a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			column, err := client.Boards().Columns().Create(commandContext(cmd), args[0], flags.body(cmd))
			if err != nil {
				return fmt.Errorf("failed to create column: %w", err)
			}

			return renderColumn(cmd, column)
		},
	}

	flags.add(cmd)
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newColumnsEditCommand() *cobra.Command {
	var flags columnFlags

	cmd := &cobra.Command{
		Use:   "edit BOARD_ID COLUMN_ID",
		Short: "Edit a column",
		Long:  "Rename or move a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("name") && !cmd.Flags().Changed("position") {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			column, err := client.Boards().Columns().Edit(commandContext(cmd), args[0], args[1], flags.body(cmd))
			if err != nil {
				return fmt.Errorf("failed to edit column: %w", err)
			}

			return renderColumn(cmd, column)
		},
	}

	flags.add(cmd)

	return cmd
}

func newColumnsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BOARD_ID COLUMN_ID",
		Short: "Delete a column",
		Long:  "Delete a column from a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete column '%s'?", args[1])) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload, err := client.Boards().Columns().Delete(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete column: %w", err)
			}

			return renderDeleted(cmd.OutOrStdout(), "column", args[1], payload)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newColumnsCardsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "cards BOARD_ID COLUMN_ID",
		Short: "List cards in a column",
		Long:  "List the cards of a single column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := flags.pageOptions()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			cards, err := client.Boards().Columns().GetCards(commandContext(cmd), args[0], args[1], &glo.CardListOptions{
				PageOptions: page,
				Archived:    flags.archived,
				Fields:      flags.fields,
			})
			if err != nil {
				return fmt.Errorf("failed to list column cards: %w", err)
			}

			return renderCards(cmd, cards)
		},
	}

	addListFlags(cmd, &flags, true)

	return cmd
}

func newColumnsBatchCreateCommand() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch-create BOARD_ID",
		Short: "Create several columns at once",
		Long: `Create columns from a file holding a list such as

  [{"name": "Backlog"}, {"name": "Done", "position": 3}]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			columns, err := readBatchFile[glo.NewColumn](cmd, flags.file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Boards().Columns().BatchCreate(commandContext(cmd), args[0], columns, flags.options())
			if err != nil {
				return fmt.Errorf("failed to create columns: %w", err)
			}

			return renderBatchResult(cmd, result, columnHeader, columnRow)
		},
	}

	addBatchFlags(cmd, &flags, "columns")

	return cmd
}
