package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewBoardsCommand creates the boards command group
func NewBoardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Manage boards",
		Long:    "List, inspect, create and delete Glo boards and their labels",
	}

	cmd.AddCommand(newBoardsListCommand())
	cmd.AddCommand(newBoardsGetCommand())
	cmd.AddCommand(newBoardsCreateCommand())
	cmd.AddCommand(newBoardsDeleteCommand())
	cmd.AddCommand(newLabelsCommand())

	return cmd
}

func newBoardsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long:  "List the boards the current user can see",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := flags.pageOptions()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			boards, err := client.Boards().GetAll(commandContext(cmd), &glo.BoardListOptions{
				PageOptions: page,
				Archived:    flags.archived,
				Fields:      flags.fields,
			})
			if err != nil {
				return fmt.Errorf("failed to list boards: %w", err)
			}

			format, _ := outputFormat()
			if format == constants.FormatTable && len(boards) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No boards found")

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), boards, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Columns", "Members", "Created")

				for _, board := range boards {
					_ = table.Append(
						board.ID,
						board.Name,
						strconv.Itoa(len(board.Columns)),
						strconv.Itoa(len(board.Members)),
						formatTime(board.CreatedDate),
					)
				}
			})
		},
	}

	addListFlags(cmd, &flags, true)

	return cmd
}

func newBoardsGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get BOARD_ID",
		Short: "Get board details",
		Long:  "Display a single board with its columns, labels and members",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			board, err := client.Boards().Get(commandContext(cmd), args[0], &glo.BoardGetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get board: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), board, func(table *tablewriter.Table) {
				renderBoardTable(table, board)
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to request (default name)")

	return cmd
}

func renderBoardTable(table *tablewriter.Table, board *glo.Board) {
	table.Header("Property", "Value")
	_ = table.Append("ID", board.ID)
	_ = table.Append("Name", valueOrDefault(board.Name, constants.NotAvailable))
	_ = table.Append("Created", formatTime(board.CreatedDate))
	_ = table.Append("Created By", formatUser(board.CreatedBy))
	_ = table.Append("Archived", formatTime(board.ArchivedDate))

	for _, column := range board.Columns {
		_ = table.Append("Column", column.ID+" "+column.Name)
	}

	for _, label := range board.Labels {
		_ = table.Append("Label", label.ID+" "+label.Name)
	}

	for _, member := range board.Members {
		_ = table.Append("Member", valueOrDefault(member.Username, member.ID)+" ("+member.Role+")")
	}
}

func newBoardsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME",
		Short: "Create a board",
		Long:  "Create a new board with the given name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			board, err := client.Boards().Create(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to create board: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), board, func(table *tablewriter.Table) {
				renderBoardTable(table, board)
			})
		},
	}
}

func newBoardsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BOARD_ID",
		Short: "Delete a board",
		Long:  "Delete a board and everything on it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete board '%s'?", args[0])) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload, err := client.Boards().Delete(commandContext(cmd), args[0])
			if err != nil {
				return fmt.Errorf("failed to delete board: %w", err)
			}

			return renderDeleted(cmd.OutOrStdout(), "board", args[0], payload)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newLabelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "labels",
		Aliases: []string{"label"},
		Short:   "Manage board labels",
		Long:    "Create, edit and delete the labels of a board",
	}

	cmd.AddCommand(newLabelsCreateCommand())
	cmd.AddCommand(newLabelsEditCommand())
	cmd.AddCommand(newLabelsDeleteCommand())

	return cmd
}

func renderLabel(cmd *cobra.Command, label *glo.Label) error {
	return renderOutput(cmd.OutOrStdout(), label, func(table *tablewriter.Table) {
		table.Header("ID", "Name", "Color", "Created")
		_ = table.Append(label.ID, label.Name, formatColor(label.Color), formatTime(label.CreatedDate))
	})
}

func newLabelsCreateCommand() *cobra.Command {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "create BOARD_ID",
		Short: "Create a label",
		Long:  "Create a label on a board. Colors are given as r,g,b or r,g,b,a",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			label := &glo.NewLabel{Name: name}

			if color != "" {
				parsed, err := parseColor(color)
				if err != nil {
					return err
				}

				label.Color = parsed
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			created, err := client.Boards().Labels().Create(commandContext(cmd), args[0], label)
			if err != nil {
				return fmt.Errorf("failed to create label: %w", err)
			}

			return renderLabel(cmd, created)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "label name")
	cmd.Flags().StringVar(&color, "color", "", "label color as r,g,b[,a]")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLabelsEditCommand() *cobra.Command {
	var (
		name  string
		color string
	)

	cmd := &cobra.Command{
		Use:   "edit BOARD_ID LABEL_ID",
		Short: "Edit a label",
		Long:  "Change the name or color of a label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" && color == "" {
				return constants.ErrNothingToUpdate
			}

			label := &glo.Label{Name: name}

			if color != "" {
				parsed, err := parseColor(color)
				if err != nil {
					return err
				}

				label.Color = parsed
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			edited, err := client.Boards().Labels().Edit(commandContext(cmd), args[0], args[1], label)
			if err != nil {
				return fmt.Errorf("failed to edit label: %w", err)
			}

			return renderLabel(cmd, edited)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new label name")
	cmd.Flags().StringVar(&color, "color", "", "new label color as r,g,b[,a]")

	return cmd
}

func newLabelsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BOARD_ID LABEL_ID",
		Short: "Delete a label",
		Long:  "Delete a label from a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete label '%s'?", args[1])) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload, err := client.Boards().Labels().Delete(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete label: %w", err)
			}

			return renderDeleted(cmd.OutOrStdout(), "label", args[1], payload)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}
