package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewCardsCommand creates the cards command group
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Manage cards",
		Long:    "List, inspect, create, edit and delete the cards of a board",
	}

	cmd.AddCommand(newCardsListCommand())
	cmd.AddCommand(newCardsGetCommand())
	cmd.AddCommand(newCardsCreateCommand())
	cmd.AddCommand(newCardsEditCommand())
	cmd.AddCommand(newCardsDeleteCommand())
	cmd.AddCommand(newCardsAttachmentsCommand())
	cmd.AddCommand(newCardsBatchCreateCommand())

	return cmd
}

var cardHeader = []string{"ID", "Name", "Column", "Position", "Comments", "Due"}

func cardRow(card glo.Card) []string {
	return []string{
		card.ID,
		card.Name,
		valueOrDefault(card.ColumnID, constants.NotAvailable),
		formatPosition(card.Position),
		strconv.Itoa(card.CommentCount),
		formatTime(card.DueDate),
	}
}

func renderCards(cmd *cobra.Command, cards []glo.Card) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	if format == constants.FormatTable && len(cards) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No cards found")

		return nil
	}

	return renderOutput(cmd.OutOrStdout(), cards, func(table *tablewriter.Table) {
		table.Header(toCells(cardHeader)...)

		for _, card := range cards {
			_ = table.Append(toCells(cardRow(card))...)
		}
	})
}

func renderCard(cmd *cobra.Command, card *glo.Card) error {
	return renderOutput(cmd.OutOrStdout(), card, func(table *tablewriter.Table) {
		table.Header("Property", "Value")
		_ = table.Append("ID", card.ID)
		_ = table.Append("Name", valueOrDefault(card.Name, constants.NotAvailable))
		_ = table.Append("Board", valueOrDefault(card.BoardID, constants.NotAvailable))
		_ = table.Append("Column", valueOrDefault(card.ColumnID, constants.NotAvailable))
		_ = table.Append("Position", formatPosition(card.Position))
		_ = table.Append("Due", formatTime(card.DueDate))
		_ = table.Append("Created", formatTime(card.CreatedDate))
		_ = table.Append("Created By", formatUser(card.CreatedBy))

		if card.Description != nil {
			_ = table.Append("Description", card.Description.Text)
		}

		for _, label := range card.Labels {
			_ = table.Append("Label", valueOrDefault(label.Name, label.ID))
		}

		for i := range card.Assignees {
			_ = table.Append("Assignee", formatUser(&card.Assignees[i]))
		}
	})
}

func newCardsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list BOARD_ID",
		Short: "List cards",
		Long:  "List the cards of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := flags.pageOptions()
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			cards, err := client.Boards().Cards().GetAll(commandContext(cmd), args[0], &glo.CardListOptions{
				PageOptions: page,
				Archived:    flags.archived,
				Fields:      flags.fields,
			})
			if err != nil {
				return fmt.Errorf("failed to list cards: %w", err)
			}

			return renderCards(cmd, cards)
		},
	}

	addListFlags(cmd, &flags, true)

	return cmd
}

func newCardsGetCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:   "get BOARD_ID CARD_ID",
		Short: "Get card details",
		Long:  "Display a single card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			card, err := client.Boards().Cards().Get(commandContext(cmd), args[0], args[1], &glo.CardGetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get card: %w", err)
			}

			return renderCard(cmd, card)
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to request (default name,board_id,card_id)")

	return cmd
}

// cardFlags builds a card body from the flags that were actually given.
type cardFlags struct {
	name        string
	columnID    string
	position    int
	description string
	assignees   []string
	labels      []string
	due         string
}

func (f *cardFlags) add(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "card name")
	cmd.Flags().StringVar(&f.columnID, "column", "", "column ID")
	cmd.Flags().IntVar(&f.position, "position", 0, "zero-based position in the column")
	cmd.Flags().StringVar(&f.description, "description", "", "markdown description")
	cmd.Flags().StringSliceVar(&f.assignees, "assignee", nil, "assignee user ID, repeatable")
	cmd.Flags().StringSliceVar(&f.labels, "label", nil, "label ID, repeatable")
	cmd.Flags().StringVar(&f.due, "due", "", "due date as RFC 3339 or YYYY-MM-DD")
}

func (f *cardFlags) body(cmd *cobra.Command) (*glo.NewCard, bool, error) {
	card := &glo.NewCard{Name: f.name, ColumnID: f.columnID}
	changed := f.name != "" || f.columnID != ""

	if cmd.Flags().Changed("position") {
		position := f.position
		card.Position = &position
		changed = true
	}

	if cmd.Flags().Changed("description") {
		card.Description = &glo.Description{Text: f.description}
		changed = true
	}

	for _, id := range f.assignees {
		card.Assignees = append(card.Assignees, glo.PartialUser{ID: id})
		changed = true
	}

	for _, id := range f.labels {
		card.Labels = append(card.Labels, glo.PartialLabel{ID: id})
		changed = true
	}

	if f.due != "" {
		due, err := parseDueDate(f.due)
		if err != nil {
			return nil, false, err
		}

		card.DueDate = &due
		changed = true
	}

	return card, changed, nil
}

func parseDueDate(value string) (time.Time, error) {
	if due, err := time.Parse(time.RFC3339, value); err == nil {
		return due, nil
	}

	due, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("due date %q must be RFC 3339 or YYYY-MM-DD", value)
	}

	return due, nil
}

func newCardsCreateCommand() *cobra.Command {
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "create BOARD_ID",
		Short: "Create a card",
		Long:  "Create a card in a column of a board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, _, err := flags.body(cmd)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			card, err := client.Boards().Cards().Create(commandContext(cmd), args[0], body)
			if err != nil {
				return fmt.Errorf("failed to create card: %w", err)
			}

			return renderCard(cmd, card)
		},
	}

	flags.add(cmd)
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}

func newCardsEditCommand() *cobra.Command {
	var flags cardFlags

	cmd := &cobra.Command{
		Use:   "edit BOARD_ID CARD_ID",
		Short: "Edit a card",
		Long:  "Change the fields of a card. Only the given flags are sent",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, changed, err := flags.body(cmd)
			if err != nil {
				return err
			}

			if !changed {
				return constants.ErrNothingToUpdate
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			card, err := client.Boards().Cards().Edit(commandContext(cmd), args[0], args[1], body)
			if err != nil {
				return fmt.Errorf("failed to edit card: %w", err)
			}

			return renderCard(cmd, card)
		},
	}

	flags.add(cmd)

	return cmd
}

func newCardsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BOARD_ID CARD_ID",
		Short: "Delete a card",
		Long:  "Delete a card from a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete card '%s'?", args[1])) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload, err := client.Boards().Cards().Delete(commandContext(cmd), args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to delete card: %w", err)
			}

			return renderDeleted(cmd.OutOrStdout(), "card", args[1], payload)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newCardsAttachmentsCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "attachments BOARD_ID CARD_ID",
		Short: "List card attachments",
		Long:  "List the files attached to a card",
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

			attachments, err := client.Boards().Cards().GetAttachments(commandContext(cmd), args[0], args[1],
				&glo.AttachmentListOptions{PageOptions: page, Fields: flags.fields})
			if err != nil {
				return fmt.Errorf("failed to list attachments: %w", err)
			}

			format, _ := outputFormat()
			if format == constants.FormatTable && len(attachments) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No attachments found")

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), attachments, func(table *tablewriter.Table) {
				table.Header("ID", "Filename", "MIME Type", "Created")

				for _, attachment := range attachments {
					_ = table.Append(attachment.ID, attachment.Filename, attachment.MimeType, formatTime(attachment.CreatedDate))
				}
			})
		},
	}

	addListFlags(cmd, &flags, false)

	return cmd
}

func newCardsBatchCreateCommand() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch-create BOARD_ID",
		Short: "Create several cards at once",
		Long: `Create cards from a file holding a list such as

  [{"name": "Write docs", "column_id": "c1"}, {"name": "Ship", "column_id": "c2"}]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := readBatchFile[glo.NewCard](cmd, flags.file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Boards().Cards().BatchCreate(commandContext(cmd), args[0], cards, flags.options())
			if err != nil {
				return fmt.Errorf("failed to create cards: %w", err)
			}

			return renderBatchResult(cmd, result, cardHeader, cardRow)
		},
	}

	addBatchFlags(cmd, &flags, "cards")

	return cmd
}
