package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewCommentsCommand creates the comments command group
func NewCommentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "comments",
		Aliases: []string{"comment"},
		Short:   "Manage card comments",
		Long:    "List, create, edit and delete the comments on a card",
	}

	cmd.AddCommand(newCommentsListCommand())
	cmd.AddCommand(newCommentsCreateCommand())
	cmd.AddCommand(newCommentsEditCommand())
	cmd.AddCommand(newCommentsDeleteCommand())
	cmd.AddCommand(newCommentsBatchCreateCommand())

	return cmd
}

var commentHeader = []string{"ID", "Author", "Created", "Text"}

func commentRow(comment glo.Comment) []string {
	return []string{comment.ID, formatUser(comment.CreatedBy), formatTime(comment.CreatedDate), comment.Text}
}

func renderComment(cmd *cobra.Command, comment *glo.Comment) error {
	return renderOutput(cmd.OutOrStdout(), comment, func(table *tablewriter.Table) {
		table.Header(toCells(commentHeader)...)
		_ = table.Append(toCells(commentRow(*comment))...)
	})
}

func newCommentsListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list BOARD_ID CARD_ID",
		Short: "List comments",
		Long:  "List the comments on a card",
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

			comments, err := client.Boards().Cards().Comments().Get(commandContext(cmd), args[0], args[1],
				&glo.CommentListOptions{PageOptions: page, Fields: flags.fields})
			if err != nil {
				return fmt.Errorf("failed to list comments: %w", err)
			}

			format, _ := outputFormat()
			if format == constants.FormatTable && len(comments) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No comments found")

				return nil
			}

			return renderOutput(cmd.OutOrStdout(), comments, func(table *tablewriter.Table) {
				table.Header(toCells(commentHeader)...)

				for _, comment := range comments {
					_ = table.Append(toCells(commentRow(comment))...)
				}
			})
		},
	}

	addListFlags(cmd, &flags, false)

	return cmd
}

func newCommentsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create BOARD_ID CARD_ID TEXT",
		Short: "Add a comment",
		Long:  "Add a markdown comment to a card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			comment, err := client.Boards().Cards().Comments().Create(commandContext(cmd), args[0], args[1],
				&glo.NewComment{Text: args[2]})
			if err != nil {
				return fmt.Errorf("failed to create comment: %w", err)
			}

			return renderComment(cmd, comment)
		},
	}
}

func newCommentsEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit BOARD_ID CARD_ID COMMENT_ID TEXT",
		Short: "Edit a comment",
		Long:  "Replace the text of a comment",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			comment, err := client.Boards().Cards().Comments().Edit(commandContext(cmd), args[0], args[1], args[2],
				&glo.NewComment{Text: args[3]})
			if err != nil {
				return fmt.Errorf("failed to edit comment: %w", err)
			}

			return renderComment(cmd, comment)
		},
	}
}

func newCommentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete BOARD_ID CARD_ID COMMENT_ID",
		Short: "Delete a comment",
		Long:  "Delete a comment from a card",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete comment '%s'?", args[2])) {
				return nil
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			payload, err := client.Boards().Cards().Comments().Delete(commandContext(cmd), args[0], args[1], args[2])
			if err != nil {
				return fmt.Errorf("failed to delete comment: %w", err)
			}

			return renderDeleted(cmd.OutOrStdout(), "comment", args[2], payload)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation prompt")

	return cmd
}

func newCommentsBatchCreateCommand() *cobra.Command {
	var flags batchFlags

	cmd := &cobra.Command{
		Use:   "batch-create BOARD_ID CARD_ID",
		Short: "Add several comments at once",
		Long: `Add comments from a file holding a list such as

  [{"text": "First"}, {"text": "Second"}]`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comments, err := readBatchFile[glo.NewComment](cmd, flags.file)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			result, err := client.Boards().Cards().Comments().BatchCreate(commandContext(cmd), args[0], args[1],
				comments, flags.options())
			if err != nil {
				return fmt.Errorf("failed to create comments: %w", err)
			}

			return renderBatchResult(cmd, result, commentHeader, commentRow)
		},
	}

	addBatchFlags(cmd, &flags, "comments")

	return cmd
}
