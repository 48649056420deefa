package commands

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewUserCommand creates the user command
func NewUserCommand() *cobra.Command {
	var fields []string

	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"whoami"},
		Short:   "Show the current user",
		Long:    "Display the user the configured token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrentUser(commandContext(cmd), &glo.UserGetOptions{Fields: fields})
			if err != nil {
				return fmt.Errorf("failed to get current user: %w", err)
			}

			return renderOutput(cmd.OutOrStdout(), user, func(table *tablewriter.Table) {
				table.Header("Property", "Value")
				_ = table.Append("ID", user.ID)
				_ = table.Append("Username", valueOrDefault(user.Username, constants.NotAvailable))
				_ = table.Append("Name", valueOrDefault(user.Name, constants.NotAvailable))
				_ = table.Append("Email", valueOrDefault(user.Email, constants.NotAvailable))
				_ = table.Append("Created", formatTime(user.CreatedDate))
			})
		},
	}

	cmd.Flags().StringSliceVar(&fields, "fields", nil, "fields to request (default username)")

	return cmd
}
