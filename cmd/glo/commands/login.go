package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/glo/internal/constants"
	"github.com/fivetwenty-io/glo/pkg/glo"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Store a personal access token",
		Long: `Verify a personal access token against the API and store it in the config file.

The token is read from --token, GLO_TOKEN, or prompted for. It is sent as the
Authorization header exactly as given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			if config.Token == "" {
				token, err := readToken(cmd)
				if err != nil {
					return err
				}

				config.Token = token
			}

			if config.Token == "" {
				return constants.ErrEmptyToken
			}

			client, err := newClientFromConfig(config)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(commandContext(cmd), constants.ShortHTTPTimeout)
			defer cancel()

			user, err := client.Users().GetCurrentUser(ctx, &glo.UserGetOptions{Fields: []string{"username", "email"}})
			if err != nil {
				return fmt.Errorf("failed to verify token: %w", err)
			}

			stored, err := loadConfigFile()
			if err != nil {
				return err
			}

			stored.Token = config.Token

			err = saveConfigStruct(stored, "token")
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", valueOrDefault(user.Username, user.ID))

			return nil
		},
	}
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored token",
		Long:  "Remove the personal access token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfigFile()
			if err != nil {
				return err
			}

			config.Token = ""

			err = saveConfigStruct(config, "token")
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}

// readToken prompts without echo on a terminal and reads one line otherwise.
func readToken(cmd *cobra.Command) (string, error) {
	if in, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(in.Fd())) {
		_, _ = fmt.Fprint(cmd.OutOrStdout(), "Token: ")

		token, err := term.ReadPassword(int(in.Fd()))

		_, _ = fmt.Fprintln(cmd.OutOrStdout())

		if err != nil {
			return "", fmt.Errorf("failed to read token: %w", err)
		}

		return strings.TrimSpace(string(token)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read token: %w", err)
	}

	return strings.TrimSpace(line), nil
}
