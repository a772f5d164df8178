package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// NewLoginCommand creates the login command.
//
// Canvas access tokens are user-generated (Account > Settings > New
// Access Token); login stores the deployment URL and token so later
// commands can omit them.
func NewLoginCommand() *cobra.Command {
	var tokenFlag string

	cmd := &cobra.Command{
		Use:   "login BASE_URL",
		Short: "Store a Canvas deployment and access token",
		Long:  "Verify an access token against a Canvas deployment and store both in the CLI configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			baseURL := strings.TrimSuffix(args[0], "/")

			token := tokenFlag
			if token == "" {
				fmt.Fprint(os.Stderr, "Access token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))

				fmt.Fprintln(os.Stderr)

				if err != nil {
					return fmt.Errorf("reading access token: %w", err)
				}

				token = strings.TrimSpace(string(byteToken))
			}

			viper.Set("base_url", baseURL)
			viper.Set("token", token)

			client, err := CreateClient()
			if err != nil {
				return err
			}

			// One authenticated request to prove the token works.
			_, err = client.Courses().List(context.Background(), nil)
			if err != nil {
				return fmt.Errorf("verifying access token: %w", err)
			}

			err = persistConfig()
			if err != nil {
				return err
			}

			fmt.Fprintf(os.Stdout, "Logged in to %s\n", baseURL)

			return nil
		},
	}

	cmd.Flags().StringVar(&tokenFlag, "token", "", "access token (prompted when omitted)")

	return cmd
}

// persistConfig writes the current viper state to the config file,
// creating ~/.canvas/config.yml on first use.
func persistConfig() error {
	if viper.ConfigFileUsed() != "" {
		err := viper.WriteConfig()
		if err != nil {
			return fmt.Errorf("writing config: %w", err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".canvas", "config.yml")

	err = viper.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
