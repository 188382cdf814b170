package cmd

import (
	"fmt"

	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/spf13/cobra"
)

// newLoginCommand signs in and persists the session for later runs.
func newLoginCommand(a *app) *cobra.Command {
	var creds models.Credentials

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to a Jira instance",
		Long: `Sign in with your Jira URL, account e-mail and API token.

Any non-empty combination is accepted; the session is stored in the data
directory and restored automatically by the other commands.

Example:
  jiradash login --url https://acme.atlassian.net --email jane@acme.com --token $JIRA_TOKEN`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := creds.Validate(); err != nil {
				return err
			}

			// A pending restore would otherwise overwrite this login
			if err := a.waitRestored(cmd.Context()); err != nil {
				return err
			}

			logging.Info("logging in",
				"url", creds.JiraURL,
				"email", creds.Email,
				"token", logging.MaskSensitive(creds.APIToken))

			user, err := a.session.Login(cmd.Context(), creds)
			if err != nil {
				return fmt.Errorf("login failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.DisplayName, user.EmailAddress)
			return nil
		},
	}

	cmd.Flags().StringVar(&creds.JiraURL, "url", "https://demo.atlassian.net", "Jira instance URL")
	cmd.Flags().StringVar(&creds.Email, "email", "demo@example.com", "account e-mail address")
	cmd.Flags().StringVar(&creds.APIToken, "token", "demo-token-123", "API token")

	return cmd
}
