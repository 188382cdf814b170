package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newWhoamiCommand reports the restored session.
func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.waitRestored(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			user := a.session.CurrentUser()
			if !a.session.IsAuthenticated() || user == nil {
				fmt.Fprintln(out, "Not logged in")
				return nil
			}

			fmt.Fprintf(out, "Name:       %s\n", user.DisplayName)
			fmt.Fprintf(out, "E-mail:     %s\n", user.EmailAddress)
			fmt.Fprintf(out, "Account ID: %s\n", user.AccountID)
			if creds := a.session.CurrentCredentials(); creds != nil {
				fmt.Fprintf(out, "Instance:   %s\n", creds.JiraURL)
			}
			return nil
		},
	}
}
