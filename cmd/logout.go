package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.waitRestored(cmd.Context()); err != nil {
				return err
			}

			a.session.Logout(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	}
}
