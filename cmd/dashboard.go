package cmd

import (
	"github.com/danielolaszy/jiradash/internal/dashboard"
	"github.com/spf13/cobra"
)

// newDashboardCommand loads every section and prints the selected tab.
func newDashboardCommand(a *app) *cobra.Command {
	var tabName string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show projects, assigned issues and reported issues",
		Long: `Load the dashboard for the signed-in user.

All sections load concurrently; --tab selects which one is printed:
  projects   projects you can see
  assigned   issues assigned to you (default)
  reported   issues you reported`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, err := dashboard.ParseTab(tabName)
			if err != nil {
				return err
			}

			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			data, err := dashboard.Load(cmd.Context(), a.session, a.client)
			if err != nil {
				return err
			}

			return dashboard.Render(cmd.OutOrStdout(), data, tab)
		},
	}

	cmd.Flags().StringVarP(&tabName, "tab", "t", string(dashboard.TabAssigned), "section to show: projects, assigned or reported")

	return cmd
}
