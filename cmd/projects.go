package cmd

import (
	"io"

	"github.com/danielolaszy/jiradash/internal/dashboard"
	"github.com/spf13/cobra"
)

func newProjectsCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateOutput(output); err != nil {
				return err
			}
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			projects, err := a.client.GetProjects(cmd.Context())
			if err != nil {
				return err
			}

			if output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), projects)
			}
			return writeTable(cmd.OutOrStdout(), func(w io.Writer) {
				dashboard.RenderProjects(w, projects)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	return cmd
}
