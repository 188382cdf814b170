package cmd

import (
	"fmt"
	"sort"

	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/spf13/cobra"
)

// newAuthHeaderCommand prints the headers a direct API client would send,
// e.g. to configure a backend proxy.
func newAuthHeaderCommand(a *app) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "auth-header",
		Short: "Print the HTTP headers for the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}

			headers := a.session.AuthHeaders()
			names := make([]string, 0, len(headers))
			for name := range headers {
				names = append(names, name)
			}
			sort.Strings(names)

			for _, name := range names {
				value := headers[name]
				if name == "Authorization" && !reveal {
					value = "Basic " + logging.MaskSensitive(value[len("Basic "):])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", name, value)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "print the authorization value unmasked")

	return cmd
}
