package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	jiraapi "github.com/andygrunwald/go-jira"
	"github.com/danielolaszy/jiradash/internal/dashboard"
	"github.com/danielolaszy/jiradash/internal/jira"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/spf13/cobra"
)

// newIssuesCommand groups the issue queries.
func newIssuesCommand(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "issues",
		Short: "Query issues",
		Long: `Query issues of the signed-in user.

The assigned and reported lists are available. Project listings, JQL search
and single issue lookups need a backend proxy and are not supported by this
client.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return validateOutput(output)
		},
	}

	cmd.PersistentFlags().StringVarP(&output, "output", "o", outputTable, "output format: table or json")

	cmd.AddCommand(
		newIssueListCommand(a, &output, "assigned", "List issues assigned to you", a.assigned),
		newIssueListCommand(a, &output, "reported", "List issues you reported", a.reported),
		&cobra.Command{
			Use:   "project KEY",
			Short: "List the issues of a project",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireSession(cmd.Context()); err != nil {
					return err
				}
				result, err := a.client.GetProjectIssues(cmd.Context(), strings.ToUpper(args[0]), jira.DefaultMaxResults)
				if err != nil {
					return err
				}
				return printSearchResult(cmd.OutOrStdout(), output, result)
			},
		},
		&cobra.Command{
			Use:   "search JQL",
			Short: "Search issues with JQL",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireSession(cmd.Context()); err != nil {
					return err
				}
				jql := strings.Join(args, " ")
				result, err := a.client.SearchIssues(cmd.Context(), jql, &jiraapi.SearchOptions{MaxResults: jira.DefaultMaxResults})
				if err != nil {
					return err
				}
				return printSearchResult(cmd.OutOrStdout(), output, result)
			},
		},
		&cobra.Command{
			Use:   "get KEY",
			Short: "Show a single issue",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.requireSession(cmd.Context()); err != nil {
					return err
				}
				issue, err := a.client.GetIssue(cmd.Context(), strings.ToUpper(args[0]))
				if err != nil {
					return err
				}
				return printSearchResult(cmd.OutOrStdout(), output, &models.SearchResult{Issues: []models.Issue{*issue}, Total: 1})
			},
		},
	)

	return cmd
}

type issueQuery func(ctx context.Context, maxResults int) (*models.SearchResult, error)

func newIssueListCommand(a *app, output *string, use, short string, query issueQuery) *cobra.Command {
	var maxResults int

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.requireSession(cmd.Context()); err != nil {
				return err
			}
			result, err := query(cmd.Context(), maxResults)
			if err != nil {
				return err
			}
			return printSearchResult(cmd.OutOrStdout(), *output, result)
		},
	}

	cmd.Flags().IntVarP(&maxResults, "max", "m", dashboard.IssueLimit, "maximum number of issues to request")

	return cmd
}

// assigned and reported resolve the client at run time, after setup.
func (a *app) assigned(ctx context.Context, maxResults int) (*models.SearchResult, error) {
	return a.client.GetAssignedIssues(ctx, maxResults)
}

func (a *app) reported(ctx context.Context, maxResults int) (*models.SearchResult, error) {
	return a.client.GetReportedIssues(ctx, maxResults)
}

func printSearchResult(w io.Writer, output string, result *models.SearchResult) error {
	if output == outputJSON {
		return writeJSON(w, result)
	}
	if err := writeTable(w, func(tw io.Writer) {
		dashboard.RenderIssues(tw, result.Issues)
	}); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nShowing %d of %d (max %d)\n", len(result.Issues), result.Total, result.MaxResults)
	return err
}
