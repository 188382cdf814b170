package dashboard

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danielolaszy/jiradash/pkg/models"
)

// Render writes the header and the selected tab of data to w.
func Render(w io.Writer, data *Data, tab Tab) error {
	if data.User != nil {
		fmt.Fprintf(w, "Signed in as %s <%s>\n", data.User.DisplayName, data.User.EmailAddress)
	}
	fmt.Fprintf(w, "Projects: %d | Assigned: %d | Reported: %d\n\n",
		len(data.Projects), len(data.Assigned), len(data.Reported))

	switch tab {
	case TabProjects:
		return renderSection(w, "Projects", data.ProjectsErr, len(data.Projects) == 0, func(tw *tabwriter.Writer) {
			RenderProjects(tw, data.Projects)
		})
	case TabReported:
		return renderSection(w, "Reported by me", data.ReportedErr, len(data.Reported) == 0, func(tw *tabwriter.Writer) {
			RenderIssues(tw, data.Reported)
		})
	default:
		return renderSection(w, "Assigned to me", data.AssignedErr, len(data.Assigned) == 0, func(tw *tabwriter.Writer) {
			RenderIssues(tw, data.Assigned)
		})
	}
}

func renderSection(w io.Writer, title string, err error, empty bool, body func(tw *tabwriter.Writer)) error {
	fmt.Fprintf(w, "== %s ==\n", title)
	switch {
	case err != nil:
		fmt.Fprintf(w, "error: %v\n", err)
		return nil
	case empty:
		fmt.Fprintln(w, "nothing to show")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	body(tw)
	return tw.Flush()
}

// RenderProjects writes one row per project.
func RenderProjects(w io.Writer, projects []models.Project) {
	fmt.Fprintln(w, "KEY\tNAME\tTYPE\tSTYLE\tVISIBILITY")
	for _, p := range projects {
		visibility := "public"
		if p.IsPrivate {
			visibility = "private"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", p.Key, p.Name, p.ProjectTypeKey, p.Style, visibility)
	}
}

// RenderIssues writes one row per issue.
func RenderIssues(w io.Writer, issues []models.Issue) {
	fmt.Fprintln(w, "KEY\tTYPE\tPRIORITY\tSTATUS\tSUMMARY\tASSIGNEE\tUPDATED\tDUE")
	for _, issue := range issues {
		f := issue.Fields
		due := "-"
		if f.DueDate != "" {
			due = FormatDate(f.DueDate)
		}
		fmt.Fprintf(w, "%s\t%s\t%s %s\t%s (%s)\t%s\t%s\t%s\t%s\n",
			issue.Key,
			f.IssueType.Name,
			PriorityIcon(f.Priority.Name), f.Priority.Name,
			f.Status.Name, StatusColor(f.Status.StatusCategory.Key),
			f.Summary,
			userName(f.Assignee),
			FormatDate(f.Updated),
			due)
	}
}

func userName(u *models.User) string {
	if u == nil {
		return "Unassigned"
	}
	return u.DisplayName
}
