// Package dashboard loads and renders the signed-in user's overview:
// projects, assigned issues and reported issues.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/sourcegraph/conc"
)

// IssueLimit is the page size requested for each issue list.
const IssueLimit = 20

// ErrNotAuthenticated is returned by Load when nobody is signed in.
var ErrNotAuthenticated = errors.New("not logged in, run 'jiradash login' first")

// Session is the part of the session store the dashboard needs.
type Session interface {
	IsAuthenticated() bool
	CurrentUser() *models.User
}

// Source provides dashboard data.
type Source interface {
	GetProjects(ctx context.Context) ([]models.Project, error)
	GetAssignedIssues(ctx context.Context, maxResults int) (*models.SearchResult, error)
	GetReportedIssues(ctx context.Context, maxResults int) (*models.SearchResult, error)
}

// Data is one loaded dashboard. Each section carries its own error so a
// failing section does not hide the others.
type Data struct {
	User *models.User

	Projects    []models.Project
	ProjectsErr error

	Assigned    []models.Issue
	AssignedErr error

	Reported    []models.Issue
	ReportedErr error
}

// Load fetches all sections concurrently.
func Load(ctx context.Context, session Session, source Source) (*Data, error) {
	if !session.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	data := &Data{User: session.CurrentUser()}
	start := time.Now()

	var wg conc.WaitGroup
	wg.Go(func() {
		data.Projects, data.ProjectsErr = source.GetProjects(ctx)
	})
	wg.Go(func() {
		result, err := source.GetAssignedIssues(ctx, IssueLimit)
		if err != nil {
			data.AssignedErr = err
			return
		}
		data.Assigned = result.Issues
	})
	wg.Go(func() {
		result, err := source.GetReportedIssues(ctx, IssueLimit)
		if err != nil {
			data.ReportedErr = err
			return
		}
		data.Reported = result.Issues
	})
	wg.Wait()

	logging.Debug("dashboard loaded",
		"projects", len(data.Projects),
		"assigned", len(data.Assigned),
		"reported", len(data.Reported),
		"duration", time.Since(start))

	return data, nil
}

// StatusColor maps a status category key to its badge color.
func StatusColor(categoryKey string) string {
	switch strings.ToLower(categoryKey) {
	case "new", "indeterminate":
		return "#42526E"
	case "done":
		return "#00875A"
	default:
		return "#0052CC"
	}
}

// PriorityIcon maps a priority name to an icon.
func PriorityIcon(priority string) string {
	switch strings.ToLower(priority) {
	case "highest":
		return "🔴"
	case "high":
		return "🟠"
	case "medium":
		return "🟡"
	case "low":
		return "🟢"
	case "lowest":
		return "🔵"
	default:
		return "⚪"
	}
}

// FormatDate renders an ISO timestamp or date as "Jan 2, 2006".
// Values it cannot parse are returned unchanged.
func FormatDate(value string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return value
}

// Tab selects the section Render prints.
type Tab string

const (
	TabProjects Tab = "projects"
	TabAssigned Tab = "assigned"
	TabReported Tab = "reported"
)

// ParseTab validates a tab name. An empty name selects the assigned issues.
func ParseTab(name string) (Tab, error) {
	switch Tab(strings.ToLower(name)) {
	case "", TabAssigned:
		return TabAssigned, nil
	case TabProjects:
		return TabProjects, nil
	case TabReported:
		return TabReported, nil
	default:
		return "", fmt.Errorf("unknown tab %q, expected projects, assigned or reported", name)
	}
}
