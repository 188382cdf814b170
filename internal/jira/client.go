// Package jira provides the data facade the dashboard reads projects and
// issues from. A browser-style client cannot reach the tracker's REST API
// directly, so every call answers with sample data after a simulated delay.
package jira

import (
	"context"
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/danielolaszy/jiradash/internal/latency"
	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/jonboulle/clockwork"
)

// DefaultMaxResults is the page size callers use when they have no preference.
const DefaultMaxResults = 50

// UserSource provides the signed-in user embedded into sample issues.
type UserSource interface {
	CurrentUser() *models.User
}

// Delays holds the simulated round trip of each call.
type Delays struct {
	Projects time.Duration
	Assigned time.Duration
	Reported time.Duration
}

// DefaultDelays mirror typical response times of the hosted service.
var DefaultDelays = Delays{
	Projects: time.Second,
	Assigned: 1500 * time.Millisecond,
	Reported: 1200 * time.Millisecond,
}

// Client handles the project and issue queries of the dashboard.
type Client struct {
	users  UserSource
	clock  clockwork.Clock
	delays Delays
}

// Option configures a Client.
type Option func(*Client)

// WithClock sets the clock driving the simulated delays.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// WithDelays overrides the simulated delays.
func WithDelays(d Delays) Option {
	return func(c *Client) { c.delays = d }
}

// NewClient creates a client that reads the current user from users.
func NewClient(users UserSource, opts ...Option) *Client {
	c := &Client{
		users:  users,
		clock:  clockwork.NewRealClock(),
		delays: DefaultDelays,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetProjects returns the projects visible to the user.
func (c *Client) GetProjects(ctx context.Context) ([]models.Project, error) {
	logging.Warn("backend proxy unavailable, serving sample projects")

	projects := sampleProjects()
	return latency.Resolve(ctx, c.clock, c.delays.Projects, func() []models.Project {
		return projects
	})
}

// GetAssignedIssues returns the issues assigned to the current user.
// maxResults is echoed in the result; the sample list is never truncated.
func (c *Client) GetAssignedIssues(ctx context.Context, maxResults int) (*models.SearchResult, error) {
	logging.Warn("backend proxy unavailable, serving sample assigned issues")

	result := newSearchResult(assignedIssues(c.users.CurrentUser(), c.clock.Now()), maxResults)
	return latency.Resolve(ctx, c.clock, c.delays.Assigned, func() *models.SearchResult {
		return result
	})
}

// GetReportedIssues returns the issues reported by the current user.
func (c *Client) GetReportedIssues(ctx context.Context, maxResults int) (*models.SearchResult, error) {
	logging.Warn("backend proxy unavailable, serving sample reported issues")

	result := newSearchResult(reportedIssues(c.users.CurrentUser(), c.clock.Now()), maxResults)
	return latency.Resolve(ctx, c.clock, c.delays.Reported, func() *models.SearchResult {
		return result
	})
}

// GetProjectIssues would list the issues of a project. It needs a backend
// proxy and always fails.
func (c *Client) GetProjectIssues(ctx context.Context, projectKey string, maxResults int) (*models.SearchResult, error) {
	logging.Warn("project issues require a backend proxy", "project", projectKey)
	return nil, models.NewNotImplementedError()
}

// SearchIssues would run a JQL search. It needs a backend proxy and always fails.
func (c *Client) SearchIssues(ctx context.Context, jql string, opts *jira.SearchOptions) (*models.SearchResult, error) {
	logging.Warn("issue search requires a backend proxy", "jql", jql)
	return nil, models.NewNotImplementedError()
}

// GetIssue would fetch a single issue. It needs a backend proxy and always fails.
func (c *Client) GetIssue(ctx context.Context, issueKey string) (*models.Issue, error) {
	logging.Warn("issue lookup requires a backend proxy", "issue", issueKey)
	return nil, models.NewNotImplementedError()
}

func newSearchResult(issues []models.Issue, maxResults int) *models.SearchResult {
	return &models.SearchResult{
		Issues:     issues,
		StartAt:    0,
		MaxResults: maxResults,
		Total:      len(issues),
	}
}
