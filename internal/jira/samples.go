package jira

import (
	"time"

	jira "github.com/andygrunwald/go-jira"
	"github.com/danielolaszy/jiradash/pkg/models"
)

const (
	day = 24 * time.Hour

	// timestampLayout matches the tracker's ISO-8601 format with milliseconds.
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
	dateLayout      = "2006-01-02"
)

var (
	demoProject = models.ProjectRef{ID: "10001", Key: "DEMO", Name: "Demo Project"}

	statusInProgress = jira.Status{
		Name: "In Progress",
		ID:   "3",
		StatusCategory: jira.StatusCategory{
			ID:        4,
			Key:       "indeterminate",
			ColorName: "yellow",
			Name:      "In Progress",
		},
	}
	statusToDo = jira.Status{
		Name: "To Do",
		ID:   "1",
		StatusCategory: jira.StatusCategory{
			ID:        2,
			Key:       "new",
			ColorName: "blue-gray",
			Name:      "To Do",
		},
	}
	statusDone = jira.Status{
		Name: "Done",
		ID:   "6",
		StatusCategory: jira.StatusCategory{
			ID:        3,
			Key:       "done",
			ColorName: "green",
			Name:      "Done",
		},
	}

	priorityHigh   = jira.Priority{Name: "High", ID: "2", IconURL: "https://example.com/high.png"}
	priorityMedium = jira.Priority{Name: "Medium", ID: "3", IconURL: "https://example.com/medium.png"}

	typeTask  = jira.IssueType{ID: "10001", Name: "Task", IconURL: "https://example.com/task.png"}
	typeStory = jira.IssueType{ID: "10002", Name: "Story", IconURL: "https://example.com/story.png"}
	typeBug   = jira.IssueType{ID: "10004", Name: "Bug", IconURL: "https://example.com/bug.png"}
)

// sampleProjects returns a fresh copy of the sample projects.
func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID:             "10001",
			Key:            "DEMO",
			Name:           "Demo Project",
			ProjectTypeKey: "software",
			Simplified:     true,
			Style:          "next-gen",
			IsPrivate:      false,
			Properties:     map[string]any{},
			EntityID:       "demo-entity",
			UUID:           "demo-uuid",
		},
		{
			ID:             "10002",
			Key:            "TEST",
			Name:           "Test Project",
			ProjectTypeKey: "business",
			Simplified:     false,
			Style:          "classic",
			IsPrivate:      true,
			Properties:     map[string]any{},
			EntityID:       "test-entity",
			UUID:           "test-uuid",
		},
	}
}

// assignedIssues returns the sample issues with user as assignee and reporter.
// Timestamps are relative to now.
func assignedIssues(user *models.User, now time.Time) []models.Issue {
	return []models.Issue{
		{
			ID:  "10001",
			Key: "DEMO-1",
			Fields: models.IssueFields{
				Summary:     "Implement user authentication",
				Description: emptyDocument(),
				Status:      statusInProgress,
				Priority:    priorityHigh,
				Assignee:    user,
				Reporter:    user,
				Project:     demoProject,
				IssueType:   typeTask,
				Created:     timestamp(now.Add(-3 * day)),
				Updated:     timestamp(now.Add(-time.Hour)),
				DueDate:     now.Add(7 * day).UTC().Format(dateLayout),
			},
		},
		{
			ID:  "10002",
			Key: "DEMO-2",
			Fields: models.IssueFields{
				Summary:     "Design dashboard layout",
				Description: emptyDocument(),
				Status:      statusToDo,
				Priority:    priorityMedium,
				Assignee:    user,
				Reporter:    user,
				Project:     demoProject,
				IssueType:   typeStory,
				Created:     timestamp(now.Add(-2 * day)),
				Updated:     timestamp(now.Add(-2 * time.Hour)),
			},
		},
	}
}

// reportedIssues returns the sample issue reported by user and assigned to a
// fixed teammate.
func reportedIssues(user *models.User, now time.Time) []models.Issue {
	developer := &models.User{
		AccountID:    "dev-123",
		DisplayName:  "John Developer",
		EmailAddress: "john@example.com",
		AvatarUrls:   jira.AvatarUrls{Two4X24: "https://example.com/avatar.png"},
	}

	return []models.Issue{
		{
			ID:  "10003",
			Key: "DEMO-3",
			Fields: models.IssueFields{
				Summary:     "Bug in login form validation",
				Description: emptyDocument(),
				Status:      statusDone,
				Priority:    priorityHigh,
				Assignee:    developer,
				Reporter:    user,
				Project:     demoProject,
				IssueType:   typeBug,
				Created:     timestamp(now.Add(-5 * day)),
				Updated:     timestamp(now.Add(-day)),
			},
		},
	}
}

func emptyDocument() *models.Document {
	return &models.Document{Type: "doc", Content: []models.Document{}}
}

func timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}
