// Package models defines data structures shared across the application.
package models

import (
	jira "github.com/andygrunwald/go-jira"
)

// Credentials is the tuple a user signs in with.
type Credentials struct {
	// JiraURL is the base URL of the tracker instance (e.g., "https://demo.atlassian.net")
	JiraURL string `json:"jiraUrl" validate:"required,http_url"`

	// Email is the account e-mail address
	Email string `json:"email" validate:"required,email"`

	// APIToken is the personal API token paired with Email
	APIToken string `json:"apiToken" validate:"required"`
}

// Complete reports whether every field carries a value.
func (c Credentials) Complete() bool {
	return c.JiraURL != "" && c.Email != "" && c.APIToken != ""
}

// User represents the signed-in account.
type User struct {
	// AccountID identifies the session's account (e.g., "mock-3f9a1c2e7")
	AccountID string `json:"accountId"`

	// DisplayName is the human readable name derived from the e-mail
	DisplayName string `json:"displayName"`

	// EmailAddress is the e-mail the user signed in with
	EmailAddress string `json:"emailAddress"`

	// AvatarUrls holds avatar images keyed by size
	AvatarUrls jira.AvatarUrls `json:"avatarUrls"`
}

// Project represents a tracker project.
type Project struct {
	ID             string         `json:"id"`
	Key            string         `json:"key"`
	Name           string         `json:"name"`
	ProjectTypeKey string         `json:"projectTypeKey"`
	Simplified     bool           `json:"simplified"`
	Style          string         `json:"style"`
	IsPrivate      bool           `json:"isPrivate"`
	Properties     map[string]any `json:"properties"`
	EntityID       string         `json:"entityId"`
	UUID           string         `json:"uuid"`
}

// ProjectRef is the short project form embedded in issues.
type ProjectRef struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// Document is a rich-text node as used by issue descriptions.
type Document struct {
	Type    string     `json:"type"`
	Text    string     `json:"text,omitempty"`
	Content []Document `json:"content"`
}

// Issue represents a tracker issue.
type Issue struct {
	// ID is the numeric identifier (e.g., "10001")
	ID string `json:"id"`

	// Key is the full issue identifier (e.g., "DEMO-1")
	Key string `json:"key"`

	// Fields carries the issue content
	Fields IssueFields `json:"fields"`
}

// IssueFields holds the fields of an issue.
type IssueFields struct {
	Summary     string         `json:"summary"`
	Description *Document      `json:"description,omitempty"`
	Status      jira.Status    `json:"status"`
	Priority    jira.Priority  `json:"priority"`
	Assignee    *User          `json:"assignee"`
	Reporter    *User          `json:"reporter"`
	Project     ProjectRef     `json:"project"`
	IssueType   jira.IssueType `json:"issuetype"`

	// Created and Updated are ISO-8601 timestamps in UTC
	Created string `json:"created"`
	Updated string `json:"updated"`

	// DueDate is a calendar date (YYYY-MM-DD), empty when unset
	DueDate string `json:"duedate,omitempty"`
}

// SearchResult wraps a list of issues in a paging envelope.
type SearchResult struct {
	Issues     []Issue `json:"issues"`
	StartAt    int     `json:"startAt"`
	MaxResults int     `json:"maxResults"`
	Total      int     `json:"total"`
}
