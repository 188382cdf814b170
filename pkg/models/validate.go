package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the credentials the way the login form does: every field
// is required, the URL must be http(s) and the e-mail well formed.
// Violations are reported as a single validation error.
func (c Credentials) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate credentials: %w", err)
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, describeField(fe))
	}
	return NewValidationError(strings.Join(problems, "; "))
}

func describeField(fe validator.FieldError) string {
	name := fe.Field()
	switch name {
	case "JiraURL":
		name = "Jira URL"
	case "APIToken":
		name = "API token"
	}

	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "http_url":
		return name + " must start with http:// or https://"
	case "email":
		return name + " must be a valid e-mail address"
	default:
		return fmt.Sprintf("%s failed %q", name, fe.Tag())
	}
}
