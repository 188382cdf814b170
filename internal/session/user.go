package session

import (
	"encoding/base64"
	"strings"
	"unicode"

	jira "github.com/andygrunwald/go-jira"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/google/uuid"
)

const defaultAvatar = "https://avatar-management--avatars.us-west-2.prod.public.atl-paas.net/default-avatar-2.png"

// newUser derives the session user from the e-mail it signed in with.
// The account id is random, so it changes on every login.
func newUser(email string) *models.User {
	return &models.User{
		AccountID:    newAccountID(),
		DisplayName:  DisplayName(email),
		EmailAddress: email,
		AvatarUrls: jira.AvatarUrls{
			One6X16:   defaultAvatar,
			Two4X24:   defaultAvatar,
			Three2X32: defaultAvatar,
			Four8X48:  defaultAvatar,
		},
	}
}

func newAccountID() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "mock-" + id[:9]
}

// DisplayName turns the local part of an e-mail into a name: every
// non-letter becomes a space and each word starts upper case.
// "jane.doe42@example.com" becomes "Jane Doe  ".
func DisplayName(email string) string {
	local, _, _ := strings.Cut(email, "@")

	var b strings.Builder
	b.Grow(len(local))
	startOfWord := true
	for _, r := range local {
		if !isASCIILetter(r) {
			b.WriteRune(' ')
			startOfWord = true
			continue
		}
		if startOfWord {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
		startOfWord = false
	}
	return b.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// BuildAuthHeader returns the Basic authorization value for email and token.
func BuildAuthHeader(email, token string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+token))
}
