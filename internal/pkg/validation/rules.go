package validation

import (
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// GitHub repository URL pattern: owner and repository segments required
	GithubURLPattern = `^https?://(www\.)?github\.com/.+/.+`

	// User identifier pattern: letters, digits, hyphens
	UserIDPattern = `^[A-Z0-9\-]{2,32}$`

	// Password minimum for self-service flows (change/setup)
	PasswordMinLength = 6

	// Password minimum for admin-managed flows (create/reset)
	AdminPasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	GithubURL *regexp.Regexp
	UserID    *regexp.Regexp
}{
	GithubURL: regexp.MustCompile(GithubURLPattern),
	UserID:    regexp.MustCompile(UserIDPattern),
}

// NormalizeUserID uppercases and trims a user identifier. User IDs are
// case-insensitive on input and stored uppercase.
func NormalizeUserID(userID string) string {
	return strings.ToUpper(strings.TrimSpace(userID))
}

// IsValidUserID reports whether a normalized user ID matches the expected shape.
func IsValidUserID(userID string) bool {
	return CompiledPatterns.UserID.MatchString(userID)
}

// IsValidGithubURL reports whether the URL points at a GitHub repository.
func IsValidGithubURL(url string) bool {
	return CompiledPatterns.GithubURL.MatchString(url)
}
