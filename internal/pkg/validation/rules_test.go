package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUserID(t *testing.T) {
	assert.Equal(t, "WS2024-017", NormalizeUserID("  ws2024-017 "))
	assert.Equal(t, "ADMIN-01", NormalizeUserID("admin-01"))
	assert.Equal(t, "", NormalizeUserID("   "))
}

func TestIsValidUserID(t *testing.T) {
	valid := []string{"WS2024-017", "ADMIN-01", "U1", "A1-B2-C3"}
	for _, id := range valid {
		assert.True(t, IsValidUserID(id), id)
	}

	invalid := []string{
		"",
		"A",          // too short
		"lower-case", // must be normalized first
		"HAS SPACE",
		"UNDER_SCORE",
		"WS2024-0123456789012345678901234567890", // too long
	}
	for _, id := range invalid {
		assert.False(t, IsValidUserID(id), id)
	}
}

func TestIsValidGithubURL(t *testing.T) {
	valid := []string{
		"https://github.com/octocat/hello-world",
		"http://github.com/octocat/hello-world",
		"https://www.github.com/octocat/hello-world",
	}
	for _, url := range valid {
		assert.True(t, IsValidGithubURL(url), url)
	}

	invalid := []string{
		"",
		"https://gitlab.com/octocat/hello-world",
		"https://github.com/octocat",
		"github.com/octocat/hello-world",
		"not a url",
	}
	for _, url := range invalid {
		assert.False(t, IsValidGithubURL(url), url)
	}
}
