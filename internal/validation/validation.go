// Package validation holds the pure input checks shared by the handlers:
// format regexes and slug derivation. No I/O happens here.
package validation

import (
	"regexp"
	"strings"
)

var (
	emailRegex     = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	githubURLRegex = regexp.MustCompile(`^https://github\.com/[\w\-.]+/[\w\-.]+/?$`)
	nonSlugRegex   = regexp.MustCompile(`[^a-z0-9]+`)
)

// IsValidEmail reports whether s looks like an email address.
// Intentionally loose: one @, no whitespace, a dot in the domain.
func IsValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// IsValidGithubURL reports whether s is an https github.com repository URL.
func IsValidGithubURL(s string) bool {
	return githubURLRegex.MatchString(s)
}

// Slugify derives a URL-safe slug from a title: lowercase, every maximal run
// of characters outside [a-z0-9] collapsed to a single dash, leading and
// trailing dashes stripped. Idempotent on already-slugified input.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlugRegex.ReplaceAllString(s, "-")

	return strings.Trim(s, "-")
}
