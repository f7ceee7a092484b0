/*
Package sanitize normalizes and validates all free text entering the engine.

Every string from the user passes through Input before it reaches scoring,
prompt generation, or any persistent store: HTML-like tags are stripped,
whitespace runs collapse to a single space, and the result is truncated to a
per-field maximum. Sanitization never fails; malformed input is coerced, not
rejected.
*/
package sanitize

import (
	"regexp"
	"strings"
)

// Maximum lengths for the fields the finder accepts.
const (
	MaxQueryLength       = 500
	MaxNameLength        = 100
	MaxEmailLength       = 254 // RFC 5321
	MaxPasswordLength    = 128
	MinPasswordLength    = 6
	MaxURLLength         = 2048
	MaxReviewLength      = 300
	MaxDescriptionLength = 500
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// Input strips HTML-like tags, collapses whitespace, trims, and truncates to
// max runes. Idempotent: Input(Input(s, n), n) == Input(s, n).
func Input(s string, max int) string {
	stripped := tagPattern.ReplaceAllString(s, "")
	cleaned := strings.TrimSpace(whitespacePattern.ReplaceAllString(stripped, " "))
	if max >= 0 {
		runes := []rune(cleaned)
		if len(runes) > max {
			cleaned = strings.TrimSpace(string(runes[:max]))
		}
	}
	return cleaned
}

// Query sanitizes a search query with the standard 500-char bound.
func Query(s string) string {
	return Input(s, MaxQueryLength)
}
