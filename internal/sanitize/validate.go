package sanitize

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern is a pragmatic local@domain.tld shape check, not full RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// Email validates an email address. Returns "" when valid, otherwise a
// user-facing error message.
func Email(email string) string {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return "Email is required"
	}
	if len(trimmed) > MaxEmailLength {
		return "Email is too long"
	}
	if !emailPattern.MatchString(trimmed) {
		return "Invalid email format"
	}
	return ""
}

// Password validates password length for login flows.
func Password(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < MinPasswordLength {
		return fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	}
	if len(password) > MaxPasswordLength {
		return fmt.Sprintf("Password must be at most %d characters", MaxPasswordLength)
	}
	return ""
}

// SignupPassword applies the stricter signup policy: at least 8 characters,
// one uppercase letter, and one digit.
func SignupPassword(password string) string {
	if password == "" {
		return "Password is required"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters"
	}
	if len(password) > MaxPasswordLength {
		return fmt.Sprintf("Password must be at most %d characters", MaxPasswordLength)
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= 'A' && r <= 'Z' }) {
		return "Password must contain an uppercase letter"
	}
	if !strings.ContainsFunc(password, func(r rune) bool { return r >= '0' && r <= '9' }) {
		return "Password must contain a digit"
	}
	return ""
}

// Name validates that a name survives sanitization non-empty.
func Name(name string) string {
	if Input(name, MaxNameLength) == "" {
		return "Name is required"
	}
	return ""
}

// URL validates that a link parses and uses an http or https scheme.
func URL(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "URL is required"
	}
	if len(trimmed) > MaxURLLength {
		return "URL is too long"
	}
	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "Invalid URL format"
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "URL must use http or https"
	}
	if parsed.Host == "" {
		return "Invalid URL format"
	}
	return ""
}

// Rating validates a star rating: integer in [1,5].
func Rating(value int) string {
	if value < 1 || value > 5 {
		return "Rating must be between 1 and 5"
	}
	return ""
}

// Review validates and sanitizes review text. The sanitized form is returned
// even on failure so callers can show what survived.
func Review(text string) (ok bool, errMsg, sanitized string) {
	if text == "" {
		return false, "Review text is required", ""
	}
	sanitized = Input(text, MaxReviewLength)
	if utf8.RuneCountInString(sanitized) < 3 {
		return false, "Review must be at least 3 characters", sanitized
	}
	return true, "", sanitized
}

// Answer reports whether a refinement answer value belongs to the whitelist
// of allowed option values for its question.
func Answer(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}

// SubmissionFields is an agent submission form as entered by the user.
type SubmissionFields struct {
	Name        string
	Description string
	Category    string
	Pricing     string
	Link        string
}

// validPricingModels mirrors the catalog's pricing model enumeration.
var validPricingModels = []string{"free", "freemium", "usage-based", "subscription"}

// Submission validates an agent submission form. Returns a map of field name
// to error message, or nil when the form is valid.
func Submission(data SubmissionFields) map[string]string {
	errors := make(map[string]string)

	if strings.TrimSpace(data.Name) == "" {
		errors["name"] = "Name is required"
	} else if len(data.Name) > MaxNameLength {
		errors["name"] = fmt.Sprintf("Name must be at most %d characters", MaxNameLength)
	}

	if data.Description == "" {
		errors["description"] = "Description is required"
	} else if len(data.Description) > MaxDescriptionLength {
		errors["description"] = fmt.Sprintf("Description must be at most %d characters", MaxDescriptionLength)
	}

	if data.Category == "" {
		errors["category"] = "Category is required"
	}

	if data.Pricing != "" {
		valid := false
		for _, m := range validPricingModels {
			if m == data.Pricing {
				valid = true
				break
			}
		}
		if !valid {
			errors["pricing"] = "Invalid pricing model"
		}
	}

	if data.Link != "" {
		if msg := URL(data.Link); msg != "" {
			errors["link"] = msg
		}
	}

	if len(errors) > 0 {
		return errors
	}
	return nil
}
