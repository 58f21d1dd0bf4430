// Package validation holds the pure syntax checks applied to candidate
// answers. None of these functions return errors: malformed input simply
// yields false or an empty slice and the caller re-prompts.
package validation

import (
	"regexp"
	"strings"
)

// Exactly one @, non-empty local part, domain with at least one dot.
// No MX or deliverability checks.
var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// ValidPhone strips whitespace, hyphens, parentheses and an optional leading
// "+", then requires 10 to 15 digits.
func ValidPhone(s string) bool {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '-', '(', ')':
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	cleaned = strings.TrimPrefix(cleaned, "+")
	if len(cleaned) < 10 || len(cleaned) > 15 {
		return false
	}
	for _, r := range cleaned {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

var techDelimiterRe = regexp.MustCompile(`(?i)[,;\n]|\band\b`)

// ParseTechStack splits free text on commas, semicolons, newlines and the word
// "and", trims each token and deduplicates case-insensitively while keeping
// first-seen casing and order.
func ParseTechStack(s string) []string {
	var (
		out  []string
		seen = map[string]struct{}{}
	)
	for _, tok := range techDelimiterRe.Split(s, -1) {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key := strings.ToLower(tok)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tok)
	}
	return out
}
