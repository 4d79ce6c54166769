package validate

import (
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"farmlink/internal/domain"
)

// MaxQ is the longest search term accepted, in characters.
const MaxQ = 50

var reID = regexp.MustCompile(`^[0-9]{1,19}$`)

// Q validates a free-text search term. Any printable UTF-8 up to MaxQ
// characters is accepted as typed (after trimming); longer terms are rejected.
// An empty term is valid and means "no text filter".
func Q(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if !utf8.ValidString(s) || utf8.RuneCountInString(s) > MaxQ {
		return "", false
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return "", false
		}
	}
	return s, true
}

// ID validates a product identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Status accepts "All" or one of the known statuses. Empty means "All".
func Status(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || s == "All" {
		return "All", true
	}
	_, ok := domain.ParseStatus(s)
	return s, ok
}

// Date accepts an empty string or a calendar date in YYYY-MM-DD form.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", true
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return "", false
	}
	return s, true
}

// Location trims free text and caps its length.
func Location(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}
