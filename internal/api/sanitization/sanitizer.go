package sanitization

import (
	"strings"

	"github.com/myasir/portfolio-api/internal/models"
)

// MaxLength is the maximum number of characters a sanitized field may hold.
const MaxLength = 1000

// entities produced by Sanitize. An '&' that already starts one of these is
// left alone so sanitizing twice yields the same string.
var entities = []string{"&amp;", "&lt;", "&gt;", "&quot;", "&#39;"}

// Sanitize trims whitespace, escapes the HTML-significant characters
// (& < > " ') and caps the result at MaxLength characters. The output is safe
// to place verbatim into an HTML document.
func Sanitize(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(runes); i++ {
		switch r := runes[i]; r {
		case '&':
			if entity := entityAt(runes, i); entity != "" {
				b.WriteString(entity)
				i += len(entity) - 1
				continue
			}
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}

	return truncate(b.String(), MaxLength)
}

// entityAt returns the known entity starting at runes[i], if any.
func entityAt(runes []rune, i int) string {
	for _, e := range entities {
		if i+len(e) <= len(runes) && string(runes[i:i+len(e)]) == e {
			return e
		}
	}
	return ""
}

// truncate cuts s to at most max characters without splitting an entity and
// trims whitespace the cut may have exposed.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}

	cut := max
	// Entities are at most 6 characters long, so an open one sits within the last 5.
	for j := cut - 1; j >= 0 && j > cut-6; j-- {
		if runes[j] == ';' {
			break
		}
		if runes[j] == '&' {
			cut = j
			break
		}
	}

	return strings.TrimSpace(string(runes[:cut]))
}

// SanitizeSubmission sanitizes every field of a contact submission.
func SanitizeSubmission(s models.ContactSubmission) models.SanitizedSubmission {
	return models.SanitizedSubmission{
		Name:    Sanitize(s.Name),
		Email:   Sanitize(s.Email),
		Subject: Sanitize(s.Subject),
		Message: Sanitize(s.Message),
	}
}
