package mailer

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"net/url"
	"strings"
	"text/template"
	"time"

	"github.com/myasir/portfolio-api/internal/models"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Both templates are text/template: the HTML one receives values that are
// already escaped, the text one receives them unescaped.
var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Renderer turns a sanitized submission into HTML and plain text bodies.
type Renderer struct {
	ownerName string
	now       func() time.Time
}

// NewRenderer creates a renderer that greets ownerName.
func NewRenderer(ownerName string) *Renderer {
	return &Renderer{ownerName: ownerName, now: time.Now}
}

type templateData struct {
	Name           string
	Email          string
	Subject        string
	Message        string
	ReplySubject   string
	OwnerName      string
	OwnerFirstName string
	Year           int
}

// Render returns the HTML document and its plain text counterpart.
func (r *Renderer) Render(s models.SanitizedSubmission) (htmlBody, textBody string, err error) {
	owner := strings.TrimSpace(r.ownerName)
	first := owner
	if i := strings.IndexByte(owner, ' '); i > 0 {
		first = owner[:i]
	}

	data := templateData{
		Name:           s.Name,
		Email:          s.Email,
		Subject:        s.Subject,
		Message:        s.Message,
		ReplySubject:   mailtoQuery("Re: " + html.UnescapeString(s.Subject)),
		OwnerName:      html.EscapeString(owner),
		OwnerFirstName: html.EscapeString(first),
		Year:           r.now().Year(),
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "contact.html.tmpl", data); err != nil {
		return "", "", fmt.Errorf("failed to render html body: %w", err)
	}
	htmlBody = buf.String()

	data.Name = html.UnescapeString(s.Name)
	data.Email = html.UnescapeString(s.Email)
	data.Subject = html.UnescapeString(s.Subject)
	data.Message = html.UnescapeString(s.Message)
	data.OwnerName = owner
	data.OwnerFirstName = first

	buf.Reset()
	if err := templates.ExecuteTemplate(&buf, "contact.txt.tmpl", data); err != nil {
		return "", "", fmt.Errorf("failed to render text body: %w", err)
	}
	textBody = buf.String()

	return htmlBody, textBody, nil
}

// mailtoQuery percent-encodes a mailto header value. The result only holds
// unreserved characters and '%', so it needs no further HTML escaping.
func mailtoQuery(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
