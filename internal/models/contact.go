package models

// ContactSubmission is a contact form message as received from the client.
// It lives for a single request and is never persisted.
type ContactSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// SanitizedSubmission has the same shape as ContactSubmission but every field
// is trimmed, HTML-escaped and length-capped, so it can be embedded verbatim
// into an HTML document.
type SanitizedSubmission struct {
	Name    string
	Email   string
	Subject string
	Message string
}
