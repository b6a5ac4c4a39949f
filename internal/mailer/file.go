package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// FileBackend writes messages to a directory instead of delivering them.
// Intended for local development.
type FileBackend struct {
	dir string
	now func() time.Time
}

// NewFileBackend creates a backend that saves emails under dir.
func NewFileBackend(dir string) (*FileBackend, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: MAIL_OUTPUT_DIR is required", ErrNotConfigured)
	}
	return &FileBackend{dir: dir, now: time.Now}, nil
}

// fileMetadata contains the message headers saved next to the bodies.
type fileMetadata struct {
	Timestamp string `json:"timestamp"`
	From      string `json:"from"`
	To        string `json:"to"`
	ReplyTo   string `json:"reply_to,omitempty"`
	Subject   string `json:"subject"`
}

func (f *FileBackend) Name() string { return "file" }

// Send saves the HTML and text bodies plus a JSON metadata file.
func (f *FileBackend) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory: %v", ErrDeliveryFailed, err)
	}

	now := f.now()
	base := filepath.Join(f.dir, fmt.Sprintf("%s_%s", now.Format("2006_01_02_150405.000000"), sanitizeFilename(msg.Subject)))

	if err := os.WriteFile(base+".html", []byte(msg.HTML), 0644); err != nil {
		return fmt.Errorf("%w: failed to write HTML file: %v", ErrDeliveryFailed, err)
	}
	if err := os.WriteFile(base+".txt", []byte(msg.Text), 0644); err != nil {
		return fmt.Errorf("%w: failed to write text file: %v", ErrDeliveryFailed, err)
	}

	metadata, err := json.MarshalIndent(fileMetadata{
		Timestamp: now.Format(time.RFC3339),
		From:      msg.From.String(),
		To:        msg.To,
		ReplyTo:   msg.ReplyTo,
		Subject:   msg.Subject,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to marshal metadata: %v", ErrDeliveryFailed, err)
	}
	if err := os.WriteFile(base+".json", metadata, 0644); err != nil {
		return fmt.Errorf("%w: failed to write JSON file: %v", ErrDeliveryFailed, err)
	}

	return nil
}

// unsafeFilenameChars matches characters that are not alphanumeric, dash, underscore, or dot
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)

func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = unsafeFilenameChars.ReplaceAllString(s, "")

	const maxLength = 100
	if len(s) > maxLength {
		s = s[:maxLength]
	}
	if s == "" {
		s = "email"
	}
	return strings.ToLower(s)
}
