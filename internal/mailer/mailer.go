package mailer

import (
	"context"
	"errors"
	"fmt"
	netmail "net/mail"
	"strings"
)

var (
	// ErrNotConfigured is returned by every Send of a backend whose
	// credentials were missing at startup.
	ErrNotConfigured = errors.New("mailer: backend not configured")
	// ErrDeliveryFailed wraps transport and provider failures.
	ErrDeliveryFailed = errors.New("mailer: delivery failed")
	// ErrInvalidMessage is returned when a message lacks a recipient, subject or body.
	ErrInvalidMessage = errors.New("mailer: invalid message")
)

// Backend delivers a fully rendered message. Exactly one backend is active
// per deployment; implementations hold no per-request state.
type Backend interface {
	Name() string
	Send(ctx context.Context, msg *Message) error
}

// Address is a mailbox with an optional display name.
type Address struct {
	Name  string
	Email string
}

// String formats the address for a header, e.g. `Portfolio Contact <me@example.com>`.
func (a Address) String() string {
	if a.Name == "" {
		return a.Email
	}
	return (&netmail.Address{Name: a.Name, Address: a.Email}).String()
}

// Message is an email ready for delivery. Header fields hold plain text;
// HTML holds the rendered document.
type Message struct {
	From    Address
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Validate checks that the message can be handed to a backend.
func (m *Message) Validate() error {
	if strings.TrimSpace(m.From.Email) == "" {
		return fmt.Errorf("%w: sender is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.To) == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.Subject) == "" {
		return fmt.Errorf("%w: subject is required", ErrInvalidMessage)
	}
	if strings.TrimSpace(m.HTML) == "" && strings.TrimSpace(m.Text) == "" {
		return fmt.Errorf("%w: body is required", ErrInvalidMessage)
	}
	return nil
}

// Unavailable is the backend used when the configured one could not be built.
type Unavailable struct {
	name   string
	reason error
}

// NewUnavailable returns a backend whose Send always fails with ErrNotConfigured.
func NewUnavailable(name string, reason error) *Unavailable {
	return &Unavailable{name: name, reason: reason}
}

func (u *Unavailable) Name() string { return u.name }

func (u *Unavailable) Send(ctx context.Context, msg *Message) error {
	if u.reason == nil {
		return ErrNotConfigured
	}
	if errors.Is(u.reason, ErrNotConfigured) {
		return u.reason
	}
	return errors.Join(ErrNotConfigured, u.reason)
}

// headerSafe collapses line breaks so user text cannot add header lines.
func headerSafe(s string) string {
	s = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
	return strings.TrimSpace(s)
}
