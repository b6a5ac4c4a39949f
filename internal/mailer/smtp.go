package mailer

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"

	"github.com/emersion/go-message/mail"
	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// SMTPConfig holds connection settings for an authenticated SMTP relay.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPBackend delivers mail over SMTP. Port 465 uses implicit TLS, every other
// port is upgraded with STARTTLS. Each Send opens and closes its own session.
type SMTPBackend struct {
	cfg       SMTPConfig
	tlsConfig *tls.Config
	dialer    *net.Dialer
	now       func() time.Time
}

// NewSMTPBackend creates an SMTP backend.
func NewSMTPBackend(cfg SMTPConfig) (*SMTPBackend, error) {
	if cfg.Host == "" || cfg.Port <= 0 {
		return nil, fmt.Errorf("%w: MAIL_SERVER and MAIL_PORT are required", ErrNotConfigured)
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: MAIL_USERNAME and MAIL_PASSWORD are required", ErrNotConfigured)
	}
	return &SMTPBackend{
		cfg: cfg,
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
		dialer: &net.Dialer{Timeout: 10 * time.Second},
		now:    time.Now,
	}, nil
}

func (s *SMTPBackend) Name() string { return "smtp" }

// Send opens a session, authenticates and submits the message. The
// connection is closed on every path.
func (s *SMTPBackend) Send(ctx context.Context, msg *Message) error {
	raw, err := buildMIME(msg, s.now())
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	conn, err := s.dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("%w: smtp dial %s: %v", ErrDeliveryFailed, addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	var client *smtp.Client
	if s.cfg.Port == 465 {
		client = smtp.NewClient(tls.Client(conn, s.tlsConfig))
	} else {
		client, err = smtp.NewClientStartTLS(conn, s.tlsConfig)
		if err != nil {
			return fmt.Errorf("%w: smtp starttls: %v", ErrDeliveryFailed, err)
		}
	}
	defer client.Close()

	if err := client.Auth(sasl.NewPlainClient("", s.cfg.Username, s.cfg.Password)); err != nil {
		return fmt.Errorf("%w: smtp auth: %v", ErrDeliveryFailed, err)
	}

	if err := client.SendMail(msg.From.Email, []string{msg.To}, bytes.NewReader(raw)); err != nil {
		return fmt.Errorf("%w: smtp send: %v", ErrDeliveryFailed, err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("%w: smtp quit: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// buildMIME encodes msg as a multipart/alternative email with text and HTML parts.
func buildMIME(msg *Message, now time.Time) ([]byte, error) {
	var h mail.Header
	h.SetDate(now)
	h.SetAddressList("From", []*mail.Address{{Name: msg.From.Name, Address: msg.From.Email}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	if msg.ReplyTo != "" {
		h.SetAddressList("Reply-To", []*mail.Address{{Address: msg.ReplyTo}})
	}
	h.SetSubject(msg.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, fmt.Errorf("failed to generate message id: %w", err)
	}

	var buf bytes.Buffer
	mw, err := mail.CreateWriter(&buf, h)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail writer: %w", err)
	}

	tw, err := mw.CreateInline()
	if err != nil {
		return nil, fmt.Errorf("failed to create inline part: %w", err)
	}

	parts := []struct {
		contentType string
		body        string
	}{
		{"text/plain", msg.Text},
		{"text/html", msg.HTML},
	}
	for _, p := range parts {
		if p.body == "" {
			continue
		}
		var ph mail.InlineHeader
		ph.SetContentType(p.contentType, map[string]string{"charset": "utf-8"})
		ph.Set("Content-Transfer-Encoding", "quoted-printable")
		w, err := tw.CreatePart(ph)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s part: %w", p.contentType, err)
		}
		if _, err := io.WriteString(w, p.body); err != nil {
			w.Close()
			return nil, fmt.Errorf("failed to write %s part: %w", p.contentType, err)
		}
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("failed to close %s part: %w", p.contentType, err)
		}
	}

	if err := tw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close inline part: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close mail writer: %w", err)
	}

	return buf.Bytes(), nil
}
