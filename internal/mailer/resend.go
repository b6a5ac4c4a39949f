package mailer

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/myasir/portfolio-api/internal/logging"

	"github.com/resend/resend-go/v2"
)

// DefaultResendBaseURL is the Resend API root.
const DefaultResendBaseURL = "https://api.resend.com/"

// resendAPI is the subset of the Resend emails service used for delivery.
type resendAPI interface {
	SendWithContext(ctx context.Context, params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// ResendBackend delivers mail through the Resend HTTP API.
type ResendBackend struct {
	emails resendAPI
	logger *logging.Logger
}

// NewResendBackend creates a Resend backend. An empty baseURL means DefaultResendBaseURL.
func NewResendBackend(apiKey, baseURL string, timeout time.Duration) (*ResendBackend, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("%w: RESEND_API_KEY is required", ErrNotConfigured)
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	base, err := resendBaseURL(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid RESEND_BASE_URL: %v", ErrNotConfigured, err)
	}

	client := resend.NewCustomClient(&http.Client{Timeout: timeout}, apiKey)
	client.BaseURL = base

	return &ResendBackend{
		emails: client.Emails,
		logger: logging.GetLogger(),
	}, nil
}

// resendBaseURL parses the API root. Request paths are resolved against it,
// so it always ends in a slash.
func resendBaseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = DefaultResendBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, err
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("%q is not an absolute http(s) URL", raw)
	}
	return u, nil
}

func (r *ResendBackend) Name() string { return "resend" }

// Send posts the message once. The client only accepts 200 and 201; any
// other status comes back as an error.
func (r *ResendBackend) Send(ctx context.Context, msg *Message) error {
	params := &resend.SendEmailRequest{
		From:    msg.From.String(),
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
		ReplyTo: msg.ReplyTo,
	}

	sent, err := r.emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("%w: resend: %v", ErrDeliveryFailed, err)
	}

	id := "unknown"
	if sent != nil && sent.Id != "" {
		id = sent.Id
	}
	r.logger.Debug("Resend accepted message, id=%s", id)

	return nil
}
