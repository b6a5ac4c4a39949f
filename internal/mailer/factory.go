package mailer

import (
	"context"
	"fmt"

	"github.com/myasir/portfolio-api/internal/config"
)

// NewBackend builds the backend selected by cfg.Backend. A backend whose
// credentials are missing yields an error wrapping ErrNotConfigured.
func NewBackend(ctx context.Context, cfg config.Mail) (Backend, error) {
	switch cfg.Backend {
	case config.BackendResend:
		return NewResendBackend(cfg.ResendAPIKey, cfg.ResendBaseURL, cfg.Timeout)
	case config.BackendSMTP:
		return NewSMTPBackend(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUsername,
			Password: cfg.SMTPPassword,
		})
	case config.BackendPostmark:
		return NewPostmarkBackend(cfg.PostmarkServerToken, cfg.PostmarkAccountToken)
	case config.BackendSES:
		return NewSESBackend(ctx, cfg.AWSRegion)
	case config.BackendFile:
		return NewFileBackend(cfg.OutputDir)
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrNotConfigured, cfg.Backend)
	}
}

// NewDispatcherConfig derives sender, recipient and subject settings for the
// selected backend.
func NewDispatcherConfig(cfg config.Mail) DispatcherConfig {
	from := Address{Name: cfg.FromName, Email: cfg.FromEmail}
	to := cfg.Recipient
	if cfg.Backend == config.BackendSMTP {
		from.Email = cfg.SMTPSender
		to = cfg.SMTPRecipient
	}
	return DispatcherConfig{
		From:          from,
		To:            to,
		SubjectPrefix: cfg.SubjectPrefix,
		OwnerName:     cfg.OwnerName,
		Timeout:       cfg.Timeout,
	}
}
