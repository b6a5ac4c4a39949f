package mailer

import (
	"context"
	"testing"
	"time"

	"github.com/myasir/portfolio-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Mail
		wantName string
		wantErr  bool
	}{
		{
			name:     "resend",
			cfg:      config.Mail{Backend: config.BackendResend, ResendAPIKey: "re_test"},
			wantName: "resend",
		},
		{
			name:    "resend without key",
			cfg:     config.Mail{Backend: config.BackendResend},
			wantErr: true,
		},
		{
			name: "smtp",
			cfg: config.Mail{
				Backend:      config.BackendSMTP,
				SMTPHost:     "smtp.gmail.com",
				SMTPPort:     587,
				SMTPUsername: "me@gmail.com",
				SMTPPassword: "app-password",
			},
			wantName: "smtp",
		},
		{
			name:    "smtp without password",
			cfg:     config.Mail{Backend: config.BackendSMTP, SMTPHost: "smtp.gmail.com", SMTPPort: 587, SMTPUsername: "me@gmail.com"},
			wantErr: true,
		},
		{
			name:     "postmark",
			cfg:      config.Mail{Backend: config.BackendPostmark, PostmarkServerToken: "token"},
			wantName: "postmark",
		},
		{
			name:    "postmark without token",
			cfg:     config.Mail{Backend: config.BackendPostmark},
			wantErr: true,
		},
		{
			name:     "file",
			cfg:      config.Mail{Backend: config.BackendFile, OutputDir: t.TempDir()},
			wantName: "file",
		},
		{
			name:    "unknown",
			cfg:     config.Mail{Backend: "carrier-pigeon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBackend(context.Background(), tt.cfg)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotConfigured)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, b.Name())
		})
	}
}

func TestNewDispatcherConfig(t *testing.T) {
	base := config.Mail{
		Backend:       config.BackendResend,
		Timeout:       5 * time.Second,
		FromEmail:     "onboarding@resend.dev",
		FromName:      "Portfolio Contact",
		Recipient:     "owner@example.com",
		OwnerName:     "Yasir",
		SubjectPrefix: "Portfolio Contact",
		SMTPSender:    "me@gmail.com",
		SMTPRecipient: "inbox@gmail.com",
	}

	t.Run("api backend uses common addresses", func(t *testing.T) {
		dc := NewDispatcherConfig(base)
		assert.Equal(t, Address{Name: "Portfolio Contact", Email: "onboarding@resend.dev"}, dc.From)
		assert.Equal(t, "owner@example.com", dc.To)
		assert.Equal(t, "Portfolio Contact", dc.SubjectPrefix)
		assert.Equal(t, "Yasir", dc.OwnerName)
		assert.Equal(t, 5*time.Second, dc.Timeout)
	})

	t.Run("smtp backend uses smtp addresses", func(t *testing.T) {
		cfg := base
		cfg.Backend = config.BackendSMTP
		dc := NewDispatcherConfig(cfg)
		assert.Equal(t, "me@gmail.com", dc.From.Email)
		assert.Equal(t, "Portfolio Contact", dc.From.Name)
		assert.Equal(t, "inbox@gmail.com", dc.To)
	})
}
