package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// ErrInvalidConfig is returned when the environment cannot be parsed into a Config.
var ErrInvalidConfig = errors.New("invalid configuration")

// Supported delivery backends
const (
	BackendResend   = "resend"
	BackendSMTP     = "smtp"
	BackendPostmark = "postmark"
	BackendSES      = "ses"
	BackendFile     = "file"
)

// Config holds all configuration for the application.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	// Server Configuration
	Environment    string   `env:"ENV" envDefault:"development"`
	Port           string   `env:"PORT" envDefault:"5000"`
	FrontendURL    string   `env:"FRONTEND_URL"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFile        string   `env:"LOG_FILE"`
	LogRequests    bool     `env:"LOG_REQUESTS" envDefault:"false"`

	// Proxies (IPs or CIDRs) whose X-Real-IP / X-Forwarded-For headers are
	// believed. Empty means the client is always the connection's peer.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Rate limiting for the contact endpoint
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"10"`
	RateLimitBurst     int `env:"RATE_LIMIT_BURST" envDefault:"5"`

	// Telemetry Configuration
	OTLPEndpoint   string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	MetricsEnabled bool   `env:"METRICS_ENABLED" envDefault:"true"`

	Mail Mail
}

// Mail holds delivery settings for every backend. Only the one named by
// Backend is used by a running process.
type Mail struct {
	Backend       string        `env:"EMAIL_BACKEND" envDefault:"resend"`
	Timeout       time.Duration `env:"EMAIL_TIMEOUT" envDefault:"10s"`
	FromEmail     string        `env:"FROM_EMAIL" envDefault:"onboarding@resend.dev"`
	FromName      string        `env:"FROM_NAME" envDefault:"Portfolio Contact"`
	Recipient     string        `env:"RECIPIENT_EMAIL"`
	OwnerName     string        `env:"OWNER_NAME" envDefault:"Muhammad Yasir"`
	SubjectPrefix string        `env:"SUBJECT_PREFIX" envDefault:"Portfolio Contact: "`

	// Resend
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ResendBaseURL string `env:"RESEND_BASE_URL" envDefault:"https://api.resend.com/"`

	// SMTP
	SMTPHost      string `env:"MAIL_SERVER" envDefault:"smtp.gmail.com"`
	SMTPPort      int    `env:"MAIL_PORT" envDefault:"587"`
	SMTPUsername  string `env:"MAIL_USERNAME"`
	SMTPPassword  string `env:"MAIL_PASSWORD"`
	SMTPSender    string `env:"MAIL_DEFAULT_SENDER"`
	SMTPRecipient string `env:"MAIL_RECIPIENT"`

	// Postmark
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`

	// AWS SES
	AWSRegion string `env:"AWS_REGION"`

	// File backend (development)
	OutputDir string `env:"MAIL_OUTPUT_DIR" envDefault:"./tmp/emails"`
}

// Load loads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom builds a Config from the given variables instead of the process
// environment. Intended for tests and tooling.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	cfg.Mail.Backend = strings.ToLower(strings.TrimSpace(cfg.Mail.Backend))

	if cfg.FrontendURL != "" {
		cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimRight(cfg.FrontendURL, "/"))
	}
	cfg.AllowedOrigins = cleanList(cfg.AllowedOrigins)
	cfg.TrustedProxies = cleanList(cfg.TrustedProxies)

	// SMTP sender and recipient fall back to the shared addresses
	if cfg.Mail.SMTPSender == "" {
		cfg.Mail.SMTPSender = cfg.Mail.FromEmail
	}
	if cfg.Mail.SMTPRecipient == "" {
		cfg.Mail.SMTPRecipient = cfg.Mail.Recipient
	}

	if cfg.Mail.Timeout <= 0 {
		cfg.Mail.Timeout = 10 * time.Second
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.IsProduction() {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Mail.Backend {
	case BackendResend, BackendSMTP, BackendPostmark, BackendSES, BackendFile:
	default:
		return fmt.Errorf("%w: unknown EMAIL_BACKEND %q", ErrInvalidConfig, c.Mail.Backend)
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_PER_MINUTE must be positive", ErrInvalidConfig)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: RATE_LIMIT_BURST must be positive", ErrInvalidConfig)
	}
	for _, p := range c.TrustedProxies {
		if net.ParseIP(p) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(p); err != nil {
			return fmt.Errorf("%w: TRUSTED_PROXIES entry %q is not an IP or CIDR", ErrInvalidConfig, p)
		}
	}
	return nil
}

// IsProduction reports whether the process runs with ENV=production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Warnings returns operator-facing problems that do not prevent startup but
// will make every delivery attempt fail.
func (c *Config) Warnings() []string {
	var warnings []string
	m := c.Mail

	switch m.Backend {
	case BackendResend:
		if m.ResendAPIKey == "" {
			warnings = append(warnings, "RESEND_API_KEY not set! Get an API key at https://resend.com/api-keys")
		}
		if m.Recipient == "" {
			warnings = append(warnings, "RECIPIENT_EMAIL not set")
		}
	case BackendSMTP:
		if m.SMTPUsername == "" || m.SMTPPassword == "" {
			warnings = append(warnings, "MAIL_USERNAME or MAIL_PASSWORD not set")
		}
		if m.SMTPRecipient == "" {
			warnings = append(warnings, "MAIL_RECIPIENT not set")
		}
	case BackendPostmark:
		if m.PostmarkServerToken == "" {
			warnings = append(warnings, "POSTMARK_SERVER_TOKEN not set")
		}
		if m.Recipient == "" {
			warnings = append(warnings, "RECIPIENT_EMAIL not set")
		}
	case BackendSES:
		if m.Recipient == "" {
			warnings = append(warnings, "RECIPIENT_EMAIL not set")
		}
	case BackendFile:
		if c.IsProduction() {
			warnings = append(warnings, "EMAIL_BACKEND=file writes messages to disk and delivers nothing")
		}
	}

	return warnings
}

// EnsureLogDir creates the directory holding the log file.
func (c *Config) EnsureLogDir() error {
	if err := os.MkdirAll(filepath.Dir(c.LogFile), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	return nil
}

func cleanList(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, o := range values {
		o = strings.TrimSpace(o)
		if o == "" || seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}
