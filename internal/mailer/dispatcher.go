package mailer

import (
	"context"
	"html"
	"time"

	"github.com/myasir/portfolio-api/internal/logging"
	"github.com/myasir/portfolio-api/internal/metrics"
	"github.com/myasir/portfolio-api/internal/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/myasir/portfolio-api/internal/mailer"

// DispatchResult reports whether a submission was delivered. Message is a
// diagnostic for server logs and must not be returned to HTTP callers.
type DispatchResult struct {
	Success bool
	Message string
}

// DispatcherConfig holds the immutable delivery settings.
type DispatcherConfig struct {
	From          Address
	To            string
	SubjectPrefix string
	OwnerName     string
	Timeout       time.Duration
}

// Dispatcher renders submissions and hands them to the active backend.
type Dispatcher struct {
	backend  Backend
	renderer *Renderer
	cfg      DispatcherConfig
	logger   *logging.Logger
	tracer   trace.Tracer
}

// NewDispatcher creates a dispatcher for backend.
func NewDispatcher(backend Backend, cfg DispatcherConfig, logger *logging.Logger) *Dispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Dispatcher{
		backend:  backend,
		renderer: NewRenderer(cfg.OwnerName),
		cfg:      cfg,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

// BackendName returns the name of the active backend.
func (d *Dispatcher) BackendName() string {
	return d.backend.Name()
}

// Compose builds the message for a sanitized submission.
func (d *Dispatcher) Compose(s models.SanitizedSubmission) (*Message, error) {
	htmlBody, textBody, err := d.renderer.Render(s)
	if err != nil {
		return nil, err
	}

	msg := &Message{
		From:    d.cfg.From,
		To:      d.cfg.To,
		ReplyTo: headerSafe(html.UnescapeString(s.Email)),
		Subject: headerSafe(d.cfg.SubjectPrefix + html.UnescapeString(s.Subject)),
		HTML:    htmlBody,
		Text:    textBody,
	}
	if err := msg.Validate(); err != nil {
		return nil, err
	}
	return msg, nil
}

// Dispatch makes a single bounded delivery attempt. Failures are logged and
// reported through the result; nothing is retried.
func (d *Dispatcher) Dispatch(ctx context.Context, s models.SanitizedSubmission) DispatchResult {
	name := d.backend.Name()
	ctx, span := d.tracer.Start(ctx, "mailer.Dispatch", trace.WithAttributes(
		attribute.String("mail.backend", name),
	))
	defer span.End()

	start := time.Now()
	err := d.send(ctx, s)
	metrics.RecordDispatch(name, err == nil, time.Since(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delivery failed")
		d.logger.Error("Email delivery via %s failed for reply-to %s: %v", name, s.Email, err)
		return DispatchResult{Success: false, Message: err.Error()}
	}

	d.logger.Info("Email sent successfully via %s (took %s)", name, time.Since(start).Round(time.Millisecond))
	return DispatchResult{Success: true}
}

func (d *Dispatcher) send(ctx context.Context, s models.SanitizedSubmission) error {
	msg, err := d.Compose(s)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()

	return d.backend.Send(ctx, msg)
}
