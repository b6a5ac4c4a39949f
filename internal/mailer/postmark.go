package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// postmarkAPI is the subset of the Postmark client used for delivery.
type postmarkAPI interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkBackend delivers mail through Postmark's transactional API.
type PostmarkBackend struct {
	client postmarkAPI
}

// NewPostmarkBackend creates a Postmark backend. The account token is optional
// because only the server API is used.
func NewPostmarkBackend(serverToken, accountToken string) (*PostmarkBackend, error) {
	if serverToken == "" {
		return nil, fmt.Errorf("%w: POSTMARK_SERVER_TOKEN is required", ErrNotConfigured)
	}
	return &PostmarkBackend{
		client: postmark.NewClient(serverToken, accountToken),
	}, nil
}

func (p *PostmarkBackend) Name() string { return "postmark" }

// Send submits the message with open tracking disabled.
func (p *PostmarkBackend) Send(ctx context.Context, msg *Message) error {
	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:     msg.From.String(),
		To:       msg.To,
		ReplyTo:  msg.ReplyTo,
		Subject:  msg.Subject,
		Tag:      "portfolio-contact",
		HTMLBody: msg.HTML,
		TextBody: msg.Text,
	})
	if err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(
			ErrDeliveryFailed,
			fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message),
		)
	}
	return nil
}
