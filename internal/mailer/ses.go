package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// sesAPI is the subset of the SES client used for delivery.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESBackend delivers mail through AWS SES.
type SESBackend struct {
	client sesAPI
}

// NewSESBackend loads AWS credentials from the default chain and creates an SES backend.
func NewSESBackend(ctx context.Context, region string) (*SESBackend, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to load AWS config: %v", ErrNotConfigured, err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("%w: AWS_REGION is required", ErrNotConfigured)
	}

	return &SESBackend{client: ses.NewFromConfig(cfg)}, nil
}

func (s *SESBackend) Name() string { return "ses" }

// Send submits the message through SendEmail.
func (s *SESBackend) Send(ctx context.Context, msg *Message) error {
	body := &types.Body{}
	if msg.Text != "" {
		body.Text = &types.Content{
			Data:    aws.String(msg.Text),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.HTML != "" {
		body.Html = &types.Content{
			Data:    aws.String(msg.HTML),
			Charset: aws.String("UTF-8"),
		}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From.String()),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: body,
		},
	}
	if msg.ReplyTo != "" {
		input.ReplyToAddresses = []string{msg.ReplyTo}
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	return nil
}
