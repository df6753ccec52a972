package email

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"

	"go-pcbuilder-backend/config"
	"go-pcbuilder-backend/internal/domain"
)

// SESMailer dispatches rendered messages through AWS SES. One Send call is
// exactly one SendEmail API call; there is no retry or buffering here.
type SESMailer struct {
	client     *ses.Client
	configured bool
}

// NewSESMailer builds the SES client from static credentials. With missing
// credentials the mailer still constructs (the server must boot without it)
// but reports itself as unconfigured.
func NewSESMailer(cfg *config.Config) *SESMailer {
	awsCfg := aws.Config{
		Region: cfg.AWSRegion,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				cfg.AWSAccessKeyID,
				cfg.AWSSecretAccessKey,
				"",
			),
		),
		HTTPClient: &http.Client{Timeout: cfg.HTTPClientTimeout},
	}

	return &SESMailer{
		client:     ses.NewFromConfig(awsCfg),
		configured: cfg.AWSAccessKeyID != "" && cfg.AWSSecretAccessKey != "",
	}
}

func (m *SESMailer) IsConfigured() bool {
	return m.configured
}

// Send delivers one message. Provider rejections surface the SES error
// message as the DeliveryError detail; transport failures get a generic one.
func (m *SESMailer) Send(ctx context.Context, msg domain.OutboundEmail) error {
	if !m.configured {
		return &domain.DeliveryError{
			Detail: domain.ErrMailerNotConfigured.Error(),
			Err:    domain.ErrMailerNotConfigured,
		}
	}

	input := &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if msg.HTMLBody != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(msg.HTMLBody),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.TextBody != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.TextBody),
			Charset: aws.String("UTF-8"),
		}
	}

	result, err := m.client.SendEmail(ctx, input)
	if err != nil {
		detail := "email provider unreachable"
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			detail = apiErr.ErrorMessage()
		}
		return &domain.DeliveryError{Detail: detail, Err: err}
	}

	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}
