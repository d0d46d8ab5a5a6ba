package email

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	portssvc "github.com/FarmEase/farmease_backend/internal/core/ports/services"
)

// SESSender sends transactional email through AWS SES.
type SESSender struct {
	client *ses.Client
	from   string
}

// NewSESSender builds an SES-backed sender using the default AWS credential chain.
func NewSESSender(ctx context.Context, region, from string) (*SESSender, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESSender{client: ses.NewFromConfig(cfg), from: from}, nil
}

var _ portssvc.EmailSender = (*SESSender)(nil)

// SendEmail sends a plain-text email to a single recipient.
func (s *SESSender) SendEmail(ctx context.Context, to, subject, body string) error {
	input := &ses.SendEmailInput{
		Source: &s.from,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject},
			Body: &types.Body{
				Text: &types.Content{Data: &body},
			},
		},
	}
	_, err := s.client.SendEmail(ctx, input)
	return err
}
