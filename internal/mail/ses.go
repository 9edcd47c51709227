package mail

import (
	"context"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/rotisserie/eris"
)

// sesAPI is the subset of the SES client the mailer uses.
type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESMailer sends HTML mail through AWS SES.
type SESMailer struct {
	client sesAPI
	sender string
}

// NewSESMailer creates a mailer using the default AWS credential chain.
func NewSESMailer(ctx context.Context, region, sender string) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, eris.Wrap(err, "mail: load aws config")
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

// Send delivers one UTF-8 HTML message.
func (m *SESMailer) Send(ctx context.Context, to, subject, htmlBody string) error {
	charset := "UTF-8"
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: &m.sender,
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: &subject, Charset: &charset},
			Body: &types.Body{
				Html: &types.Content{Data: &htmlBody, Charset: &charset},
			},
		},
	})
	if err != nil {
		return eris.Wrap(err, "mail: ses send")
	}
	return nil
}
