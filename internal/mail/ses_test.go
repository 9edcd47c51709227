package mail

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSES struct {
	input *ses.SendEmailInput
	err   error
}

func (f *fakeSES) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &ses.SendEmailOutput{}, nil
}

func TestSESMailer_Send(t *testing.T) {
	fake := &fakeSES{}
	m := &SESMailer{client: fake, sender: "leads@bizleadslocal.com"}

	err := m.Send(context.Background(), "user@example.com", "Your Results", "<h2>hi</h2>")
	require.NoError(t, err)

	require.NotNil(t, fake.input)
	assert.Equal(t, "leads@bizleadslocal.com", *fake.input.Source)
	require.Len(t, fake.input.Destination.ToAddresses, 1)
	assert.Equal(t, "user@example.com", fake.input.Destination.ToAddresses[0])
	assert.Equal(t, "Your Results", *fake.input.Message.Subject.Data)
	assert.Equal(t, "<h2>hi</h2>", *fake.input.Message.Body.Html.Data)
	assert.Equal(t, "UTF-8", *fake.input.Message.Body.Html.Charset)
}

func TestSESMailer_SendError(t *testing.T) {
	m := &SESMailer{client: &fakeSES{err: eris.New("throttled")}, sender: "leads@bizleadslocal.com"}
	err := m.Send(context.Background(), "user@example.com", "s", "b")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ses send")
}

func TestNoop(t *testing.T) {
	assert.NoError(t, Noop{}.Send(context.Background(), "a@b.co", "s", "b"))
}
