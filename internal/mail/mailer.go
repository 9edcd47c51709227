// Package mail is the outbound mail boundary. The pipeline hands a rendered
// HTML document and a recipient to a Mailer; delivery itself is external.
package mail

import "context"

// Mailer sends one rendered HTML message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// Noop discards messages. Used in tests and when no mail backend is
// configured.
type Noop struct{}

// Send implements Mailer by doing nothing.
func (Noop) Send(context.Context, string, string, string) error { return nil }
