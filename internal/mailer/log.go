package mailer

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer is the development stand-in when no SMTP relay is configured:
// it logs the message instead of delivering it.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := validateHeader(to, subject); err != nil {
		return err
	}

	m.log.Info().
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("mail (not sent, no SMTP configured)")

	return nil
}
