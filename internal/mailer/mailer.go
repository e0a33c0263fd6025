package mailer

import (
	"context"
	"strings"

	"github.com/avtoservice/workshop-scheduler/internal/httperr"
)

// Mailer delivers booking confirmations. Delivery failures are recoverable:
// the booking itself stands, callers surface a warning instead.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// validateHeader rejects CR/LF in header-bound values so a crafted name or
// subject cannot inject extra headers into the message.
func validateHeader(values ...string) error {
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return httperr.ErrBusiness("bad_mail_header")
		}
	}
	return nil
}
