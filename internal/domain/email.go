package domain

import "context"

// Mailer sends an email. Implementations must not block on provider retries;
// a single attempt per call is expected.
type Mailer interface {
	Send(ctx context.Context, to, subject, htmlBody, textBody string) error
}
