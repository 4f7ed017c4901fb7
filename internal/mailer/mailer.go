// Package mailer delivers outbound notifications (invitation emails,
// welcome emails, password-reset links). Delivery is best-effort from the
// caller's point of view; each call site decides whether a failure is fatal.
package mailer

import (
	"context"
	"log/slog"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends a single message. Implementations must be safe for
// concurrent use.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// LogMailer writes messages to the log instead of sending them. It is the
// fallback when no SMTP server is configured (dev, tests).
type LogMailer struct {
	Log *slog.Logger
}

func (m *LogMailer) Send(_ context.Context, msg Message) error {
	m.Log.Info("mail (not sent, smtp disabled)",
		"to", msg.To,
		"subject", msg.Subject,
	)
	return nil
}
