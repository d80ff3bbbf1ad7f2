package mailer

import (
	"context"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"
)

// logTransport writes messages to the logger instead of sending them. It is the
// development default so the contact form works without SMTP credentials.
type logTransport struct {
	logger logger.Logger
}

// NewLogTransport creates a Transport that only logs messages
func NewLogTransport(logger logger.Logger) mail.Transport {
	return &logTransport{logger: logger}
}

func (t *logTransport) Name() string {
	return config.MailTransportLog
}

func (t *logTransport) Deliver(_ context.Context, msg *mail.Message) error {
	t.logger.With(
		"from", msg.From,
		"to", msg.To,
		"subject", msg.Subject,
	).Info("Mail not sent (log transport):\n", msg.Text)
	return nil
}
