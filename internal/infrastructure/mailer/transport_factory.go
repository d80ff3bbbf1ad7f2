package mailer

import (
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"
)

// NewTransport creates the transport selected by settings.Transport
func NewTransport(settings *config.MailSettings, logger logger.Logger) (mail.Transport, error) {
	switch settings.Transport {
	case config.MailTransportSMTP:
		return NewSMTPTransport(settings, logger)
	case config.MailTransportLog:
		return NewLogTransport(logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail transport: %s", settings.Transport)
	}
}
