package mailer

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"

	gomail "github.com/wneessen/go-mail"
)

const implicitTLSPort = 465

type smtpTransport struct {
	client *gomail.Client
	logger logger.Logger
}

// NewSMTPTransport creates a Transport delivering through the configured SMTP server.
// No connection is opened until the first delivery.
func NewSMTPTransport(settings *config.MailSettings, logger logger.Logger) (mail.Transport, error) {
	opts := []gomail.Option{
		gomail.WithPort(settings.Port),
	}

	if settings.Timeout > 0 {
		opts = append(opts, gomail.WithTimeout(settings.Timeout))
	}

	switch {
	case settings.UseTLS && settings.Port == implicitTLSPort:
		opts = append(opts, gomail.WithSSL())
	case settings.UseTLS:
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPolicy(gomail.NoTLS))
	}

	if settings.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(settings.Username),
			gomail.WithPassword(settings.Password),
		)
	}

	client, err := gomail.NewClient(settings.Server, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}

	return &smtpTransport{client: client, logger: logger}, nil
}

func (t *smtpTransport) Name() string {
	return config.MailTransportSMTP
}

// Deliver opens a connection, sends msg and closes the connection again.
func (t *smtpTransport) Deliver(ctx context.Context, msg *mail.Message) error {
	m, err := buildMsg(msg)
	if err != nil {
		return err
	}

	if err := t.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to deliver mail to %s: %w", msg.To, err)
	}

	t.logger.Info("Delivered mail to ", msg.To)
	return nil
}

func buildMsg(msg *mail.Message) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid sender %s: %w", msg.From, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %s: %w", msg.To, err)
	}
	m.Subject(msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
		m.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	case msg.HTML != "":
		m.SetBodyString(gomail.TypeTextHTML, msg.HTML)
	default:
		m.SetBodyString(gomail.TypeTextPlain, msg.Text)
	}

	return m, nil
}
