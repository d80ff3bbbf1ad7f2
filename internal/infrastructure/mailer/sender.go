package mailer

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"
	"github.com/MGTheTrain/contact-web/internal/pkg/logger"
)

type templateSender struct {
	renderer  mail.Renderer
	transport mail.Transport
	from      string
	logger    logger.Logger
}

// NewSender creates a Sender that renders with renderer and delivers through
// transport, using from as the sender address of every message
func NewSender(renderer mail.Renderer, transport mail.Transport, from string, logger logger.Logger) (mail.Sender, error) {
	if renderer == nil || transport == nil {
		return nil, fmt.Errorf("renderer and transport are required")
	}
	return &templateSender{
		renderer:  renderer,
		transport: transport,
		from:      from,
		logger:    logger,
	}, nil
}

// Send renders the template and delivers the message synchronously. No retry.
func (s *templateSender) Send(ctx context.Context, recipient, subject, templateName string, data map[string]any) error {
	text, html, err := s.renderer.Render(templateName, data)
	if err != nil {
		return err
	}

	msg := &mail.Message{
		From:    s.from,
		To:      recipient,
		Subject: subject,
		Text:    text,
		HTML:    html,
	}
	if err := msg.Validate(); err != nil {
		return fmt.Errorf("invalid mail message: %w", err)
	}

	s.logger.Debug("Sending mail ", templateName, " to ", recipient, " via ", s.transport.Name())

	if err := s.transport.Deliver(ctx, msg); err != nil {
		return fmt.Errorf("mail delivery failed: %w", err)
	}
	return nil
}
