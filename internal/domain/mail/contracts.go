package mail

import "context"

// Sender renders a named template and delivers the result to a recipient.
type Sender interface {
	// Send renders the plaintext and HTML bodies of templateName with data and
	// delivers them to recipient. Transport errors are returned unchanged apart
	// from wrapping; there is no retry.
	Send(ctx context.Context, recipient, subject, templateName string, data map[string]any) error
}

// Renderer turns a template name and substitutions into mail bodies.
type Renderer interface {
	Render(templateName string, data map[string]any) (text string, html string, err error)
}

// Transport delivers a rendered message.
type Transport interface {
	Name() string
	Deliver(ctx context.Context, msg *Message) error
}
