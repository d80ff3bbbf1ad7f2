//go:build unit
// +build unit

package mailer

import (
	"context"

	"github.com/MGTheTrain/contact-web/internal/domain/mail"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of mail.Transport
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Name() string {
	return "mock"
}

func (m *MockTransport) Deliver(ctx context.Context, msg *mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

// MockRenderer is a mock implementation of mail.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(templateName string, data map[string]any) (string, string, error) {
	args := m.Called(templateName, data)
	return args.String(0), args.String(1), args.Error(2)
}
