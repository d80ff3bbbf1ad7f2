//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/MGTheTrain/contact-web/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockSender is a mock implementation of mail.Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, recipient, subject, templateName string, data map[string]any) error {
	args := m.Called(ctx, recipient, subject, templateName, data)
	return args.Error(0)
}

// MockUserRepository is a mock implementation of users.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *users.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, userID string) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
