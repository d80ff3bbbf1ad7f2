//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(u *users.User) bool {
		_, err := uuid.Parse(u.ID)
		return err == nil && u.Username == "ichiro" && u.Email == "ichiro@example.com" && !u.CreatedAt.IsZero()
	})).Return(nil).Once()

	service, err := NewUserService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	user, err := service.Create(context.Background(), "ichiro", "ichiro@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ichiro", user.Username)
	repo.AssertExpectations(t)
}

func TestUserService_Create_RepositoryError(t *testing.T) {
	repo := new(MockUserRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("validation error"))

	service, err := NewUserService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	user, err := service.Create(context.Background(), "", "")
	assert.Error(t, err)
	assert.Nil(t, user)
}

func TestUserService_List(t *testing.T) {
	expected := []*users.User{{ID: uuid.NewString(), Username: "ichiro", Email: "ichiro@example.com", CreatedAt: time.Now()}}

	repo := new(MockUserRepository)
	repo.On("List", mock.Anything, mock.Anything).Return(expected, nil)

	service, err := NewUserService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	list, err := service.List(context.Background(), users.NewUserQuery())
	require.NoError(t, err)
	assert.Equal(t, expected, list)
}

func TestUserService_NotFoundIsPreserved(t *testing.T) {
	id := uuid.NewString()
	notFound := fmt.Errorf("user with ID %s: %w", id, users.ErrUserNotFound)

	repo := new(MockUserRepository)
	repo.On("GetByID", mock.Anything, id).Return(nil, notFound)
	repo.On("DeleteByID", mock.Anything, id).Return(notFound)

	service, err := NewUserService(repo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	_, err = service.GetByID(context.Background(), id)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	err = service.DeleteByID(context.Background(), id)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestNewUserService_RequiresRepository(t *testing.T) {
	_, err := NewUserService(nil, nil)
	assert.Error(t, err)
}
