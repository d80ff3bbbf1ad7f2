//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "ichiro")

	err := ctx.UserRepo.Create(context.Background(), user)
	require.NoError(t, err)

	var createdUserModel models.UserModel
	err = ctx.DB.First(&createdUserModel, "id = ?", user.ID).Error
	require.NoError(t, err)
	assert.Equal(t, user.ID, createdUserModel.ID)
	assert.Equal(t, user.Username, createdUserModel.Username)
	assert.Equal(t, user.Email, createdUserModel.Email)
}

func TestUserSqliteRepository_Create_InvalidUser(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.UserRepo.Create(context.Background(), &users.User{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestUserSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "ichiro")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	fetchedUser, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetchedUser.ID)
	assert.Equal(t, "ichiro@example.com", fetchedUser.Email)
}

func TestUserSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.GetByID(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestUserSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	first := CreateTestUser(t, "ichiro")
	second := CreateTestUser(t, "jiro")
	second.CreatedAt = first.CreatedAt.Add(time.Second)
	third := CreateTestUser(t, "saburo")
	third.CreatedAt = first.CreatedAt.Add(2 * time.Second)

	for _, u := range []*users.User{third, first, second} {
		require.NoError(t, ctx.UserRepo.Create(context.Background(), u))
	}

	all, err := ctx.UserRepo.List(context.Background(), users.NewUserQuery())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"ichiro", "jiro", "saburo"}, []string{all[0].Username, all[1].Username, all[2].Username})

	page, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "jiro", page[0].Username)
}

func TestUserSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.UserRepo.List(context.Background(), &users.UserQuery{Limit: -5})
	assert.Error(t, err)
}

func TestUserSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	user := CreateTestUser(t, "ichiro")
	require.NoError(t, ctx.UserRepo.Create(context.Background(), user))

	require.NoError(t, ctx.UserRepo.DeleteByID(context.Background(), user.ID))

	_, err := ctx.UserRepo.GetByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)

	err = ctx.UserRepo.DeleteByID(context.Background(), user.ID)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
