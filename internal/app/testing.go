//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/infrastructure/persistence"
	"github.com/MGTheTrain/contact-web/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds application services and dependencies for integration tests
type TestServices struct {
	UserService users.UserService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes the application services against a real database
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	dbContext := persistence.SetupTestDB(t, dbType)

	userService, err := NewUserService(dbContext.UserRepo, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	return &TestServices{
		UserService: userService,
		DBContext:   dbContext,
	}
}
