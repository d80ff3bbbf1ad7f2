//go:build unit
// +build unit

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/contact-web/internal/domain/contact"
	"github.com/MGTheTrain/contact-web/internal/domain/users"
	"github.com/MGTheTrain/contact-web/internal/pkg/config"
	"github.com/MGTheTrain/contact-web/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// newTestEngine builds the full engine with every route registered
func newTestEngine(t *testing.T, contactService contact.ContactService, userService users.UserService) (*gin.Engine, *URLBuilder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.SetupTestLogger(t)
	cfg := &config.AppConfig{SecretKey: "test-secret-key"}

	r, urls, err := NewEngine(cfg, log)
	require.NoError(t, err)
	require.NoError(t, SetupRoutes(r, urls, contactService, userService, log))

	return r, urls
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// sessionCookie returns the session cookie set by w
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	c := testutil.ResponseCookie(w, SessionName)
	require.NotNil(t, c, "response should set the session cookie")
	return c
}
