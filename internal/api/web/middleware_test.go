//go:build unit
// +build unit

package web

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/contact-web/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newMiddlewareTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := testutil.SetupTestLogger(t)
	r := gin.New()
	r.Use(Recovery(log), RequestLogger(log), ErrorHandler(log))
	return r
}

func TestErrorHandler_AbortedWithoutResponse(t *testing.T) {
	r := newMiddlewareTestEngine(t)
	r.GET("/fail", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
		c.Abort()
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fail", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
}

func TestErrorHandler_KeepsWrittenResponse(t *testing.T) {
	r := newMiddlewareTestEngine(t)
	r.GET("/bad", func(c *gin.Context) {
		_ = c.Error(errors.New("bad input"))
		c.AbortWithStatus(http.StatusBadRequest)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bad", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecovery(t *testing.T) {
	r := newMiddlewareTestEngine(t)
	r.GET("/panic", func(c *gin.Context) {
		panic("unexpected")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
