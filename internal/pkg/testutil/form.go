package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// NewFormRequest builds a form-encoded request carrying the given cookies
func NewFormRequest(t *testing.T, method, target string, values url.Values, cookies ...*http.Cookie) *http.Request {
	t.Helper()

	req, err := http.NewRequest(method, target, strings.NewReader(values.Encode()))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// NewGetRequest builds a GET request carrying the given cookies
func NewGetRequest(t *testing.T, target string, cookies ...*http.Cookie) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	return req
}

// ResponseCookie returns the cookie with the given name set by the response, or nil
func ResponseCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
