package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCORSHeaders tests that every response carries the permissive CORS
// headers and that preflight requests short-circuit with 200.
func TestCORSHeaders(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Headers"))

	preflight := httptest.NewRequest(http.MethodOptions, "/match", nil)
	pw := httptest.NewRecorder()
	s.Handler().ServeHTTP(pw, preflight)

	assert.Equal(t, http.StatusOK, pw.Code)
	assert.Equal(t, "*", pw.Header().Get("Access-Control-Allow-Origin"))
}

// TestRequestID tests that the logging middleware attaches a request ID.
func TestRequestID(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// TestHealth tests the liveness endpoint.
func TestHealth(t *testing.T) {
	s := newTestServer(nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}
