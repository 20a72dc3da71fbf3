package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"uuid62/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_Preflight(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/v1/uuids/45u546Dsoz0Tm4GxDxj9qZ", nil)
	req.Header.Set("Origin", "https://example.com")
	rec := httptest.NewRecorder()

	controller.WithCORS(next).ServeHTTP(rec, req)

	require.False(t, called, "next handler should not be called for OPTIONS preflight")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)

	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Empty(t, res.Header.Get("Access-Control-Allow-Credentials"))
	require.Contains(t, res.Header.Get("Access-Control-Allow-Headers"), "X-Request-Id")
	require.Contains(t, res.Header.Get("Access-Control-Allow-Methods"), http.MethodDelete)
	require.Contains(t, res.Header.Get("Access-Control-Expose-Headers"), "Location")
}

func TestWithCORS_NormalRequest(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodDelete, "/v1/uuids/45u546Dsoz0Tm4GxDxj9qZ", nil)
	rec := httptest.NewRecorder()

	controller.WithCORS(next, "*").ServeHTTP(rec, req)

	require.True(t, called, "next handler should be called for non-OPTIONS request")
	res := rec.Result()
	require.Equal(t, http.StatusNoContent, res.StatusCode)
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, res.Header.Get("Access-Control-Allow-Methods"))
}

func TestWithCORS_AllowedOrigins(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := controller.WithCORS(next, "https://a.example", "https://b.example")

	tests := []struct {
		name            string
		origin          string
		wantOrigin      string
		wantCredentials string
	}{
		{name: "listed", origin: "https://b.example", wantOrigin: "https://b.example", wantCredentials: "true"},
		{name: "not listed", origin: "https://evil.example"},
		{name: "no origin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/uuids", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			res := rec.Result()
			require.Equal(t, tt.wantOrigin, res.Header.Get("Access-Control-Allow-Origin"))
			require.Equal(t, tt.wantCredentials, res.Header.Get("Access-Control-Allow-Credentials"))
			require.Equal(t, "Origin", res.Header.Get("Vary"))
			if tt.wantOrigin == "" {
				require.Empty(t, res.Header.Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
