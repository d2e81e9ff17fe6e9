package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownHandler(t *testing.T) {
	tests := []struct {
		name    string
		remote  string
		token   string
		status  int
		stopped bool
	}{
		{"loopback with token", "127.0.0.1:50000", "secret", http.StatusOK, true},
		{"wrong token", "127.0.0.1:50000", "nope", http.StatusUnauthorized, false},
		{"missing token", "[::1]:50000", "", http.StatusUnauthorized, false},
		{"remote caller", "192.0.2.10:50000", "secret", http.StatusForbidden, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stopped := false
			h := shutdownHandler("secret", func() { stopped = true })

			req := httptest.NewRequest(http.MethodPost, "/shutdown", nil)
			req.RemoteAddr = tt.remote
			if tt.token != "" {
				req.Header.Set("X-Shutdown-Token", tt.token)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.stopped, stopped)
		})
	}
}
