package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		RequestIDMiddleware(next).ServeHTTP(w, httptest.NewRequest("GET", "/users", nil))

		assert.NotEmpty(t, seen)
		assert.Len(t, seen, 27) // ksuid string length
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/users", nil)
		req.Header.Set(RequestIDHeader, "abc123")
		w := httptest.NewRecorder()
		RequestIDMiddleware(next).ServeHTTP(w, req)

		assert.Equal(t, "abc123", seen)
		assert.Equal(t, "abc123", w.Header().Get(RequestIDHeader))
	})
}

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.Set(zap.New(core))
	defer logger.SetFormat("json")

	tests := []struct {
		name      string
		status    int
		wantLevel zapcore.Level
	}{
		{name: "success", status: http.StatusCreated, wantLevel: zapcore.DebugLevel},
		{name: "client error", status: http.StatusBadRequest, wantLevel: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs.TakeAll()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			req := httptest.NewRequest("POST", "/users", nil)
			req.Header.Set(RequestIDHeader, "req-1")
			RequestIDMiddleware(LoggingMiddleware(next)).ServeHTTP(httptest.NewRecorder(), req)

			entries := logs.TakeAll()
			require.Len(t, entries, 1)
			assert.Equal(t, tt.wantLevel, entries[0].Level)

			fields := entries[0].ContextMap()
			assert.Equal(t, "POST", fields["method"])
			assert.Equal(t, int64(tt.status), fields["status"])
			assert.Equal(t, "/users", fields["request"])
			assert.Equal(t, "req-1", fields["requestId"])
		})
	}
}
