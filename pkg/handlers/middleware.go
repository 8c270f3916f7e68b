package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/replicatedhq/usersvc/pkg/logger"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

const RequestIDHeader = "X-Request-Id"

type contextKey string

const requestIDContextKey = contextKey("request-id")

type loggingResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func NewLoggingResponseWriter(w http.ResponseWriter) *loggingResponseWriter {
	return &loggingResponseWriter{w, http.StatusOK}
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.StatusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handleOptionsRequest(w, r) {
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequestIDMiddleware keeps the caller's X-Request-Id or assigns a new ksuid, and
// echoes it on the response.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = ksuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), requestIDContextKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(requestIDContextKey).(string)
	return requestID
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := time.Now()

		lrw := NewLoggingResponseWriter(w)
		next.ServeHTTP(lrw, r)

		fields := []zap.Field{
			zap.String("method", r.Method),
			zap.Int("status", lrw.StatusCode),
			zap.Duration("duration", time.Since(startTime)),
			zap.String("request", r.RequestURI),
			zap.String("requestId", RequestIDFromContext(r.Context())),
		}

		if lrw.StatusCode < http.StatusBadRequest {
			logger.Debug("request", fields...)
			return
		}
		logger.Info("request", fields...)
	})
}
