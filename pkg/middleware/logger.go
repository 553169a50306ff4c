package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/worksprings/inventory-roi/pkg/requestid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger returns a middleware that logs HTTP requests using zap logger.
// It logs request start with requestId, then request end with requestId and status.
// Health checks are logged at debug level.
func Logger() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := zap.S().Named("http").Desugar()
			start := time.Now()
			// Store the original values since some middlewares might modify them
			path := r.URL.Path
			requestID := requestid.FromRequest(r)

			baseFields := []zapcore.Field{
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", path),
				zap.String("ip", getClientIP(r)),
				zap.String("user-agent", r.UserAgent()),
			}
			if isHealthCheck(r) {
				logger.Debug("Request started", baseFields...)
			} else {
				logger.Info("Request started", baseFields...)
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			endFields := append(baseFields,
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("response_bytes", ww.BytesWritten()),
			)

			msg := "Request completed"
			switch {
			case ww.Status() >= 500:
				logger.Error(msg, endFields...)
			case ww.Status() >= 400:
				logger.Warn(msg, endFields...)
			case isHealthCheck(r):
				logger.Debug(msg, endFields...)
			default:
				logger.Info(msg, endFields...)
			}
		})
	}
}

func isHealthCheck(r *http.Request) bool {
	return r.Method == http.MethodGet && r.URL.Path == "/health"
}

// getClientIP extracts the real client IP from proxy headers with RemoteAddr as fallback
func getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs, take the first one
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
