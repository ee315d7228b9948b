package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/reepower84-png/rocket-call-realestate/internal/auth"
	"github.com/reepower84-png/rocket-call-realestate/internal/metrics"
)

// RequireSession returns middleware that only admits requests carrying
// a valid admin session cookie.
func RequireSession(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.CookieName)
			if err != nil || cookie.Value == "" {
				jsonError(w, http.StatusUnauthorized, "인증이 필요합니다.")
				return
			}
			if err := auth.ValidateToken(secret, cookie.Value); err != nil {
				jsonError(w, http.StatusUnauthorized, "인증이 필요합니다.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// statusRecorder wraps http.ResponseWriter to capture the status code.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// LoggingMiddleware logs HTTP requests with method, path, status, and
// duration, and records the request metric.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		metrics.RecordRequest(r.Method, r.URL.Path, rec.status)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.RequestURI(),
			"status", rec.status,
			"duration", time.Since(start).Round(time.Millisecond),
		)
	})
}
