package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Logger returns middleware that logs each HTTP request with method, path,
// status code, duration, and the caller's user id and role when known.
// request_id is added by the slog handler from the context.
func Logger(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			// Auth runs further in; it reports the identity back through sw.
			next.ServeHTTP(sw, r.WithContext(withIdentityReport(r.Context(), &sw.identity)))

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("duration", time.Since(start)),
			}
			if sw.identity.userID != "" {
				attrs = append(attrs,
					slog.String("user_id", sw.identity.userID),
					slog.String("role", sw.identity.role))
			}

			level := slog.LevelInfo
			if sw.status >= 500 {
				level = slog.LevelError
			}
			logger.LogAttrs(r.Context(), level, "http.request", attrs...)
		})
	}
}

// statusWriter wraps http.ResponseWriter to capture the response status code.
type statusWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	identity    identityReport
}

func (w *statusWriter) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusWriter) Unwrap() http.ResponseWriter { return w.ResponseWriter }

// identityReport is filled by Auth so the outer Logger can see who called.
type identityReport struct {
	userID string
	role   string
}

type identityReportKey struct{}

func withIdentityReport(ctx context.Context, rep *identityReport) context.Context {
	return context.WithValue(ctx, identityReportKey{}, rep)
}

func reportIdentity(ctx context.Context, userID, role string) {
	if rep, ok := ctx.Value(identityReportKey{}).(*identityReport); ok {
		rep.userID = userID
		rep.role = role
	}
}
