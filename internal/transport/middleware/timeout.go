package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout bounds the request context to d. Handlers and the storage calls
// they make observe the deadline through ctx.
func Timeout(d time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
