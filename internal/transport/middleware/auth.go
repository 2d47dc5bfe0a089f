package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves a Bearer token into the caller's identity and stores user id,
// role and church in the request context. Requests without a Bearer token
// pass through anonymously; an invalid token is rejected with 401.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			id, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), id.UserID)
			ctx = ctxutil.WithUserRole(ctx, id.Role.String())
			if id.ChurchID != uuid.Nil {
				ctx = ctxutil.WithChurchID(ctx, id.ChurchID)
			}
			reportIdentity(ctx, id.UserID.String(), id.Role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
