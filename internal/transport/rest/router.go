package rest

import (
	"net/http"

	"github.com/heartmarshall/flock-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Auth    *AuthHandler
	Members *MemberHandler

	// LoginLimit wraps POST /auth/login; nil leaves it unwrapped.
	LoginLimit middleware.Middleware
}

// NewRouter registers every route on a fresh ServeMux.
func NewRouter(h Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	var login http.Handler = http.HandlerFunc(h.Auth.Login)
	if h.LoginLimit != nil {
		login = h.LoginLimit(login)
	}
	mux.Handle("POST /auth/login", login)

	mux.HandleFunc("GET /members", h.Members.List)
	mux.HandleFunc("GET /members/{memberId}/contributions", h.Members.Contributions)

	return mux
}
