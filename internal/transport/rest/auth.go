package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/flock-backend/internal/domain"
	"github.com/heartmarshall/flock-backend/internal/service/auth"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService

type authService interface {
	Login(ctx context.Context, input auth.LoginInput) (*auth.LoginResult, error)
}

// AuthHandler serves auth REST endpoints.
type AuthHandler struct {
	svc authService
	log *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, log: logger.With("handler", "auth")}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        userResponse `json:"user"`
}

type userResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	ChurchID *string `json:"churchId"`
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.svc.Login(r.Context(), auth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "Invalid login request", err)
		return
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	case err != nil:
		h.log.ErrorContext(r.Context(), "login", slog.String("error", err.Error()))
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, toLoginResponse(result))
}

func toLoginResponse(result *auth.LoginResult) loginResponse {
	resp := loginResponse{
		AccessToken: result.AccessToken,
		ExpiresAt:   result.ExpiresAt.UTC(),
		User: userResponse{
			ID:    result.User.ID.String(),
			Email: result.User.Email,
			Name:  result.User.Name,
			Role:  result.User.Role.String(),
		},
	}
	if result.User.ChurchID != nil {
		id := result.User.ChurchID.String()
		resp.User.ChurchID = &id
	}
	return resp
}
