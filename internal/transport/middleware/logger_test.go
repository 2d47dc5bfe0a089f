package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/flock-backend/internal/domain"
)

func decodeLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), "log output: %s", buf.String())
	return line
}

func TestLogger_Success(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	wrapped := Logger(logger)(okHandler(nil))
	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/members", nil))

	line := decodeLogLine(t, &buf)
	assert.Equal(t, "http.request", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/members", line["path"])
	assert.EqualValues(t, 200, line["status"])
	assert.Contains(t, line, "duration")
	assert.NotContains(t, line, "user_id")
}

func TestLogger_ServerErrorLoggedAsError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	Logger(logger)(handler).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ready", nil))

	line := decodeLogLine(t, &buf)
	assert.Equal(t, "ERROR", line["level"])
	assert.EqualValues(t, 503, line["status"])
}

func TestLogger_ReportsIdentityFromAuth(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	userID := uuid.New()
	validator := &tokenValidatorMock{
		ValidateTokenFunc: func(ctx context.Context, token string) (domain.Identity, error) {
			return domain.Identity{UserID: userID, Role: domain.UserRoleSuperAdmin}, nil
		},
	}

	wrapped := Chain(Logger(logger), Auth(validator))(okHandler(nil))
	req := httptest.NewRequest(http.MethodGet, "/members", nil)
	req.Header.Set("Authorization", "Bearer t")
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	line := decodeLogLine(t, &buf)
	assert.Equal(t, userID.String(), line["user_id"])
	assert.Equal(t, "superadmin", line["role"])
}

func TestStatusWriter_FirstStatusWins(t *testing.T) {
	rec := httptest.NewRecorder()
	sw := &statusWriter{ResponseWriter: rec, status: http.StatusOK}

	_, _ = sw.Write([]byte("ok"))
	sw.WriteHeader(http.StatusTeapot)

	assert.Equal(t, http.StatusOK, sw.status)
}
