package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/heartmarshall/flock-backend/internal/config"
)

func corsConfig(origins string, credentials bool) config.CORSConfig {
	return config.CORSConfig{
		AllowedOrigins:   origins,
		AllowedMethods:   "GET,POST,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: credentials,
		MaxAge:           86400,
	}
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if called != nil {
			*called = true
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORS_Preflight(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called for preflight")
	})

	wrapped := CORS(corsConfig("https://app.example.org", true))(handler)

	req := httptest.NewRequest(http.MethodOptions, "/members/abc/contributions", nil)
	req.Header.Set("Origin", "https://app.example.org")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()

	wrapped.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":      "https://app.example.org",
		"Access-Control-Allow-Methods":     "GET,POST,OPTIONS",
		"Access-Control-Allow-Headers":     "Authorization,Content-Type",
		"Access-Control-Allow-Credentials": "true",
		"Access-Control-Max-Age":           "86400",
	}
	for header, value := range want {
		if got := rec.Header().Get(header); got != value {
			t.Errorf("%s: got %q, want %q", header, got, value)
		}
	}
}

func TestCORS_PlainOptionsReachesHandler(t *testing.T) {
	called := false
	wrapped := CORS(corsConfig("*", false))(okHandler(&called))

	req := httptest.NewRequest(http.MethodOptions, "/members", nil)
	wrapped.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("OPTIONS without Access-Control-Request-Method is not a preflight")
	}
}

func TestCORS_Origins(t *testing.T) {
	tests := []struct {
		name        string
		origins     string
		credentials bool
		origin      string
		wantAllow   string
		wantCreds   string
	}{
		{"listed origin", "https://a.example, https://b.example", true, "https://b.example", "https://b.example", "true"},
		{"unlisted origin", "https://a.example", true, "https://evil.example", "", ""},
		{"wildcard without credentials", "*", false, "https://any.example", "https://any.example", ""},
		{"no origin header", "*", true, "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			wrapped := CORS(corsConfig(tt.origins, tt.credentials))(okHandler(&called))

			req := httptest.NewRequest(http.MethodGet, "/members", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			wrapped.ServeHTTP(rec, req)

			if !called {
				t.Error("expected handler to be called")
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantAllow {
				t.Errorf("Allow-Origin: got %q, want %q", got, tt.wantAllow)
			}
			if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != tt.wantCreds {
				t.Errorf("Allow-Credentials: got %q, want %q", got, tt.wantCreds)
			}
		})
	}
}
