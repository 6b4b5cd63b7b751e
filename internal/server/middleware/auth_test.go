package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/server/handlers"
)

// setupTestLogger creates a logger for testing
func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testJWTConfig() handlers.JWTConfig {
	return handlers.JWTConfig{
		Secret:         []byte("test-secret-key-for-jwt-signing-32b"),
		AccessTokenTTL: 15 * time.Minute,
	}
}

// testHandler is a simple handler that checks context values
func testHandler(t *testing.T, expectedUserID, expectedUsername string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := handlers.GetUserID(r.Context())
		require.True(t, ok, "user_id should be in context")
		assert.Equal(t, expectedUserID, userID)

		username, ok := handlers.GetUsername(r.Context())
		require.True(t, ok, "username should be in context")
		assert.Equal(t, expectedUsername, username)

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func unreachable(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be called")
	}
}

func TestAuthMiddleware_Success(t *testing.T) {
	jwtConfig := testJWTConfig()

	token, _, err := handlers.GenerateAccessToken(jwtConfig, "user123", "testuser")
	require.NoError(t, err)

	wrapped := AuthMiddleware(setupTestLogger(), jwtConfig)(testHandler(t, "user123", "testuser"))

	for _, scheme := range []string{"Bearer", "bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
		req.Header.Set("Authorization", scheme+" "+token)
		w := httptest.NewRecorder()
		wrapped.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	}
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	jwtConfig := testJWTConfig()

	expired := jwtConfig
	expired.Now = func() time.Time { return time.Now().Add(-time.Hour) }
	expiredToken, _, err := handlers.GenerateAccessToken(expired, "user123", "testuser")
	require.NoError(t, err)

	foreign := jwtConfig
	foreign.Secret = []byte("another-secret-key-for-jwt-signing")
	foreignToken, _, err := handlers.GenerateAccessToken(foreign, "user123", "testuser")
	require.NoError(t, err)

	tests := []struct {
		name         string
		header       string
		expectedBody string
	}{
		{name: "missing header", header: "", expectedBody: "Unauthorized: missing token"},
		{name: "no scheme", header: "token-only", expectedBody: "Unauthorized: invalid token format"},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", expectedBody: "Unauthorized: invalid token format"},
		{name: "empty token", header: "Bearer ", expectedBody: "Unauthorized: invalid token format"},
		{name: "garbage token", header: "Bearer abc.def.ghi", expectedBody: "Unauthorized: invalid token"},
		{name: "expired token", header: "Bearer " + expiredToken, expectedBody: "Unauthorized: invalid token"},
		{name: "wrong secret", header: "Bearer " + foreignToken, expectedBody: "Unauthorized: invalid token"},
	}

	wrapped := AuthMiddleware(setupTestLogger(), jwtConfig)(unreachable(t))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			wrapped.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
