package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/crypto"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/pkg/api"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:         []byte("test-secret-key-for-jwt-signing-32b"),
		AccessTokenTTL: 15 * time.Minute,
		Now:            func() time.Time { return testNow },
	}
}

func postJSON(t *testing.T, h http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) api.ErrorResponse {
	t.Helper()
	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		setupMock      func(*mockUserStorage)
		body           any
		name           string
		wantMessage    string
		expectedStatus int
	}{
		{
			name:           "successful registration",
			body:           api.RegisterRequest{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "invalid json",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
			wantMessage:    "invalid request body",
		},
		{
			name:           "invalid username",
			body:           api.RegisterRequest{Username: "a", Password: "password123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "short password",
			body:           api.RegisterRequest{Username: "alice", Password: "short"},
			expectedStatus: http.StatusBadRequest,
			wantMessage:    "password must be at least 8 characters long",
		},
		{
			name: "duplicate username",
			setupMock: func(m *mockUserStorage) {
				m.users["alice"] = &models.User{ID: "existing", Username: "alice"}
			},
			body:           api.RegisterRequest{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusConflict,
			wantMessage:    "username already taken",
		},
		{
			name: "storage failure",
			setupMock: func(m *mockUserStorage) {
				m.createError = errors.New("disk full")
			},
			body:           api.RegisterRequest{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusInternalServerError,
			wantMessage:    "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newMockUserStorage()
			if tt.setupMock != nil {
				tt.setupMock(users)
			}
			handler := NewAuthHandler(setupTestLogger(), users, testJWTConfig())

			w := postJSON(t, handler.Register, "/api/v1/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			if tt.expectedStatus != http.StatusCreated {
				resp := decodeError(t, w)
				assert.Equal(t, http.StatusText(tt.expectedStatus), resp.Error)
				if tt.wantMessage != "" {
					assert.Equal(t, tt.wantMessage, resp.Message)
				}
				return
			}

			var resp api.RegisterResponse
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.NotEmpty(t, resp.UserID)

			stored := users.users["alice"]
			require.NotNil(t, stored)
			assert.Equal(t, resp.UserID, stored.ID)
			assert.Equal(t, testNow, stored.CreatedAt)
			assert.NotContains(t, stored.PasswordHash, "password123")
			assert.NoError(t, crypto.VerifyPassword("password123", stored.PasswordHash))
		})
	}
}

func registeredUser(t *testing.T, password string) *mockUserStorage {
	t.Helper()
	hash, err := crypto.HashPasswordWithParams(password, crypto.Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32})
	require.NoError(t, err)

	users := newMockUserStorage()
	users.users["alice"] = &models.User{ID: "user-1", Username: "alice", PasswordHash: hash}
	return users
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("successful login", func(t *testing.T) {
		users := registeredUser(t, "password123")
		var lastLogin time.Time
		users.updateLastLogin = func(_ context.Context, userID string, at time.Time) error {
			assert.Equal(t, "user-1", userID)
			lastLogin = at
			return nil
		}
		cfg := testJWTConfig()
		handler := NewAuthHandler(setupTestLogger(), users, cfg)

		w := postJSON(t, handler.Login, "/api/v1/auth/login",
			api.LoginRequest{Username: "alice", Password: "password123"})
		require.Equal(t, http.StatusOK, w.Code)

		var resp api.TokenResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "user-1", resp.UserID)
		assert.Equal(t, int64(900), resp.ExpiresIn)
		assert.Equal(t, testNow, lastLogin)

		claims, err := ValidateAccessToken(cfg, resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("last login failure is not fatal", func(t *testing.T) {
		users := registeredUser(t, "password123")
		users.updateLastLogin = func(context.Context, string, time.Time) error {
			return errors.New("locked")
		}
		handler := NewAuthHandler(setupTestLogger(), users, testJWTConfig())

		w := postJSON(t, handler.Login, "/api/v1/auth/login",
			api.LoginRequest{Username: "alice", Password: "password123"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	tests := []struct {
		setupMock      func(*mockUserStorage)
		body           any
		name           string
		expectedStatus int
	}{
		{
			name:           "wrong password",
			body:           api.LoginRequest{Username: "alice", Password: "password124"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "unknown user",
			body:           api.LoginRequest{Username: "bob", Password: "password123"},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           api.LoginRequest{Username: "alice"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid json",
			body:           "[]",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "corrupted hash",
			setupMock: func(m *mockUserStorage) {
				m.users["alice"].PasswordHash = "plain"
			},
			body:           api.LoginRequest{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "storage failure",
			setupMock: func(m *mockUserStorage) {
				m.getUserError = errors.New("connection lost")
			},
			body:           api.LoginRequest{Username: "alice", Password: "password123"},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := registeredUser(t, "password123")
			if tt.setupMock != nil {
				tt.setupMock(users)
			}
			handler := NewAuthHandler(setupTestLogger(), users, testJWTConfig())

			w := postJSON(t, handler.Login, "/api/v1/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decodeError(t, w)
			assert.Equal(t, http.StatusText(tt.expectedStatus), resp.Error)
		})
	}
}

func TestAuthHandler_SameMessageForUnknownUserAndWrongPassword(t *testing.T) {
	handler := NewAuthHandler(setupTestLogger(), registeredUser(t, "password123"), testJWTConfig())

	unknown := postJSON(t, handler.Login, "/api/v1/auth/login",
		api.LoginRequest{Username: "bob", Password: "password123"})
	wrong := postJSON(t, handler.Login, "/api/v1/auth/login",
		api.LoginRequest{Username: "alice", Password: "nope-nope"})

	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
}
