package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func createTestUser(t *testing.T, s *Storage, username string) string {
	t.Helper()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA",
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user.ID
}

func TestUserStorage_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	id := createTestUser(t, s, "alice")

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Contains(t, user.PasswordHash, "$argon2id$")
	assert.Nil(t, user.LastLogin)
}

func TestUserStorage_CreateUser_DuplicateUsername(t *testing.T) {
	s := setupTestStorage(t)
	createTestUser(t, s, "duplicate")

	err := s.CreateUser(context.Background(), &models.User{
		ID:           uuid.New().String(),
		Username:     "duplicate",
		PasswordHash: "other",
		CreatedAt:    time.Now(),
	})
	assert.ErrorIs(t, err, storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUserByUsername_NotFound(t *testing.T) {
	s := setupTestStorage(t)

	_, err := s.GetUserByUsername(context.Background(), "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	id := createTestUser(t, s, "alice")

	login := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, s.UpdateLastLogin(ctx, id, login))

	user, err := s.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, user.LastLogin)
	assert.True(t, login.Equal(*user.LastLogin))

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, "missing", login), storage.ErrUserNotFound)
}
