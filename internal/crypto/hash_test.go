package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// параметры полегче, чтобы тесты не тратили 64MB на каждый хеш
var testParams = Params{Time: 1, Memory: 1024, Threads: 1, KeyLen: 32}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("correct horse")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=65536,t=1,p=4$"))
	assert.NoError(t, VerifyPassword("correct horse", hash))
}

func TestHashPassword_Empty(t *testing.T) {
	hash, err := HashPassword("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password cannot be empty")
	assert.Empty(t, hash)
}

func TestHashPassword_RandomSalt(t *testing.T) {
	h1, err := HashPasswordWithParams("secret", testParams)
	require.NoError(t, err)
	h2, err := HashPasswordWithParams("secret", testParams)
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2, "одинаковые пароли должны давать разные хеши")
	assert.NoError(t, VerifyPassword("secret", h1))
	assert.NoError(t, VerifyPassword("secret", h2))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPasswordWithParams("secret", testParams)
	require.NoError(t, err)

	tests := []struct {
		wantErr  error
		name     string
		password string
		hash     string
	}{
		{name: "correct", password: "secret", hash: hash},
		{name: "wrong password", password: "Secret", hash: hash, wantErr: ErrPasswordMismatch},
		{name: "empty password", password: "", hash: hash, wantErr: ErrPasswordMismatch},
		{name: "not a phc string", password: "secret", hash: "plain", wantErr: ErrInvalidHash},
		{name: "other algorithm", password: "secret", hash: strings.Replace(hash, "argon2id", "argon2i", 1), wantErr: ErrInvalidHash},
		{name: "bad version", password: "secret", hash: strings.Replace(hash, "v=19", "v=16", 1), wantErr: ErrInvalidHash},
		{name: "broken salt", password: "secret", hash: replacePart(hash, 4, "!!!"), wantErr: ErrInvalidHash},
		{name: "empty key", password: "secret", hash: replacePart(hash, 5, ""), wantErr: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyPassword(tt.password, tt.hash)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerifyPassword_UsesStoredParams(t *testing.T) {
	hash, err := HashPasswordWithParams("secret", Params{Time: 2, Memory: 2048, Threads: 2, KeyLen: 16})
	require.NoError(t, err)
	assert.Contains(t, hash, "m=2048,t=2,p=2")

	assert.NoError(t, VerifyPassword("secret", hash))
}

func replacePart(hash string, i int, value string) string {
	parts := strings.Split(hash, "$")
	parts[i] = value
	return strings.Join(parts, "$")
}
