package storage

import (
	"context"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for storing session metadata on client.
// The access token itself is kept in the OS keyring, not here.
type AuthStorage interface {
	// SaveAuth stores session metadata
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored session metadata
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored session metadata (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if a session exists and has not expired
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents session information in storage
type AuthData struct {
	Username  string `json:"username"`
	UserID    string `json:"user_id"`
	ServerURL string `json:"server_url"`
	ExpiresAt int64  `json:"expires_at"` // unix seconds
}
