package auth

import (
	"context"

	"github.com/iudanet/listsync/pkg/api"
)

//go:generate moq -out api_mock.go . APIClient
//go:generate moq -out token_mock.go . TokenStore

// APIClient часть HTTP клиента, нужная для авторизации
type APIClient interface {
	Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error)
	Login(ctx context.Context, req api.LoginRequest) (*api.TokenResponse, error)
}

// TokenStore хранит access token вне базы клиента (системный keyring)
type TokenStore interface {
	SaveToken(token string) error
	// LoadToken возвращает ErrNoToken, если токен не сохранен
	LoadToken() (string, error)
	DeleteToken() error
}
