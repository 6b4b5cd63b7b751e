package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/listsync/internal/client/storage"
	"github.com/iudanet/listsync/internal/validation"
	"github.com/iudanet/listsync/pkg/api"
)

// ErrNotAuthenticated нет действующей сессии для текущего сервера
var ErrNotAuthenticated = errors.New("not authenticated")

// Service предоставляет функции авторизации и выдает токен синхронизации
type Service struct {
	apiClient APIClient
	sessions  storage.AuthStorage
	tokens    TokenStore
	logger    *slog.Logger
	now       func() time.Time
	serverURL string
}

// NewService создает новый сервис авторизации
func NewService(apiClient APIClient, sessions storage.AuthStorage, tokens TokenStore, serverURL string, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		tokens:    tokens,
		serverURL: serverURL,
		logger:    logger,
		now:       time.Now,
	}
}

// RegisterResult содержит результат регистрации
type RegisterResult struct {
	UserID   string // UUID пользователя
	Username string
}

// Register регистрирует нового пользователя
func (s *Service) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, fmt.Errorf("invalid password: %w", err)
	}

	resp, err := s.apiClient.Register(ctx, api.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return &RegisterResult{UserID: resp.UserID, Username: username}, nil
}

// LoginResult содержит результат авторизации
type LoginResult struct {
	UserID    string
	Username  string
	ExpiresAt time.Time
}

// Login выполняет аутентификацию, сохраняет токен в keyring и сессию в базе
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if err := validation.ValidateUsername(username); err != nil {
		return nil, fmt.Errorf("invalid username: %w", err)
	}
	if password == "" {
		return nil, fmt.Errorf("invalid password: password cannot be empty")
	}

	resp, err := s.apiClient.Login(ctx, api.LoginRequest{Username: username, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	expiresAt := s.now().Add(time.Duration(resp.ExpiresIn) * time.Second)

	if err := s.tokens.SaveToken(resp.AccessToken); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}
	session := &storage.AuthData{
		Username:  username,
		UserID:    resp.UserID,
		ServerURL: s.serverURL,
		ExpiresAt: expiresAt.Unix(),
	}
	if err := s.sessions.SaveAuth(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	s.logger.Info("Logged in", "username", username, "expires_at", expiresAt)
	return &LoginResult{UserID: resp.UserID, Username: username, ExpiresAt: expiresAt}, nil
}

// Logout удаляет локальные данные авторизации
func (s *Service) Logout(ctx context.Context) error {
	if err := s.tokens.DeleteToken(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	if err := s.sessions.DeleteAuth(ctx); err != nil && !errors.Is(err, storage.ErrAuthNotFound) {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Session возвращает действующую сессию для настроенного сервера
func (s *Service) Session(ctx context.Context) (*storage.AuthData, error) {
	session, err := s.sessions.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, err
	}
	if session.ServerURL != s.serverURL {
		return nil, fmt.Errorf("%w: session belongs to %s", ErrNotAuthenticated, session.ServerURL)
	}
	if !s.now().Before(time.Unix(session.ExpiresAt, 0)) {
		return nil, fmt.Errorf("%w: token expired", ErrNotAuthenticated)
	}
	return session, nil
}

// Token возвращает токен доступа для синхронизации. Отсутствие или
// истечение токена считается сбоем цикла синхронизации.
func (s *Service) Token(ctx context.Context) (string, error) {
	if _, err := s.Session(ctx); err != nil {
		return "", err
	}
	token, err := s.tokens.LoadToken()
	if err != nil {
		if errors.Is(err, ErrNoToken) {
			return "", ErrNotAuthenticated
		}
		return "", err
	}
	return token, nil
}
