package auth

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"
)

const (
	// ServiceName имя сервиса в системном keyring
	ServiceName = "listsync"

	tokenKey = "access_token"
)

// ErrNoToken токен доступа не сохранен
var ErrNoToken = errors.New("access token not found")

// KeyringConfig настройки открытия keyring
type KeyringConfig struct {
	// Backend принудительный backend ("file", "keychain", "secret-service",
	// "wincred", "pass"); пусто: первый доступный
	Backend string
	// FileDir каталог file backend
	FileDir string
	// FilePassword пароль file backend; пусто: запрос в терминале
	FilePassword string
}

// OpenKeyring открывает системный keyring
func OpenKeyring(cfg KeyringConfig) (keyring.Keyring, error) {
	backends := []keyring.BackendType{
		keyring.KeychainBackend,
		keyring.SecretServiceBackend,
		keyring.WinCredBackend,
		keyring.PassBackend,
		keyring.FileBackend,
	}
	if cfg.Backend != "" {
		backends = []keyring.BackendType{keyring.BackendType(cfg.Backend)}
	}

	prompt := keyring.TerminalPrompt
	if cfg.FilePassword != "" {
		prompt = keyring.FixedStringPrompt(cfg.FilePassword)
	}

	ring, err := keyring.Open(keyring.Config{
		ServiceName:              ServiceName,
		AllowedBackends:          backends,
		FileDir:                  cfg.FileDir,
		FilePasswordFunc:         prompt,
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// KeyringStore хранит токен в keyring
type KeyringStore struct {
	ring keyring.Keyring
}

var _ TokenStore = (*KeyringStore)(nil)

// NewKeyringStore создает хранилище токена поверх открытого keyring
func NewKeyringStore(ring keyring.Keyring) *KeyringStore {
	return &KeyringStore{ring: ring}
}

// SaveToken сохраняет токен
func (s *KeyringStore) SaveToken(token string) error {
	err := s.ring.Set(keyring.Item{
		Key:   tokenKey,
		Data:  []byte(token),
		Label: "listsync access token",
	})
	if err != nil {
		return fmt.Errorf("setting credential %q: %w", tokenKey, err)
	}
	return nil
}

// LoadToken читает токен
func (s *KeyringStore) LoadToken() (string, error) {
	item, err := s.ring.Get(tokenKey)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("getting credential %q: %w", tokenKey, err)
	}
	return string(item.Data), nil
}

// DeleteToken удаляет токен; отсутствие токена не ошибка
func (s *KeyringStore) DeleteToken() error {
	if err := s.ring.Remove(tokenKey); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return fmt.Errorf("deleting credential %q: %w", tokenKey, err)
	}
	return nil
}
