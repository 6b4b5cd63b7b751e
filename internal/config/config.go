// Package config загружает настройки клиента и сервера: YAML файл,
// переменные окружения LISTSYNC_* и значения по умолчанию.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/iudanet/listsync/internal/validation"
)

// EnvPrefix префикс переменных окружения
const EnvPrefix = "LISTSYNC"

// SyncConfig параметры движка синхронизации
type SyncConfig struct {
	PageSize       int           `mapstructure:"page_size" yaml:"page_size"`
	MaxPages       int           `mapstructure:"max_pages" yaml:"max_pages"`
	Debounce       time.Duration `mapstructure:"debounce" yaml:"debounce"`
	RetryBase      time.Duration `mapstructure:"retry_base" yaml:"retry_base"`
	RetryMaxDelay  time.Duration `mapstructure:"retry_max_delay" yaml:"retry_max_delay"`
	MaxRetries     uint64        `mapstructure:"max_retries" yaml:"max_retries"`
	ReconnectDelay time.Duration `mapstructure:"reconnect_delay" yaml:"reconnect_delay"`
	Realtime       bool          `mapstructure:"realtime" yaml:"realtime"`
}

// KeyringConfig где хранить токен доступа
type KeyringConfig struct {
	Backend      string `mapstructure:"backend" yaml:"backend"`
	FileDir      string `mapstructure:"file_dir" yaml:"file_dir"`
	FilePassword string `mapstructure:"file_password" yaml:"file_password"`
}

// Client настройки клиента
type Client struct {
	// ServerURL адрес сервера; пусто: синхронизация не настроена
	ServerURL string        `mapstructure:"server_url" yaml:"server_url"`
	DBPath    string        `mapstructure:"db_path" yaml:"db_path"`
	TestMode  bool          `mapstructure:"test_mode" yaml:"test_mode"`
	LogLevel  string        `mapstructure:"log_level" yaml:"log_level"`
	Sync      SyncConfig    `mapstructure:"sync" yaml:"sync"`
	Keyring   KeyringConfig `mapstructure:"keyring" yaml:"keyring"`
	Undo      UndoConfig    `mapstructure:"undo" yaml:"undo"`
}

// UndoConfig параметры истории отмены
type UndoConfig struct {
	MaxDepth    int           `mapstructure:"max_depth" yaml:"max_depth"`
	GroupWindow time.Duration `mapstructure:"group_window" yaml:"group_window"`
}

// RateLimitConfig ограничение частоты запросов на клиента
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps" yaml:"rps"`
	Burst int     `mapstructure:"burst" yaml:"burst"`
}

// Server настройки сервера
type Server struct {
	Addr      string          `mapstructure:"addr" yaml:"addr"`
	DBPath    string          `mapstructure:"db_path" yaml:"db_path"`
	JWTSecret string          `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	TokenTTL  time.Duration   `mapstructure:"token_ttl" yaml:"token_ttl"`
	RedisURL  string          `mapstructure:"redis_url" yaml:"redis_url"` // пусто: рассылка в памяти процесса
	PageLimit int             `mapstructure:"page_limit" yaml:"page_limit"`
	LogLevel  string          `mapstructure:"log_level" yaml:"log_level"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit" yaml:"rate_limit"`
}

// DefaultClientPath возвращает путь к файлу настроек клиента
// (~/.config/listsync/config.yaml)
func DefaultClientPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// DefaultDir каталог данных клиента
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "listsync")
}

func clientDefaults(v *viper.Viper) {
	v.SetDefault("server_url", "")
	v.SetDefault("db_path", filepath.Join(DefaultDir(), "list.db"))
	v.SetDefault("test_mode", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("sync.page_size", 500)
	v.SetDefault("sync.max_pages", 10)
	v.SetDefault("sync.debounce", time.Second)
	v.SetDefault("sync.retry_base", 5*time.Second)
	v.SetDefault("sync.retry_max_delay", time.Minute)
	v.SetDefault("sync.max_retries", 5)
	v.SetDefault("sync.reconnect_delay", 3*time.Second)
	v.SetDefault("sync.realtime", true)
	v.SetDefault("keyring.backend", "")
	v.SetDefault("keyring.file_dir", filepath.Join(DefaultDir(), "credentials"))
	v.SetDefault("keyring.file_password", "")
	v.SetDefault("undo.max_depth", 100)
	v.SetDefault("undo.group_window", time.Second)
}

func serverDefaults(v *viper.Viper) {
	v.SetDefault("addr", ":8080")
	v.SetDefault("db_path", "listsync-server.db")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("token_ttl", 24*time.Hour)
	v.SetDefault("redis_url", "")
	v.SetDefault("page_limit", 500)
	v.SetDefault("log_level", "info")
	v.SetDefault("rate_limit.rps", 20.0)
	v.SetDefault("rate_limit.burst", 40)
}

// LoadClient читает настройки клиента. Отсутствующий файл не ошибка.
func LoadClient(path string) (*Client, error) {
	v := newViper(path)
	clientDefaults(v)
	if err := read(v, path); err != nil {
		return nil, err
	}

	var cfg Client
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек клиента
func (c *Client) Validate() error {
	if c.ServerURL != "" {
		if err := validation.ValidateServerURL(c.ServerURL); err != nil {
			return err
		}
	}
	if c.Sync.PageSize <= 0 || c.Sync.MaxPages <= 0 {
		return errors.New("sync.page_size and sync.max_pages must be positive")
	}
	return nil
}

// LoadServer читает настройки сервера
func LoadServer(path string) (*Server, error) {
	v := newViper(path)
	serverDefaults(v)
	if err := read(v, path); err != nil {
		return nil, err
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет настройки сервера
func (s *Server) Validate() error {
	if len(s.JWTSecret) < 32 {
		return errors.New("jwt_secret must be at least 32 bytes")
	}
	if s.TokenTTL <= 0 {
		return errors.New("token_ttl must be positive")
	}
	if s.PageLimit <= 0 {
		return errors.New("page_limit must be positive")
	}
	return nil
}

// SaveClient записывает настройки клиента в YAML, создавая каталог
func SaveClient(path string, cfg *Client) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("server_url", cfg.ServerURL)
	v.Set("db_path", cfg.DBPath)
	v.Set("test_mode", cfg.TestMode)
	v.Set("log_level", cfg.LogLevel)
	v.Set("sync", cfg.Sync)
	v.Set("keyring", cfg.Keyring)
	v.Set("undo", cfg.Undo)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// ParseLevel переводит имя уровня в slog.Level; неизвестное имя дает info
func ParseLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func read(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}
