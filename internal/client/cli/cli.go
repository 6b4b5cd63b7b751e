// Package cli команды клиента listsync (cobra).
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iudanet/listsync/internal/client/auth"
	"github.com/iudanet/listsync/internal/client/data"
	"github.com/iudanet/listsync/internal/client/iocli"
	"github.com/iudanet/listsync/internal/client/storage"
	syncsvc "github.com/iudanet/listsync/internal/client/sync"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/config"
	"github.com/iudanet/listsync/internal/models"
)

//go:generate moq -out history_mock.go . History
//go:generate moq -out syncer_mock.go . Syncer
//go:generate moq -out authenticator_mock.go . Authenticator
//go:generate moq -out journal_mock.go . Journal

// Version строка версии для --version, задается из main
var Version = "dev"

// PasswordEnv переменная окружения с паролем для неинтерактивного входа
const PasswordEnv = "LISTSYNC_PASSWORD"

// History отмена и повтор действий
type History interface {
	Undo(ctx context.Context) (undo.ViewContext, error)
	Redo(ctx context.Context) (undo.ViewContext, error)
	CanUndo() bool
	CanRedo() bool
}

// Syncer синхронизация с сервером
type Syncer interface {
	Enable(ctx context.Context) bool
	EnableManual(ctx context.Context) bool
	Disable()
	SyncNow(ctx context.Context) (*syncsvc.SyncResult, error)
	Status() syncsvc.Status
	OnStatus(fn func(syncsvc.Status))
	SetOnline(online bool)
	Cursor() int64
}

// Prober проверяет доступность сервера
type Prober interface {
	Health(ctx context.Context) error
}

// Authenticator регистрация и сессия пользователя
type Authenticator interface {
	Register(ctx context.Context, username, password string) (*auth.RegisterResult, error)
	Login(ctx context.Context, username, password string) (*auth.LoginResult, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (*storage.AuthData, error)
}

// Journal обслуживание локального журнала
type Journal interface {
	Unpushed() []models.Event
	Compact(ctx context.Context) (int, error)
}

// App зависимости команд, открываются лениво при первом обращении
type App struct {
	Data    data.Service
	History History
	Sync    Syncer
	Auth    Authenticator
	Journal Journal
	Probe   Prober // nil: связь не проверяется
	Close   func() error
}

// Opener открывает хранилище и собирает зависимости по настройкам
type Opener func(ctx context.Context, cfg *config.Client) (*App, error)

// RootOptions глобальные флаги
type RootOptions struct {
	ConfigPath string
	ServerURL  string
	DBPath     string
	Offline    bool

	io     iocli.IO
	open   Opener
	cfg    *config.Client
	app    *App
	loaded bool
}

// Config загружает настройки с учетом флагов командной строки
func (o *RootOptions) Config() (*config.Client, error) {
	if o.cfg != nil {
		return o.cfg, nil
	}
	cfg, err := config.LoadClient(o.ConfigPath)
	if err != nil {
		return nil, err
	}
	if o.ServerURL != "" {
		cfg.ServerURL = o.ServerURL
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o.cfg = cfg
	return cfg, nil
}

// App открывает зависимости один раз за запуск
func (o *RootOptions) App(ctx context.Context) (*App, error) {
	if o.loaded {
		return o.app, nil
	}
	cfg, err := o.Config()
	if err != nil {
		return nil, err
	}
	app, err := o.open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	o.app, o.loaded = app, true
	return app, nil
}

func (o *RootOptions) close() error {
	if o.app == nil || o.app.Close == nil {
		return nil
	}
	return o.app.Close()
}

// NewRootCommand создает корневую команду и ее опции
func NewRootCommand(io iocli.IO, open Opener) (*cobra.Command, *RootOptions) {
	opts := &RootOptions{io: io, open: open}

	cmd := &cobra.Command{
		Use:           "listsync",
		Short:         "Local-first ordered list with multi-device sync",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultClientPath(), "path to config file")
	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "sync server URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "path to local database (overrides config)")
	cmd.PersistentFlags().BoolVar(&opts.Offline, "offline", false, "do not sync after changes")

	cmd.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newEditCommand(opts),
		newDoneCommand(opts, true),
		newDoneCommand(opts, false),
		newImportantCommand(opts),
		newArchiveCommand(opts),
		newDeleteCommand(opts),
		newMoveCommand(opts),
		newIndentCommand(opts, true),
		newIndentCommand(opts, false),
		newLevelCommand(opts),
		newSplitCommand(opts),
		newUndoCommand(opts, true),
		newUndoCommand(opts, false),
		newSyncCommand(opts),
		newWatchCommand(opts),
		newStatusCommand(opts),
		newCompactCommand(opts),
		newRegisterCommand(opts),
		newLoginCommand(opts),
		newLogoutCommand(opts),
		newConfigureCommand(opts),
	)

	return cmd, opts
}

// Execute выполняет команду и закрывает открытые зависимости
func Execute(ctx context.Context, io iocli.IO, open Opener, args []string) error {
	cmd, opts := NewRootCommand(io, open)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if cerr := opts.close(); cerr != nil && err == nil {
		err = fmt.Errorf("failed to close storage: %w", cerr)
	}
	return err
}

// mutate выполняет изменение списка и отправляет его на сервер,
// если синхронизация настроена
func (o *RootOptions) mutate(cmd *cobra.Command, fn func(ctx context.Context, app *App) error) error {
	ctx := cmd.Context()
	app, err := o.App(ctx)
	if err != nil {
		return err
	}
	if err := fn(ctx, app); err != nil {
		return err
	}
	if o.Offline {
		return nil
	}
	o.autoSync(ctx, app)
	return nil
}

func (o *RootOptions) autoSync(ctx context.Context, app *App) {
	if app.Sync == nil || !app.Sync.EnableManual(ctx) {
		return
	}
	if _, err := app.Sync.SyncNow(ctx); err != nil {
		if errors.Is(err, auth.ErrNotAuthenticated) {
			o.io.Println("Saved locally. Run 'listsync login' to sync.")
			return
		}
		o.io.Printf("Saved locally, sync failed: %v\n", err)
	}
}

// resolveID находит элемент по номеру строки (1..N) или префиксу id
func resolveID(svc data.Service, ref string) (string, error) {
	rows := svc.List()

	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(rows) {
		return rows[n-1].Item.ID, nil
	}

	var found string
	for _, r := range rows {
		if strings.HasPrefix(r.Item.ID, ref) {
			if found != "" {
				return "", fmt.Errorf("ambiguous item reference %q", ref)
			}
			found = r.Item.ID
		}
	}
	if found == "" {
		return "", fmt.Errorf("%w: %s", data.ErrItemNotFound, ref)
	}
	return found, nil
}

// readPassword берет пароль из окружения, затем из файла, затем спрашивает
func readPassword(io iocli.IO, file, prompt string) (string, error) {
	if env := os.Getenv(PasswordEnv); env != "" {
		return env, nil
	}

	if file != "" {
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	password, err := io.ReadPassword(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}

// requireServer проверяет, что сервер синхронизации задан
func (o *RootOptions) requireServer() error {
	cfg, err := o.Config()
	if err != nil {
		return err
	}
	if cfg.ServerURL == "" {
		return errors.New("sync server is not configured, run 'listsync --server URL configure' first")
	}
	return nil
}

func envPassword() bool {
	return os.Getenv(PasswordEnv) != ""
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
