package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iudanet/listsync/internal/client/api"
	"github.com/iudanet/listsync/internal/client/auth"
	"github.com/iudanet/listsync/internal/client/cli"
	"github.com/iudanet/listsync/internal/client/data"
	"github.com/iudanet/listsync/internal/client/engine"
	"github.com/iudanet/listsync/internal/client/eventlog"
	"github.com/iudanet/listsync/internal/client/iocli"
	"github.com/iudanet/listsync/internal/client/storage/boltdb"
	syncsvc "github.com/iudanet/listsync/internal/client/sync"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/clock"
	"github.com/iudanet/listsync/internal/config"
	"github.com/iudanet/listsync/internal/crdt"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	cli.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildDate, GitCommit)

	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.Execute(ctx, iocli.NewStdio(), opener(logger, level), os.Args[1:])
	stop()

	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// opener собирает зависимости клиента поверх одной базы BoltDB
func opener(logger *slog.Logger, level *slog.LevelVar) cli.Opener {
	return func(ctx context.Context, cfg *config.Client) (*cli.App, error) {
		level.Set(config.ParseLevel(cfg.LogLevel))

		if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		store, err := boltdb.New(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}

		app, err := assemble(ctx, cfg, store, logger)
		if err != nil {
			if cerr := store.Close(); cerr != nil {
				logger.Error("failed to close database", "error", cerr)
			}
			return nil, err
		}
		return app, nil
	}
}

func assemble(ctx context.Context, cfg *config.Client, store *boltdb.Storage, logger *slog.Logger) (*cli.App, error) {
	clientID, err := store.GetClientID(ctx)
	if err != nil {
		return nil, err
	}

	clk := clock.System()
	log := eventlog.New(store, logger)
	history := undo.New(log, clk, undo.Config{
		MaxDepth:    cfg.Undo.MaxDepth,
		GroupWindow: cfg.Undo.GroupWindow,
	}, logger)
	eng := engine.New(log, history, crdt.NewClock(clientID, clk.Now), store, logger)
	if err := eng.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load list: %w", err)
	}

	ring, err := auth.OpenKeyring(auth.KeyringConfig{
		Backend:      cfg.Keyring.Backend,
		FileDir:      cfg.Keyring.FileDir,
		FilePassword: cfg.Keyring.FilePassword,
	})
	if err != nil {
		return nil, err
	}

	apiClient := api.NewClient(cfg.ServerURL)
	authService := auth.NewService(apiClient, store, auth.NewKeyringStore(ring), cfg.ServerURL, logger)

	var realtime syncsvc.Realtime
	if cfg.Sync.Realtime {
		realtime = apiClient
	}
	syncService := syncsvc.NewService(syncsvc.Config{
		ClientID:       clientID,
		ServerURL:      cfg.ServerURL,
		TestMode:       cfg.TestMode,
		PageSize:       cfg.Sync.PageSize,
		MaxPages:       cfg.Sync.MaxPages,
		Debounce:       cfg.Sync.Debounce,
		RetryBase:      cfg.Sync.RetryBase,
		RetryMaxDelay:  cfg.Sync.RetryMaxDelay,
		MaxRetries:     cfg.Sync.MaxRetries,
		ReconnectDelay: cfg.Sync.ReconnectDelay,
	}, eng.Remote(), apiClient, realtime, authService, store, clk, logger)
	eng.SetSyncer(syncService)

	return &cli.App{
		Data:    data.NewService(eng),
		History: eng,
		Sync:    syncService,
		Auth:    authService,
		Journal: eng.Remote(),
		Probe:   apiClient,
		Close: func() error {
			syncService.Disable()
			return store.Close()
		},
	}, nil
}
