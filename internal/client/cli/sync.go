package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/listsync/internal/client/auth"
	"github.com/iudanet/listsync/internal/client/storage"
	syncsvc "github.com/iudanet/listsync/internal/client/sync"
)

func newSyncCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Push local changes and pull changes from other devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}
			if !app.Sync.EnableManual(ctx) {
				opts.io.Println("Sync is not configured. Run 'listsync configure --server URL' first.")
				return nil
			}
			defer app.Sync.Disable()

			opts.io.Println("Starting synchronization...")
			res := &syncsvc.SyncResult{}
			for more := true; more; {
				cycle, err := app.Sync.SyncNow(ctx)
				if err != nil {
					if errors.Is(err, auth.ErrNotAuthenticated) {
						return fmt.Errorf("not logged in, run 'listsync login' first")
					}
					return fmt.Errorf("sync failed: %w", err)
				}
				if cycle == nil {
					opts.io.Println("Sync already in progress.")
					return nil
				}
				res.Pushed += cycle.Pushed
				res.Pulled += cycle.Pulled
				res.Applied += cycle.Applied
				res.Compacted += cycle.Compacted
				more = cycle.More
			}

			opts.io.Println("Synchronization completed successfully!")
			opts.io.Printf("  Pushed:    %d\n", res.Pushed)
			opts.io.Printf("  Pulled:    %d\n", res.Pulled)
			opts.io.Printf("  Applied:   %d\n", res.Applied)
			if res.Compacted > 0 {
				opts.io.Printf("  Compacted: %d\n", res.Compacted)
			}
			return nil
		},
	}
}

// DefaultProbeInterval период проверки связи в watch
const DefaultProbeInterval = 15 * time.Second

func newWatchCommand(opts *RootOptions) *cobra.Command {
	var probeInterval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stay connected and apply changes from other devices as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}

			var last syncsvc.State
			app.Sync.OnStatus(func(st syncsvc.Status) {
				if st.State == last && st.State != syncsvc.StateError {
					return
				}
				last = st.State
				opts.io.Printf("sync: %s\n", st)
			})

			if !app.Sync.Enable(ctx) {
				opts.io.Println("Sync is not configured. Run 'listsync configure --server URL' first.")
				return nil
			}
			defer app.Sync.Disable()

			opts.io.Println("Watching for changes, press Ctrl+C to stop.")
			if app.Probe == nil || probeInterval <= 0 {
				<-ctx.Done()
				return nil
			}
			probeServer(ctx, app.Probe, app.Sync, probeInterval)
			return nil
		},
	}

	cmd.Flags().DurationVar(&probeInterval, "probe-interval", DefaultProbeInterval, "server reachability check period, 0 disables")
	return cmd
}

// probeServer до отмены ctx проверяет сервер и сообщает синхронизации
// только о смене доступности
func probeServer(ctx context.Context, p Prober, s Syncer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	online := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pctx, cancel := context.WithTimeout(ctx, interval)
		err := p.Health(pctx)
		cancel()
		if ctx.Err() != nil {
			return
		}
		if up := err == nil; up != online {
			online = up
			s.SetOnline(up)
		}
	}
}

type statusView struct {
	Server   string
	Session  *storage.AuthData
	State    string
	Cursor   int64
	Unpushed int
}

func newStatusCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show login and sync state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := opts.Config()
			if err != nil {
				return err
			}
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}

			view := statusView{
				Server:   cfg.ServerURL,
				Unpushed: len(app.Journal.Unpushed()),
			}

			session, err := app.Auth.Session(ctx)
			switch {
			case err == nil:
				view.Session = session
			case errors.Is(err, auth.ErrNotAuthenticated), errors.Is(err, storage.ErrAuthNotFound):
			default:
				return fmt.Errorf("failed to read session: %w", err)
			}

			switch {
			case cfg.ServerURL == "":
				view.State = "local only"
			case cfg.TestMode:
				view.State = "test mode, sync disabled"
			case view.Session == nil:
				view.State = "login required"
			case view.Unpushed > 0:
				view.State = "changes waiting to be pushed"
			default:
				view.State = "up to date with last sync"
			}
			if app.Sync.EnableManual(ctx) {
				view.Cursor = app.Sync.Cursor()
				app.Sync.Disable()
			}

			return statusTmpl.Execute(opts.io, view)
		},
	}
}

func newCompactCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compact",
		Short: "Drop superseded events from the local journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := opts.App(ctx)
			if err != nil {
				return err
			}
			if n := len(app.Journal.Unpushed()); n > 0 {
				opts.io.Printf("%d event(s) not pushed yet, run 'listsync sync' first.\n", n)
				return nil
			}
			dropped, err := app.Journal.Compact(ctx)
			if err != nil {
				return fmt.Errorf("compaction failed: %w", err)
			}
			opts.io.Printf("Removed %d event(s).\n", dropped)
			return nil
		},
	}
}
