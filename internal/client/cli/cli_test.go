package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/client/auth"
	"github.com/iudanet/listsync/internal/client/data"
	"github.com/iudanet/listsync/internal/client/iocli"
	"github.com/iudanet/listsync/internal/client/storage"
	syncsvc "github.com/iudanet/listsync/internal/client/sync"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/config"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/projection"
)

// bufferIO пишет весь вывод в буфер и отвечает заготовленными строками
func bufferIO(inputs ...string) (*iocli.IOMock, *bytes.Buffer) {
	out := &bytes.Buffer{}
	next := func() (string, error) {
		if len(inputs) == 0 {
			return "", errors.New("no more input")
		}
		v := inputs[0]
		inputs = inputs[1:]
		return v, nil
	}
	return &iocli.IOMock{
		PrintlnFunc: func(a ...any) { fmt.Fprintln(out, a...) },
		PrintfFunc:  func(format string, a ...any) { fmt.Fprintf(out, format, a...) },
		ReadInputFunc: func(prompt string) (string, error) {
			return next()
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			return next()
		},
		WriteFunc: func(p []byte) (int, error) { return out.Write(p) },
	}, out
}

func task(id, text string) projection.Row {
	it := models.NewItem(id)
	it.Text = text
	return projection.Row{Item: it}
}

func section(id, text string, level int64) projection.Row {
	it := models.NewItem(id)
	it.Text = text
	it.Type = models.ItemSection
	it.Level = level
	return projection.Row{Item: it}
}

const testServer = "http://localhost:8080"

type fixture struct {
	app     *App
	data    *data.ServiceMock
	history *HistoryMock
	sync    *SyncerMock
	auth    *AuthenticatorMock
	journal *JournalMock
	config  string
}

func newFixture(t *testing.T, rows ...projection.Row) *fixture {
	t.Helper()
	t.Setenv(PasswordEnv, "")

	f := &fixture{
		data: &data.ServiceMock{
			ListFunc: func() []projection.Row { return rows },
		},
		history: &HistoryMock{},
		sync: &SyncerMock{
			EnableManualFunc: func(ctx context.Context) bool { return false },
		},
		auth:    &AuthenticatorMock{},
		journal: &JournalMock{},
		config:  filepath.Join(t.TempDir(), "config.yaml"),
	}
	f.app = &App{Data: f.data, History: f.history, Sync: f.sync, Auth: f.auth, Journal: f.journal}
	return f
}

func (f *fixture) run(io iocli.IO, args ...string) error {
	open := func(ctx context.Context, cfg *config.Client) (*App, error) {
		return f.app, nil
	}
	return Execute(context.Background(), io, open, append([]string{"--config", f.config}, args...))
}

func TestAdd(t *testing.T) {
	f := newFixture(t)
	f.data.AddItemFunc = func(ctx context.Context, text, afterID string) (string, error) {
		return "0123456789abcdef", nil
	}
	io, out := bufferIO()

	require.NoError(t, f.run(io, "add", "buy", "milk"))

	calls := f.data.AddItemCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "buy milk", calls[0].Text)
	assert.Empty(t, calls[0].AfterID)
	assert.Contains(t, out.String(), "Added 01234567")
	assert.Len(t, f.sync.EnableManualCalls(), 1)
	assert.Empty(t, f.sync.SyncNowCalls(), "sync is not configured")
}

func TestAdd_SectionAfter(t *testing.T) {
	f := newFixture(t, task("aaa", "one"), task("bbb", "two"))
	f.data.AddSectionFunc = func(ctx context.Context, text string, level int64, afterID string) (string, error) {
		return "ccc", nil
	}
	io, _ := bufferIO()

	require.NoError(t, f.run(io, "add", "--section", "--level", "2", "--after", "2", "Later"))

	calls := f.data.AddSectionCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Later", calls[0].Text)
	assert.Equal(t, int64(2), calls[0].Level)
	assert.Equal(t, "bbb", calls[0].AfterID)
}

func TestList(t *testing.T) {
	archived := task("ccc", "old")
	archived.Item.Archived = true
	done := task("ddd", "paid")
	done.Item.Completed = true
	done.Depth = 1

	f := newFixture(t, section("aaa", "Home", 1), archived, done)
	io, out := bufferIO()

	require.NoError(t, f.run(io, "list"))
	assert.Contains(t, out.String(), "  1  ## Home")
	assert.NotContains(t, out.String(), "old")
	assert.Contains(t, out.String(), "  3    [x] paid", "hidden rows keep numbering")

	out.Reset()
	require.NoError(t, f.run(io, "list", "--all"))
	assert.Contains(t, out.String(), "  2  [ ] old  (archived)")
}

func TestList_Empty(t *testing.T) {
	f := newFixture(t)
	io, out := bufferIO()

	require.NoError(t, f.run(io, "list"))
	assert.Contains(t, out.String(), "List is empty.")
}

func TestShow(t *testing.T) {
	row := task("aaa111", "call mom")
	row.Item.Important = true
	f := newFixture(t, row)
	f.data.GetFunc = func(id string) (models.Item, error) { return row.Item, nil }
	io, out := bufferIO()

	require.NoError(t, f.run(io, "show", "aaa"))
	assert.Contains(t, out.String(), "=== Task ===")
	assert.Contains(t, out.String(), "Text:      call mom")
	assert.Contains(t, out.String(), "Important: true")
}

func TestResolveID(t *testing.T) {
	svc := &data.ServiceMock{ListFunc: func() []projection.Row {
		return []projection.Row{task("abc1", "x"), task("abc2", "y"), task("def", "z")}
	}}

	tests := []struct {
		name    string
		ref     string
		want    string
		wantErr bool
	}{
		{name: "row number", ref: "3", want: "def"},
		{name: "prefix", ref: "abc2", want: "abc2"},
		{name: "ambiguous prefix", ref: "abc", wantErr: true},
		{name: "unknown", ref: "zzz", wantErr: true},
		{name: "number out of range", ref: "9", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveID(svc, tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDone_ResolvesAllRefsFirst(t *testing.T) {
	rows := []projection.Row{task("aaa", "one"), task("bbb", "two")}
	f := newFixture(t)
	f.data.ListFunc = func() []projection.Row { return rows }
	f.data.SetCompletedFunc = func(ctx context.Context, id string, completed bool) error {
		// после изменения номера строк сдвигаются
		rows = []projection.Row{rows[1], rows[0]}
		return nil
	}
	io, _ := bufferIO()

	require.NoError(t, f.run(io, "done", "1", "2"))

	calls := f.data.SetCompletedCalls()
	require.Len(t, calls, 2)
	assert.Equal(t, "aaa", calls[0].ID)
	assert.Equal(t, "bbb", calls[1].ID)
	assert.True(t, calls[0].Completed)
}

func TestMove(t *testing.T) {
	f := newFixture(t, task("aaa", "one"), task("bbb", "two"))
	f.data.MoveFunc = func(ctx context.Context, id string, toIndex int) error { return nil }
	io, _ := bufferIO()

	require.NoError(t, f.run(io, "move", "2", "1"))
	calls := f.data.MoveCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "bbb", calls[0].ID)
	assert.Equal(t, 0, calls[0].ToIndex)

	assert.Error(t, f.run(io, "move", "2", "zero"))
	assert.Error(t, f.run(io, "move", "2", "0"))
	assert.Len(t, f.data.MoveCalls(), 1)
}

func TestIndentAndLevel(t *testing.T) {
	f := newFixture(t, section("aaa", "Home", 1), task("bbb", "two"))
	f.data.IndentFunc = func(ctx context.Context, id string) error { return nil }
	f.data.OutdentFunc = func(ctx context.Context, id string) error { return nil }
	f.data.SetLevelFunc = func(ctx context.Context, id string, level int64) error {
		if level != 1 && level != 2 {
			return data.ErrInvalidLevel
		}
		return nil
	}
	io, _ := bufferIO()

	require.NoError(t, f.run(io, "indent", "2"))
	require.NoError(t, f.run(io, "outdent", "2"))
	require.NoError(t, f.run(io, "level", "1", "2"))
	assert.ErrorIs(t, f.run(io, "level", "1", "3"), data.ErrInvalidLevel)

	assert.Equal(t, "bbb", f.data.IndentCalls()[0].ID)
	assert.Equal(t, "bbb", f.data.OutdentCalls()[0].ID)
	assert.Equal(t, "aaa", f.data.SetLevelCalls()[0].ID)
}

func TestUndo(t *testing.T) {
	f := newFixture(t)
	canUndo := false
	f.history.CanUndoFunc = func() bool { return canUndo }
	f.history.UndoFunc = func(ctx context.Context) (undo.ViewContext, error) {
		return undo.ViewContext{FocusID: "abcdef0123"}, nil
	}
	io, out := bufferIO()

	require.NoError(t, f.run(io, "undo"))
	assert.Contains(t, out.String(), "Nothing to undo.")
	assert.Empty(t, f.history.UndoCalls())

	canUndo = true
	require.NoError(t, f.run(io, "undo"))
	assert.Len(t, f.history.UndoCalls(), 1)
	assert.Contains(t, out.String(), "Focus: abcdef01")
}

func TestMutate_AutoSync(t *testing.T) {
	t.Run("pushes after change", func(t *testing.T) {
		f := newFixture(t, task("aaa", "one"))
		f.data.DeleteFunc = func(ctx context.Context, id string) error { return nil }
		f.sync.EnableManualFunc = func(ctx context.Context) bool { return true }
		f.sync.SyncNowFunc = func(ctx context.Context) (*syncsvc.SyncResult, error) {
			return &syncsvc.SyncResult{Pushed: 1}, nil
		}
		io, _ := bufferIO()

		require.NoError(t, f.run(io, "delete", "1"))
		assert.Len(t, f.sync.SyncNowCalls(), 1)
	})

	t.Run("not logged in keeps change", func(t *testing.T) {
		f := newFixture(t, task("aaa", "one"))
		f.data.SetImportantFunc = func(ctx context.Context, id string, important bool) error { return nil }
		f.sync.EnableManualFunc = func(ctx context.Context) bool { return true }
		f.sync.SyncNowFunc = func(ctx context.Context) (*syncsvc.SyncResult, error) {
			return nil, fmt.Errorf("push: %w", auth.ErrNotAuthenticated)
		}
		io, out := bufferIO()

		require.NoError(t, f.run(io, "important", "1"))
		assert.Contains(t, out.String(), "Saved locally. Run 'listsync login' to sync.")
		assert.True(t, f.data.SetImportantCalls()[0].Important)
	})

	t.Run("offline skips sync", func(t *testing.T) {
		f := newFixture(t, task("aaa", "one"))
		f.data.SetArchivedFunc = func(ctx context.Context, id string, archived bool) error { return nil }
		io, _ := bufferIO()

		require.NoError(t, f.run(io, "--offline", "archive", "--restore", "1"))
		assert.Empty(t, f.sync.EnableManualCalls())
		assert.False(t, f.data.SetArchivedCalls()[0].Archived)
	})

	t.Run("failed change is not synced", func(t *testing.T) {
		f := newFixture(t, task("aaa", "one"))
		f.data.SetTextFunc = func(ctx context.Context, id, text string) error { return errors.New("disk full") }
		io, _ := bufferIO()

		assert.Error(t, f.run(io, "edit", "1", "new", "text"))
		assert.Equal(t, "new text", f.data.SetTextCalls()[0].Text)
		assert.Empty(t, f.sync.EnableManualCalls())
	})
}

func TestSync(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		f := newFixture(t)
		io, out := bufferIO()

		require.NoError(t, f.run(io, "sync"))
		assert.Contains(t, out.String(), "Sync is not configured")
	})

	t.Run("reports counts", func(t *testing.T) {
		f := newFixture(t)
		f.sync.EnableManualFunc = func(ctx context.Context) bool { return true }
		f.sync.DisableFunc = func() {}
		f.sync.SyncNowFunc = func(ctx context.Context) (*syncsvc.SyncResult, error) {
			return &syncsvc.SyncResult{Pushed: 2, Pulled: 5, Applied: 3}, nil
		}
		io, out := bufferIO()

		require.NoError(t, f.run(io, "sync"))
		assert.Contains(t, out.String(), "Pushed:    2")
		assert.Contains(t, out.String(), "Applied:   3")
		assert.Len(t, f.sync.DisableCalls(), 1)
	})

	t.Run("pulls until no more pages", func(t *testing.T) {
		f := newFixture(t)
		f.sync.EnableManualFunc = func(ctx context.Context) bool { return true }
		f.sync.DisableFunc = func() {}
		cycles := []*syncsvc.SyncResult{
			{Pushed: 1, Pulled: 20, Applied: 20, More: true},
			{Pulled: 5, Applied: 4, Compacted: 2},
		}
		f.sync.SyncNowFunc = func(ctx context.Context) (*syncsvc.SyncResult, error) {
			res := cycles[0]
			cycles = cycles[1:]
			return res, nil
		}
		io, out := bufferIO()

		require.NoError(t, f.run(io, "sync"))
		assert.Len(t, f.sync.SyncNowCalls(), 2)
		assert.Contains(t, out.String(), "Pulled:    25")
		assert.Contains(t, out.String(), "Applied:   24")
		assert.Contains(t, out.String(), "Compacted: 2")
	})

	t.Run("failure", func(t *testing.T) {
		f := newFixture(t)
		f.sync.EnableManualFunc = func(ctx context.Context) bool { return true }
		f.sync.DisableFunc = func() {}
		f.sync.SyncNowFunc = func(ctx context.Context) (*syncsvc.SyncResult, error) {
			return nil, errors.New("connection refused")
		}
		io, _ := bufferIO()

		err := f.run(io, "sync")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	t.Setenv(PasswordEnv, "correct-horse")
	f.auth.LoginFunc = func(ctx context.Context, username, password string) (*auth.LoginResult, error) {
		return &auth.LoginResult{UserID: "u1", Username: username}, nil
	}
	io, out := bufferIO()

	require.NoError(t, f.run(io, "--server", testServer, "login", "-u", "alice"))

	calls := f.auth.LoginCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "alice", calls[0].Username)
	assert.Equal(t, "correct-horse", calls[0].Password)
	assert.Contains(t, out.String(), "Logged in as alice")
	assert.Len(t, f.sync.EnableManualCalls(), 1, "first sync right after login")
}

func TestLogin_NoServer(t *testing.T) {
	f := newFixture(t)
	io, _ := bufferIO("alice", "correct-horse")

	err := f.run(io, "login")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
	assert.Empty(t, f.auth.LoginCalls())
}

func TestRegister(t *testing.T) {
	t.Run("prompts and confirms", func(t *testing.T) {
		f := newFixture(t)
		f.auth.RegisterFunc = func(ctx context.Context, username, password string) (*auth.RegisterResult, error) {
			return &auth.RegisterResult{UserID: "u1", Username: username}, nil
		}
		io, out := bufferIO("alice", "correct-horse", "correct-horse")

		require.NoError(t, f.run(io, "--server", testServer, "register"))
		assert.Equal(t, "correct-horse", f.auth.RegisterCalls()[0].Password)
		assert.Contains(t, out.String(), "Registered alice")
	})

	t.Run("password mismatch", func(t *testing.T) {
		f := newFixture(t)
		io, _ := bufferIO("alice", "correct-horse", "wrong-horse")

		assert.Error(t, f.run(io, "--server", testServer, "register"))
		assert.Empty(t, f.auth.RegisterCalls())
	})

	t.Run("invalid username", func(t *testing.T) {
		f := newFixture(t)
		io, _ := bufferIO()

		assert.Error(t, f.run(io, "--server", testServer, "register", "-u", "a b"))
		assert.Empty(t, f.auth.RegisterCalls())
	})
}

func TestStatus(t *testing.T) {
	f := newFixture(t)
	f.journal.UnpushedFunc = func() []models.Event { return make([]models.Event, 3) }
	f.auth.SessionFunc = func(ctx context.Context) (*storage.AuthData, error) {
		return nil, auth.ErrNotAuthenticated
	}
	io, out := bufferIO()

	require.NoError(t, f.run(io, "status"))
	assert.Contains(t, out.String(), "not configured")
	assert.Contains(t, out.String(), "not logged in")
	assert.Contains(t, out.String(), "Unpushed:  3")
}

func TestCompact(t *testing.T) {
	f := newFixture(t)
	f.journal.UnpushedFunc = func() []models.Event { return nil }
	f.journal.CompactFunc = func(ctx context.Context) (int, error) { return 7, nil }
	io, out := bufferIO()

	require.NoError(t, f.run(io, "compact"))
	assert.Contains(t, out.String(), "Removed 7 event(s).")

	f.journal.UnpushedFunc = func() []models.Event { return make([]models.Event, 1) }
	require.NoError(t, f.run(io, "compact"))
	assert.Len(t, f.journal.CompactCalls(), 1, "unpushed events block compaction")
}

func TestConfigure(t *testing.T) {
	f := newFixture(t)
	io, _ := bufferIO()

	require.NoError(t, f.run(io, "--server", "https://sync.example.com", "configure"))

	cfg, err := config.LoadClient(f.config)
	require.NoError(t, err)
	assert.Equal(t, "https://sync.example.com", cfg.ServerURL)

	require.NoError(t, f.run(io, "configure", "--local"))
	cfg, err = config.LoadClient(f.config)
	require.NoError(t, err)
	assert.Empty(t, cfg.ServerURL)

	assert.Error(t, f.run(io, "--server", "ftp://nope", "configure"))
}

func TestWatch(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var notify func(syncsvc.Status)
	f.sync.OnStatusFunc = func(fn func(syncsvc.Status)) { notify = fn }
	f.sync.EnableFunc = func(ctx context.Context) bool {
		notify(syncsvc.Status{State: syncsvc.StateSyncing})
		notify(syncsvc.Status{State: syncsvc.StateSynced})
		notify(syncsvc.Status{State: syncsvc.StateSynced})
		cancel()
		return true
	}
	f.sync.DisableFunc = func() {}
	io, out := bufferIO()
	open := func(ctx context.Context, cfg *config.Client) (*App, error) { return f.app, nil }

	require.NoError(t, Execute(ctx, io, open, []string{"--config", f.config, "watch"}))
	assert.Equal(t, 1, strings.Count(out.String(), "sync: synced"), "repeated states are not printed")
	assert.Contains(t, out.String(), "sync: syncing")
	assert.Len(t, f.sync.DisableCalls(), 1)
}

// healthFunc Prober из функции
type healthFunc func(ctx context.Context) error

func (f healthFunc) Health(ctx context.Context) error { return f(ctx) }

func TestWatch_ReportsConnectivity(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var probes atomic.Int32
	f.app.Probe = healthFunc(func(ctx context.Context) error {
		// сервер недоступен на 2-й и 3-й проверке
		switch probes.Add(1) {
		case 2, 3:
			return errors.New("connection refused")
		}
		return nil
	})
	f.sync.OnStatusFunc = func(fn func(syncsvc.Status)) {}
	f.sync.EnableFunc = func(ctx context.Context) bool { return true }
	f.sync.DisableFunc = func() {}
	f.sync.SetOnlineFunc = func(online bool) {}
	io, _ := bufferIO()
	open := func(ctx context.Context, cfg *config.Client) (*App, error) { return f.app, nil }

	done := make(chan error, 1)
	go func() {
		done <- Execute(ctx, io, open, []string{"--config", f.config, "watch", "--probe-interval", "5ms"})
	}()

	require.Eventually(t, func() bool { return probes.Load() >= 5 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	calls := f.sync.SetOnlineCalls()
	require.Len(t, calls, 2, "only changes are reported")
	assert.False(t, calls[0].Online)
	assert.True(t, calls[1].Online)
	assert.Len(t, f.sync.DisableCalls(), 1)
}
