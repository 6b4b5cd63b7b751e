package handlers

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/server/broker"
	"github.com/iudanet/listsync/internal/server/storage"
	"github.com/iudanet/listsync/pkg/api"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// mockUserStorage is a mock implementation of UserStorage for testing
type mockUserStorage struct {
	users           map[string]*models.User // username -> User
	createError     error
	getUserError    error
	updateLastLogin func(ctx context.Context, userID string, loginTime time.Time) error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Username]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Username] = user
	return nil
}

func (m *mockUserStorage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.getUserError != nil {
		return nil, m.getUserError
	}
	user, ok := m.users[username]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) UpdateLastLogin(ctx context.Context, userID string, loginTime time.Time) error {
	if m.updateLastLogin != nil {
		return m.updateLastLogin(ctx, userID, loginTime)
	}
	return nil
}

// mockEventStorage хранит журналы пользователей в памяти
type mockEventStorage struct {
	mu        sync.Mutex
	logs      map[string][]models.Event
	ids       map[string]int64 // user/event -> seq
	seq       int64
	appendErr error
	sinceErr  error
	calls     int
}

func newMockEventStorage() *mockEventStorage {
	return &mockEventStorage{
		logs: make(map[string][]models.Event),
		ids:  make(map[string]int64),
	}
}

func (m *mockEventStorage) AppendEvents(ctx context.Context, userID string, events []models.Event) (*storage.AppendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.appendErr != nil {
		return nil, m.appendErr
	}
	res := &storage.AppendResult{}
	for _, ev := range events {
		key := userID + "/" + ev.ID
		seq, dup := m.ids[key]
		if !dup {
			m.seq++
			seq = m.seq
			m.ids[key] = seq
			stored := ev.WithSeq(seq)
			m.logs[userID] = append(m.logs[userID], stored)
			res.Inserted = append(res.Inserted, stored)
		}
		res.Acks = append(res.Acks, api.Ack{ID: ev.ID, Seq: seq})
	}
	return res, nil
}

func (m *mockEventStorage) EventsSince(ctx context.Context, userID string, since int64, limit int) ([]models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.sinceErr != nil {
		return nil, m.sinceErr
	}
	log := m.logs[userID]
	i := sort.Search(len(log), func(i int) bool { return *log[i].Seq > since })
	var out []models.Event
	for ; i < len(log) && len(out) < limit; i++ {
		out = append(out, log[i])
	}
	return out, nil
}

// mockBroker запоминает уведомления и раздает их через Memory
type mockBroker struct {
	*broker.Memory
	mu        sync.Mutex
	notified  []string
	notifyErr error
}

func newMockBroker() *mockBroker {
	return &mockBroker{Memory: broker.NewMemory()}
}

func (b *mockBroker) Notify(ctx context.Context, userID string) error {
	b.mu.Lock()
	b.notified = append(b.notified, userID)
	err := b.notifyErr
	b.mu.Unlock()
	if err != nil {
		return err
	}
	return b.Memory.Notify(ctx, userID)
}

func (b *mockBroker) notifications() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.notified...)
}

func textEvent(id, itemID, text string, ts int64) models.Event {
	return models.Event{
		ID:        id,
		ItemID:    itemID,
		Kind:      models.EventFieldChanged,
		Field:     models.FieldText,
		Value:     models.Text(text),
		Timestamp: ts,
		ClientID:  "c1",
	}
}
