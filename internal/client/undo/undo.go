// Package undo реализует отмену и повтор локальных действий.
//
// Запись истории хранит id событий, порожденных действием, и контекст
// представления до и после него. Undo удаляет эти события из журнала,
// redo возвращает их без изменений. Быстрые повторы одного действия
// (например, набор текста) объединяются в одну запись.
package undo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/iudanet/listsync/internal/clock"
	"github.com/iudanet/listsync/internal/models"
)

const (
	// DefaultMaxDepth глубина истории по умолчанию
	DefaultMaxDepth = 100
	// DefaultGroupWindow окно объединения однотипных действий
	DefaultGroupWindow = time.Second
)

var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// EventLog часть журнала событий, нужная истории
type EventLog interface {
	RemoveByIDs(ctx context.Context, ids []string) ([]models.Event, error)
	Reappend(ctx context.Context, events []models.Event) ([]models.Event, error)
}

// ViewContext состояние представления, восстанавливаемое при undo/redo
type ViewContext struct {
	FocusID string `json:"focusId,omitempty"`
	View    string `json:"view,omitempty"`
	Caret   int    `json:"caret,omitempty"`
}

// Entry одна запись истории
type Entry struct {
	Before  ViewContext    `json:"before"`
	After   ViewContext    `json:"after"`
	Group   string         `json:"group,omitempty"`
	IDs     []string       `json:"ids"`
	Removed []models.Event `json:"removed,omitempty"` // события, снятые undo; нужны для redo
	At      int64          `json:"at"`                // unix ms последнего действия группы
}

// Config настройки истории
type Config struct {
	MaxDepth    int
	GroupWindow time.Duration
}

// Manager стеки undo/redo
type Manager struct {
	log    EventLog
	clock  clock.Clock
	logger *slog.Logger
	undo   []Entry
	redo   []Entry
	cfg    Config
	mu     sync.Mutex
}

// New создает историю поверх журнала
func New(log EventLog, clk clock.Clock, cfg Config, logger *slog.Logger) *Manager {
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	if cfg.GroupWindow <= 0 {
		cfg.GroupWindow = DefaultGroupWindow
	}
	return &Manager{
		log:    log,
		clock:  clk,
		cfg:    cfg,
		logger: logger,
	}
}

// Record добавляет действие в историю и очищает стек redo.
// Если group не пуст и совпадает с группой последней записи, а с момента
// ее обновления прошло не больше GroupWindow, действие присоединяется к ней:
// Before остается от первого действия группы, After берется из нового.
func (m *Manager) Record(ids []string, before, after ViewContext, group string) {
	if len(ids) == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock.Now().UnixMilli()
	m.redo = nil

	if n := len(m.undo); n > 0 && group != "" {
		top := &m.undo[n-1]
		if top.Group == group && now-top.At <= m.cfg.GroupWindow.Milliseconds() {
			top.IDs = append(top.IDs, ids...)
			top.After = after
			top.At = now
			return
		}
	}

	m.undo = append(m.undo, Entry{
		IDs:    append([]string(nil), ids...),
		Before: before,
		After:  after,
		Group:  group,
		At:     now,
	})
	if len(m.undo) > m.cfg.MaxDepth {
		m.undo = append([]Entry(nil), m.undo[len(m.undo)-m.cfg.MaxDepth:]...)
	}
}

// Undo отменяет последнее действие и возвращает контекст до него.
// Журнал меняется вне блокировки истории: обработчики изменений журнала
// могут обращаться к Manager.
func (m *Manager) Undo(ctx context.Context) (ViewContext, error) {
	m.mu.Lock()
	n := len(m.undo)
	if n == 0 {
		m.mu.Unlock()
		return ViewContext{}, ErrNothingToUndo
	}
	entry := m.undo[n-1]
	m.undo = m.undo[:n-1]
	m.mu.Unlock()

	removed, err := m.log.RemoveByIDs(ctx, entry.IDs)
	if err != nil {
		m.mu.Lock()
		m.undo = append(m.undo, entry)
		m.mu.Unlock()
		return ViewContext{}, fmt.Errorf("failed to undo: %w", err)
	}

	entry.Removed = removed
	m.mu.Lock()
	m.redo = append(m.redo, entry)
	m.mu.Unlock()

	m.logger.Debug("undo", "events", len(removed), "group", entry.Group)
	return entry.Before, nil
}

// Redo повторяет последнее отмененное действие и возвращает контекст после него
func (m *Manager) Redo(ctx context.Context) (ViewContext, error) {
	m.mu.Lock()
	n := len(m.redo)
	if n == 0 {
		m.mu.Unlock()
		return ViewContext{}, ErrNothingToRedo
	}
	entry := m.redo[n-1]
	m.redo = m.redo[:n-1]
	m.mu.Unlock()

	if _, err := m.log.Reappend(ctx, entry.Removed); err != nil {
		m.mu.Lock()
		m.redo = append(m.redo, entry)
		m.mu.Unlock()
		return ViewContext{}, fmt.Errorf("failed to redo: %w", err)
	}

	entry.Removed = nil
	// redo не объединяется со следующим действием
	entry.At = 0
	m.mu.Lock()
	m.undo = append(m.undo, entry)
	m.mu.Unlock()

	m.logger.Debug("redo", "events", len(entry.IDs), "group", entry.Group)
	return entry.After, nil
}

// CanUndo сообщает, есть ли что отменять
func (m *Manager) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo) > 0
}

// CanRedo сообщает, есть ли что повторять
func (m *Manager) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.redo) > 0
}

// Clear сбрасывает обе истории
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = nil
	m.redo = nil
}

// RetainedIDs возвращает id событий, на которые ссылается стек undo.
// Сжатие журнала не должно затрагивать элементы этих событий.
func (m *Manager) RetainedIDs() map[string]bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make(map[string]bool)
	for _, e := range m.undo {
		for _, id := range e.IDs {
			out[id] = true
		}
	}
	return out
}

type snapshot struct {
	Undo []Entry `json:"undo"`
	Redo []Entry `json:"redo"`
}

// Snapshot сериализует обе истории
func (m *Manager) Snapshot() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := json.Marshal(snapshot{Undo: m.undo, Redo: m.redo})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal undo state: %w", err)
	}
	return data, nil
}

// Restore загружает истории из Snapshot. Пустые данные очищают историю.
func (m *Manager) Restore(data []byte) error {
	var s snapshot
	if len(data) > 0 {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal undo state: %w", err)
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = s.Undo
	m.redo = s.Redo
	if len(m.undo) > m.cfg.MaxDepth {
		m.undo = m.undo[len(m.undo)-m.cfg.MaxDepth:]
	}
	return nil
}
