// Package eventlog хранит локальный журнал событий клиента.
//
// Журнал только дополняется, кроме undo (удаление по id) и redo
// (повторное добавление тех же событий). Все операции идемпотентны по id
// события. Каждая мутация сохраняет журнал целиком через
// storage.EventStorage; при ошибке сохранения состояние в памяти не меняется.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/listsync/internal/client/storage"
	"github.com/iudanet/listsync/internal/models"
)

// Log журнал событий одного клиента
type Log struct {
	store     storage.EventStorage
	logger    *slog.Logger
	index     map[string]int // id события -> индекс в events
	events    []models.Event
	listeners []func()
	mu        sync.Mutex
}

// New создает пустой журнал поверх хранилища
func New(store storage.EventStorage, logger *slog.Logger) *Log {
	return &Log{
		store:  store,
		logger: logger,
		index:  make(map[string]int),
	}
}

// Load загружает журнал из хранилища, заменяя содержимое в памяти.
// Дубликаты по id отбрасываются.
func (l *Log) Load(ctx context.Context) error {
	events, err := l.store.LoadEvents(ctx)
	if err != nil {
		return fmt.Errorf("failed to load event log: %w", err)
	}

	l.mu.Lock()
	l.events = make([]models.Event, 0, len(events))
	l.index = make(map[string]int, len(events))
	for _, e := range events {
		if e.ID == "" {
			continue
		}
		if _, dup := l.index[e.ID]; dup {
			continue
		}
		l.index[e.ID] = len(l.events)
		l.events = append(l.events, e)
	}
	count := len(l.events)
	l.mu.Unlock()

	l.logger.Debug("event log loaded", "events", count)
	l.notify()
	return nil
}

// OnChange регистрирует обработчик, вызываемый после каждой мутации журнала
func (l *Log) OnChange(fn func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.listeners = append(l.listeners, fn)
}

// Append добавляет локальные события. События с уже известным id
// пропускаются. Возвращает фактически добавленные события.
func (l *Log) Append(ctx context.Context, events ...models.Event) ([]models.Event, error) {
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return nil, fmt.Errorf("invalid event %q: %w", events[i].ID, err)
		}
	}
	return l.appendNew(ctx, events)
}

// Reappend возвращает ранее удаленные события (redo) без изменений,
// включая их исходный seq.
func (l *Log) Reappend(ctx context.Context, events []models.Event) ([]models.Event, error) {
	return l.appendNew(ctx, events)
}

// AppendRemote добавляет события, полученные с сервера. Seq сохраняется;
// если событие уже есть локально без seq, ему проставляется seq.
// Возвращает события, которых раньше не было.
func (l *Log) AppendRemote(ctx context.Context, events []models.Event) ([]models.Event, error) {
	l.mu.Lock()

	next := l.events
	copied := false
	cow := func() {
		if !copied {
			next = cloneEvents(l.events)
			copied = true
		}
	}

	index := l.index
	var added []models.Event
	var newIndex map[string]int
	for _, e := range events {
		if e.ID == "" {
			continue
		}
		if i, ok := index[e.ID]; ok {
			if next[i].Seq == nil && e.Seq != nil {
				cow()
				seq := *e.Seq
				next[i].Seq = &seq
			}
			continue
		}
		cow()
		if newIndex == nil {
			newIndex = copyIndex(l.index)
			index = newIndex
		}
		index[e.ID] = len(next)
		c := e.Clone()
		next = append(next, c)
		added = append(added, c)
	}

	if !copied {
		l.mu.Unlock()
		return nil, nil
	}

	if err := l.commitLocked(ctx, next, index); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	l.mu.Unlock()

	l.notify()
	return added, nil
}

// RemoveByIDs удаляет события по id (undo). Отсутствующие id игнорируются.
// Возвращает удаленные события в порядке журнала.
func (l *Log) RemoveByIDs(ctx context.Context, ids []string) ([]models.Event, error) {
	l.mu.Lock()

	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := l.index[id]; ok {
			drop[id] = true
		}
	}
	if len(drop) == 0 {
		l.mu.Unlock()
		return nil, nil
	}

	next := make([]models.Event, 0, len(l.events)-len(drop))
	removed := make([]models.Event, 0, len(drop))
	for i := range l.events {
		if drop[l.events[i].ID] {
			removed = append(removed, l.events[i].Clone())
			continue
		}
		next = append(next, l.events[i])
	}

	if err := l.commitLocked(ctx, next, buildIndex(next)); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	l.mu.Unlock()

	l.notify()
	return removed, nil
}

// Unpushed возвращает события без seq в порядке журнала
func (l *Log) Unpushed() []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []models.Event
	for i := range l.events {
		if !l.events[i].Pushed() {
			out = append(out, l.events[i].Clone())
		}
	}
	return out
}

// HasUnpushed сообщает, что в журнале есть неотправленные события
func (l *Log) HasUnpushed() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.events {
		if !l.events[i].Pushed() {
			return true
		}
	}
	return false
}

// MarkPushed проставляет seq событиям, подтвержденным сервером.
// Неизвестные id и события, у которых seq уже есть, пропускаются.
func (l *Log) MarkPushed(ctx context.Context, acks map[string]int64) error {
	l.mu.Lock()

	var next []models.Event
	for id, seq := range acks {
		i, ok := l.index[id]
		if !ok || l.events[i].Seq != nil {
			continue
		}
		if next == nil {
			next = cloneEvents(l.events)
		}
		s := seq
		next[i].Seq = &s
	}

	if next == nil {
		l.mu.Unlock()
		return nil
	}

	if err := l.commitLocked(ctx, next, l.index); err != nil {
		l.mu.Unlock()
		return err
	}
	l.mu.Unlock()

	l.notify()
	return nil
}

// Events возвращает копию журнала в порядке добавления
func (l *Log) Events() []models.Event {
	l.mu.Lock()
	defer l.mu.Unlock()

	return cloneEvents(l.events)
}

// Contains проверяет наличие события с id
func (l *Log) Contains(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	_, ok := l.index[id]
	return ok
}

// Len возвращает количество событий
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.events)
}

func (l *Log) appendNew(ctx context.Context, events []models.Event) ([]models.Event, error) {
	l.mu.Lock()

	var next []models.Event
	var index map[string]int
	var added []models.Event
	for _, e := range events {
		if _, ok := l.index[e.ID]; ok {
			continue
		}
		if index == nil {
			index = copyIndex(l.index)
			next = make([]models.Event, len(l.events), len(l.events)+len(events))
			copy(next, l.events)
		}
		if _, ok := index[e.ID]; ok {
			// дубликат внутри одного пакета
			continue
		}
		index[e.ID] = len(next)
		c := e.Clone()
		next = append(next, c)
		added = append(added, c)
	}

	if len(added) == 0 {
		l.mu.Unlock()
		return nil, nil
	}

	if err := l.commitLocked(ctx, next, index); err != nil {
		l.mu.Unlock()
		return nil, err
	}
	l.mu.Unlock()

	l.notify()
	return added, nil
}

// commitLocked сохраняет новое состояние и только после успеха
// подменяет его в памяти. Вызывается под l.mu.
func (l *Log) commitLocked(ctx context.Context, next []models.Event, index map[string]int) error {
	if err := l.store.SaveEvents(ctx, next); err != nil {
		l.logger.Error("failed to persist event log", "error", err, "events", len(next))
		return fmt.Errorf("failed to persist event log: %w", err)
	}
	l.events = next
	l.index = index
	return nil
}

func (l *Log) notify() {
	l.mu.Lock()
	listeners := make([]func(), len(l.listeners))
	copy(listeners, l.listeners)
	l.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

func cloneEvents(events []models.Event) []models.Event {
	out := make([]models.Event, len(events))
	for i := range events {
		out[i] = events[i].Clone()
	}
	return out
}

func copyIndex(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

func buildIndex(events []models.Event) map[string]int {
	idx := make(map[string]int, len(events))
	for i := range events {
		idx[events[i].ID] = i
	}
	return idx
}
