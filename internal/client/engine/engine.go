// Package engine связывает журнал событий, проекцию, историю undo и
// синхронизацию одного клиента в явный экземпляр без глобального состояния.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/iudanet/listsync/internal/client/eventlog"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/crdt"
	"github.com/iudanet/listsync/internal/hierarchy"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/projection"
)

// ErrSuppressed правка отброшена: идет перерисовка после undo/redo
var ErrSuppressed = errors.New("commit suppressed while undo/redo settles")

// Syncer планирует синхронизацию после локальной правки
type Syncer interface {
	RequestSync()
}

// HistoryStore хранение сериализованной истории undo
type HistoryStore interface {
	SaveUndoState(ctx context.Context, data []byte) error
	GetUndoState(ctx context.Context) ([]byte, error)
}

// Action описывает пользовательское действие для истории
type Action struct {
	Before undo.ViewContext
	After  undo.ViewContext
	Group  string // ключ объединения быстрых повторов, например "text:<id>"
	NoUndo bool   // служебная правка, не попадает в историю
}

// Engine экземпляр движка одного клиента
type Engine struct {
	log     *eventlog.Log
	history *undo.Manager
	clock   *crdt.Clock
	store   HistoryStore
	syncer  Syncer
	logger  *slog.Logger

	items     []models.Item
	rows      []projection.Row
	renderers []func()
	suppress  int // >0, пока выполняются обработчики перерисовки undo/redo
	valid     bool
	mu        sync.Mutex
}

// New создает движок и подписывает его на изменения журнала
func New(log *eventlog.Log, history *undo.Manager, clock *crdt.Clock, store HistoryStore, logger *slog.Logger) *Engine {
	e := &Engine{
		log:     log,
		history: history,
		clock:   clock,
		store:   store,
		logger:  logger,
	}
	log.OnChange(e.render)
	return e
}

// SetSyncer подключает синхронизацию; nil отключает
func (e *Engine) SetSyncer(s Syncer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncer = s
}

// Load загружает журнал и историю undo из хранилища
func (e *Engine) Load(ctx context.Context) error {
	if err := e.log.Load(ctx); err != nil {
		return err
	}
	for _, ev := range e.log.Events() {
		e.clock.Update(ev.Timestamp)
	}

	data, err := e.store.GetUndoState(ctx)
	if err != nil {
		e.logger.Warn("Failed to load undo history", "error", err)
		return nil
	}
	if err := e.history.Restore(data); err != nil {
		// повреждённая история не мешает работе со списком
		e.logger.Warn("Discarding undo history", "error", err)
		e.history.Clear()
	}
	return nil
}

// OnRender регистрирует обработчик, вызываемый после каждого изменения
// журнала (локального, удаленного, undo/redo)
func (e *Engine) OnRender(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.renderers = append(e.renderers, fn)
}

// Commit добавляет события одним атомарным пакетом, записывает действие
// в историю и планирует синхронизацию
func (e *Engine) Commit(ctx context.Context, events []models.Event, action Action) ([]models.Event, error) {
	if len(events) == 0 {
		return nil, nil
	}

	e.mu.Lock()
	suppressed := e.suppress > 0
	syncer := e.syncer
	e.mu.Unlock()
	if suppressed {
		e.logger.Debug("Commit suppressed", "events", len(events))
		return nil, ErrSuppressed
	}

	added, err := e.log.Append(ctx, events...)
	if err != nil {
		return nil, fmt.Errorf("failed to commit events: %w", err)
	}
	if len(added) == 0 {
		return nil, nil
	}

	if !action.NoUndo {
		e.history.Record(models.IDs(added), action.Before, action.After, action.Group)
		e.saveHistory(ctx)
	}
	if syncer != nil {
		syncer.RequestSync()
	}
	return added, nil
}

// Undo отменяет последнее действие. Правки, порожденные перерисовкой во
// время отмены, отбрасываются.
func (e *Engine) Undo(ctx context.Context) (undo.ViewContext, error) {
	e.beginSettle()
	defer e.endSettle()

	view, err := e.history.Undo(ctx)
	if err != nil {
		return view, err
	}
	e.saveHistory(ctx)
	return view, nil
}

// Redo повторяет последнее отмененное действие
func (e *Engine) Redo(ctx context.Context) (undo.ViewContext, error) {
	e.beginSettle()
	defer e.endSettle()

	view, err := e.history.Redo(ctx)
	if err != nil {
		return view, err
	}
	e.saveHistory(ctx)

	e.mu.Lock()
	syncer := e.syncer
	e.mu.Unlock()
	if syncer != nil {
		// повторенные события могли быть еще не отправлены
		syncer.RequestSync()
	}
	return view, nil
}

// CanUndo сообщает, есть ли что отменять
func (e *Engine) CanUndo() bool {
	return e.history.CanUndo()
}

// CanRedo сообщает, есть ли что повторять
func (e *Engine) CanRedo() bool {
	return e.history.CanRedo()
}

// Items возвращает видимые элементы, упорядоченные по позиции
func (e *Engine) Items() []models.Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refreshLocked()
	return cloneItems(e.items)
}

// Outline возвращает элементы в порядке отображения с глубиной
func (e *Engine) Outline() []projection.Row {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refreshLocked()

	out := make([]projection.Row, len(e.rows))
	for i, r := range e.rows {
		out[i] = projection.Row{Item: r.Item.Clone(), Depth: r.Depth}
	}
	return out
}

// Item возвращает элемент по id
func (e *Engine) Item(id string) (models.Item, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.refreshLocked()

	for i := range e.items {
		if e.items[i].ID == id {
			return e.items[i].Clone(), true
		}
	}
	return models.Item{}, false
}

// ClientID возвращает идентификатор клиента
func (e *Engine) ClientID() string {
	return e.clock.ClientID()
}

// Log возвращает журнал событий
func (e *Engine) Log() *eventlog.Log {
	return e.log
}

// Created строит событие создания элемента с начальными полями
func (e *Engine) Created(itemID string, fields ...models.FieldValue) models.Event {
	ev := e.newEvent(itemID, models.EventItemCreated)
	if len(fields) > 0 {
		ev.Fields = append([]models.FieldValue(nil), fields...)
	}
	return ev
}

// Changed строит событие изменения одного поля
func (e *Engine) Changed(itemID string, field models.Field, value models.Value) models.Event {
	ev := e.newEvent(itemID, models.EventFieldChanged)
	ev.Field = field
	ev.Value = value
	return ev
}

// Deleted строит событие удаления элемента
func (e *Engine) Deleted(itemID string) models.Event {
	return e.newEvent(itemID, models.EventItemDeleted)
}

// Corrections превращает diff реконсилятора в события
func (e *Engine) Corrections(changes []hierarchy.Change) []models.Event {
	events := make([]models.Event, 0, len(changes))
	for _, c := range changes {
		events = append(events, e.Changed(c.ItemID, c.Field, c.Value))
	}
	return events
}

// Now возвращает текущую метку часов клиента (unix ms)
func (e *Engine) Now() int64 {
	return e.clock.Tick()
}

func (e *Engine) newEvent(itemID string, kind models.EventKind) models.Event {
	return models.Event{
		ID:        uuid.NewString(),
		ItemID:    itemID,
		Kind:      kind,
		Timestamp: e.clock.Tick(),
		ClientID:  e.clock.ClientID(),
	}
}

func (e *Engine) render() {
	e.mu.Lock()
	e.valid = false
	renderers := make([]func(), len(e.renderers))
	copy(renderers, e.renderers)
	e.mu.Unlock()

	for _, fn := range renderers {
		fn()
	}
}

func (e *Engine) refreshLocked() {
	if e.valid {
		return
	}
	e.items = projection.Project(e.log.Events())
	e.rows = projection.Outline(e.items)
	e.valid = true
}

func (e *Engine) beginSettle() {
	e.mu.Lock()
	e.suppress++
	e.mu.Unlock()
}

func (e *Engine) endSettle() {
	e.mu.Lock()
	e.suppress--
	e.mu.Unlock()
}

func (e *Engine) saveHistory(ctx context.Context) {
	data, err := e.history.Snapshot()
	if err != nil {
		e.logger.Warn("Failed to snapshot undo history", "error", err)
		return
	}
	if err := e.store.SaveUndoState(ctx, data); err != nil {
		e.logger.Warn("Failed to save undo history", "error", err)
	}
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
