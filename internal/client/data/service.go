package data

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/iudanet/listsync/internal/client/engine"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/hierarchy"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/position"
	"github.com/iudanet/listsync/internal/projection"
)

var (
	ErrItemNotFound = errors.New("item not found")
	ErrNotSection   = errors.New("item is not a section")
	ErrInvalidLevel = errors.New("section level must be 1 or 2")
	ErrInvalidSplit = errors.New("split offset is out of range")
)

//go:generate moq -out service_mock.go . Service

// Service определяет действия пользователя над списком
type Service interface {
	// List возвращает элементы в порядке отображения
	List() []projection.Row
	// Get возвращает элемент по id
	Get(id string) (models.Item, error)

	AddItem(ctx context.Context, text, afterID string) (string, error)
	AddSection(ctx context.Context, text string, level int64, afterID string) (string, error)
	SetText(ctx context.Context, id, text string) error
	SetImportant(ctx context.Context, id string, important bool) error
	SetCompleted(ctx context.Context, id string, completed bool) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Delete(ctx context.Context, id string) error

	// Move переносит элемент (секцию вместе с содержимым) на индекс
	// в порядке отображения без самого переносимого блока
	Move(ctx context.Context, id string, toIndex int) error
	Indent(ctx context.Context, id string) error
	Outdent(ctx context.Context, id string) error
	SetLevel(ctx context.Context, id string, level int64) error
	// Split делит текст элемента по смещению в символах; вторая часть
	// становится новым элементом сразу после исходного
	Split(ctx context.Context, id string, offset int) (string, error)
}

// Engine часть движка, нужная действиям над списком
type Engine interface {
	Outline() []projection.Row
	Item(id string) (models.Item, bool)
	Commit(ctx context.Context, events []models.Event, action engine.Action) ([]models.Event, error)
	Created(itemID string, fields ...models.FieldValue) models.Event
	Changed(itemID string, field models.Field, value models.Value) models.Event
	Deleted(itemID string) models.Event
	Now() int64
}

// service handles client-side list operations
type service struct {
	engine Engine
}

// NewService creates a new data service
func NewService(e Engine) Service {
	return &service{engine: e}
}

func (s *service) List() []projection.Row {
	return s.engine.Outline()
}

func (s *service) Get(id string) (models.Item, error) {
	it, ok := s.engine.Item(id)
	if !ok {
		return models.Item{}, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return it, nil
}

// AddItem добавляет задачу после afterID (пусто: в конец списка)
func (s *service) AddItem(ctx context.Context, text, afterID string) (string, error) {
	it := models.NewItem(uuid.NewString())
	it.Text = text
	return s.insert(ctx, it, afterID)
}

// AddSection добавляет секцию заданного уровня после afterID
func (s *service) AddSection(ctx context.Context, text string, level int64, afterID string) (string, error) {
	if level != 1 && level != 2 {
		return "", ErrInvalidLevel
	}
	it := models.NewItem(uuid.NewString())
	it.Text = text
	it.Type = models.ItemSection
	it.Level = level
	return s.insert(ctx, it, afterID)
}

func (s *service) SetText(ctx context.Context, id, text string) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	if it.Text == text {
		return nil
	}
	view := undo.ViewContext{FocusID: id, Caret: utf8.RuneCountInString(text)}
	_, err = s.engine.Commit(ctx,
		[]models.Event{s.engine.Changed(id, models.FieldText, models.Text(text))},
		engine.Action{
			Before: undo.ViewContext{FocusID: id, Caret: utf8.RuneCountInString(it.Text)},
			After:  view,
			Group:  "text:" + id,
		})
	return err
}

func (s *service) SetImportant(ctx context.Context, id string, important bool) error {
	return s.setFlag(ctx, id, models.FieldImportant, important, "", false)
}

// SetCompleted отмечает выполнение и проставляет completedAt
func (s *service) SetCompleted(ctx context.Context, id string, completed bool) error {
	return s.setFlag(ctx, id, models.FieldCompleted, completed, models.FieldCompletedAt, false)
}

// SetArchived архивирует элемент. Архивные элементы не участвуют в
// иерархии, поэтому соседи пересчитываются тем же пакетом.
func (s *service) SetArchived(ctx context.Context, id string, archived bool) error {
	return s.setFlag(ctx, id, models.FieldArchived, archived, models.FieldArchivedAt, true)
}

// Delete удаляет элемент; содержимое удаленной секции переходит
// к предыдущей секции
func (s *service) Delete(ctx context.Context, id string) error {
	order, idx, err := s.locate(id)
	if err != nil {
		return err
	}

	rest := make([]models.Item, 0, len(order)-1)
	rest = append(rest, order[:idx]...)
	rest = append(rest, order[idx+1:]...)

	events := []models.Event{s.engine.Deleted(id)}
	events = append(events, s.reconcile(order, rest, nil)...)

	_, err = s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: id},
		After:  undo.ViewContext{FocusID: neighbour(rest, idx)},
	})
	return err
}

func (s *service) Move(ctx context.Context, id string, toIndex int) error {
	rows := s.engine.Outline()
	order := projection.Items(rows)
	idx := indexOf(order, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}

	end := blockEnd(rows, idx)
	block := cloneItems(order[idx:end])
	rest := make([]models.Item, 0, len(order)-len(block))
	rest = append(rest, order[:idx]...)
	rest = append(rest, order[end:]...)

	at := min(max(toIndex, 0), len(rest))
	list, changes := layout(rest, at, block)
	events := s.diff(order, hierarchy.Apply(list, changes), "")
	if len(events) == 0 {
		return nil
	}

	_, err := s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: id},
		After:  undo.ViewContext{FocusID: id},
	})
	return err
}

// Indent сдвигает задачу вправо, секцию делает секцией второго уровня
func (s *service) Indent(ctx context.Context, id string) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	if it.IsSection() {
		return s.SetLevel(ctx, id, 2)
	}
	return s.setFlag(ctx, id, models.FieldIndented, true, "", false)
}

// Outdent обратное Indent
func (s *service) Outdent(ctx context.Context, id string) error {
	it, err := s.Get(id)
	if err != nil {
		return err
	}
	if it.IsSection() {
		return s.SetLevel(ctx, id, 1)
	}
	return s.setFlag(ctx, id, models.FieldIndented, false, "", false)
}

// SetLevel меняет уровень секции и пересчитывает принадлежность
// следующих за ней элементов
func (s *service) SetLevel(ctx context.Context, id string, level int64) error {
	if level != 1 && level != 2 {
		return ErrInvalidLevel
	}
	order, idx, err := s.locate(id)
	if err != nil {
		return err
	}
	if !order[idx].IsSection() {
		return fmt.Errorf("%w: %s", ErrNotSection, id)
	}
	if order[idx].SectionLevel() == level {
		return nil
	}

	next := cloneItems(order)
	next[idx].Level = level
	events := s.reconcile(order, next, nil)

	_, err = s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: id},
		After:  undo.ViewContext{FocusID: id},
	})
	return err
}

func (s *service) Split(ctx context.Context, id string, offset int) (string, error) {
	order, idx, err := s.locate(id)
	if err != nil {
		return "", err
	}
	src := order[idx]
	runes := []rune(src.Text)
	if offset < 0 || offset > len(runes) {
		return "", fmt.Errorf("%w: %d", ErrInvalidSplit, offset)
	}

	head := cloneItems(order)
	head[idx].Text = string(runes[:offset])

	tail := models.NewItem(uuid.NewString())
	tail.Text = string(runes[offset:])
	tail.Type = src.Type
	tail.Level = src.Level
	tail.Indented = src.Indented

	list, changes := layout(head, idx+1, []models.Item{tail})
	events := s.diff(order, hierarchy.Apply(list, changes), tail.ID)

	_, err = s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: id, Caret: offset},
		After:  undo.ViewContext{FocusID: tail.ID},
	})
	if err != nil {
		return "", err
	}
	return tail.ID, nil
}

// insert добавляет новый элемент после afterID, подбирая позицию
// и родителя по порядку отображения
func (s *service) insert(ctx context.Context, it models.Item, afterID string) (string, error) {
	order := projection.Items(s.engine.Outline())

	at := len(order)
	if afterID != "" {
		idx := indexOf(order, afterID)
		if idx < 0 {
			return "", fmt.Errorf("%w: %s", ErrItemNotFound, afterID)
		}
		at = idx + 1
	}

	list, changes := layout(order, at, []models.Item{it})
	events := s.diff(order, hierarchy.Apply(list, changes), it.ID)

	_, err := s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: afterID},
		After:  undo.ViewContext{FocusID: it.ID},
	})
	if err != nil {
		return "", err
	}
	return it.ID, nil
}

// setFlag меняет булево поле; stampField получает текущее время или null,
// structure включает пересчет иерархии
func (s *service) setFlag(ctx context.Context, id string, field models.Field, value bool, stampField models.Field, structure bool) error {
	order, idx, err := s.locate(id)
	if err != nil {
		return err
	}
	cur, _ := order[idx].FieldValue(field)
	if cur.AsBool() == value {
		return nil
	}

	events := []models.Event{s.engine.Changed(id, field, models.Bool(value))}
	if stampField != "" {
		stamp := models.NullTimestamp()
		if value {
			stamp = models.Timestamp(s.engine.Now())
		}
		events = append(events, s.engine.Changed(id, stampField, stamp))
	}
	if structure {
		next := cloneItems(order)
		next[idx].SetField(field, models.Bool(value))
		events = append(events, s.reconcile(order, next, map[string]bool{id: true})...)
	}

	_, err = s.engine.Commit(ctx, events, engine.Action{
		Before: undo.ViewContext{FocusID: id},
		After:  undo.ViewContext{FocusID: id},
	})
	return err
}

func (s *service) locate(id string) ([]models.Item, int, error) {
	order := projection.Items(s.engine.Outline())
	idx := indexOf(order, id)
	if idx < 0 {
		return nil, -1, fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return order, idx, nil
}

// reconcile возвращает события исправления иерархии для next.
// Поля элементов из skip уже изменены вызывающим кодом.
func (s *service) reconcile(before, next []models.Item, skip map[string]bool) []models.Event {
	fixed := hierarchy.Apply(next, hierarchy.SyncHierarchyFromLinearOrder(next))
	prev := make(map[string]models.Item, len(before))
	for _, it := range before {
		prev[it.ID] = it
	}
	var events []models.Event
	for i := range fixed {
		old, ok := prev[fixed[i].ID]
		if !ok {
			continue
		}
		for _, f := range models.Fields() {
			if skip[fixed[i].ID] && (f == models.FieldArchived || f == models.FieldArchivedAt) {
				continue
			}
			nv, _ := fixed[i].FieldValue(f)
			ov, _ := old.FieldValue(f)
			if !nv.Equal(ov) {
				events = append(events, s.engine.Changed(fixed[i].ID, f, nv))
			}
		}
	}
	return events
}

// diff строит события, переводящие before в after. Элемент created
// создается одним событием со всеми заданными полями.
func (s *service) diff(before, after []models.Item, created string) []models.Event {
	var events []models.Event
	for i := range after {
		if after[i].ID == created {
			events = append(events, s.engine.Created(created, initialFields(&after[i])...))
			break
		}
	}
	events = append(events, s.reconcile(before, after, nil)...)
	return events
}

// layout вставляет блок на индекс at, подбирает голове блока позицию
// между соседями по новому родителю и возвращает список вместе с
// исправлениями иерархии
func layout(order []models.Item, at int, block []models.Item) ([]models.Item, []hierarchy.Change) {
	list := make([]models.Item, 0, len(order)+len(block))
	list = append(list, order[:at]...)
	list = append(list, block...)
	list = append(list, order[at:]...)

	parents := hierarchy.Apply(list, hierarchy.RebuildParentIDs(list))
	parent := parents[at].Parent()

	var prev, next string
	for i := at - 1; i >= 0; i-- {
		if !parents[i].Archived && parents[i].Parent() == parent {
			prev = parents[i].Position
			break
		}
	}
	for i := at + len(block); i < len(parents); i++ {
		if !parents[i].Archived && parents[i].Parent() == parent {
			next = parents[i].Position
			break
		}
	}

	if pos, err := position.Between(prev, next); err == nil {
		list[at].Position = pos
	} else {
		// соседи не упорядочены или между ними нет ключа
		respace(list, parents, parent)
	}

	return list, hierarchy.SyncHierarchyFromLinearOrder(list)
}

// respace раздает группе parent новые позиции в порядке списка
func respace(list, parents []models.Item, parent string) {
	var group []int
	for i := range parents {
		if parents[i].Parent() == parent {
			group = append(group, i)
		}
	}
	for k, key := range position.Initial(len(group)) {
		list[group[k]].Position = key
	}
}

// blockEnd возвращает конец блока элемента idx: секция вместе со всеми
// строками глубже нее
func blockEnd(rows []projection.Row, idx int) int {
	end := idx + 1
	if !rows[idx].Item.IsSection() {
		return end
	}
	for end < len(rows) && rows[end].Depth > rows[idx].Depth {
		end++
	}
	return end
}

func initialFields(it *models.Item) []models.FieldValue {
	blank := models.NewItem(it.ID)
	var fields []models.FieldValue
	for _, f := range models.Fields() {
		if f == models.FieldCreatedAt {
			continue
		}
		v, _ := it.FieldValue(f)
		def, _ := blank.FieldValue(f)
		if !v.Equal(def) {
			fields = append(fields, models.FieldValue{Field: f, Value: v})
		}
	}
	return fields
}

func indexOf(items []models.Item, id string) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

func neighbour(items []models.Item, idx int) string {
	switch {
	case len(items) == 0:
		return ""
	case idx < len(items):
		return items[idx].ID
	default:
		return items[len(items)-1].ID
	}
}

func cloneItems(items []models.Item) []models.Item {
	out := make([]models.Item, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}
