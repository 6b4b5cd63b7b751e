package data

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/client/engine"
	"github.com/iudanet/listsync/internal/client/eventlog"
	"github.com/iudanet/listsync/internal/client/storage"
	"github.com/iudanet/listsync/internal/client/undo"
	"github.com/iudanet/listsync/internal/crdt"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/position"
	"github.com/iudanet/listsync/internal/testutil"
)

func newTestService(t *testing.T) (Service, *engine.Engine) {
	t.Helper()
	var saved []models.Event
	var history []byte

	events := &storage.EventStorageMock{
		LoadEventsFunc: func(ctx context.Context) ([]models.Event, error) {
			return saved, nil
		},
		SaveEventsFunc: func(ctx context.Context, ev []models.Event) error {
			saved = ev
			return nil
		},
	}
	meta := &storage.MetadataStorageMock{
		SaveUndoStateFunc: func(ctx context.Context, data []byte) error {
			history = data
			return nil
		},
		GetUndoStateFunc: func(ctx context.Context) ([]byte, error) {
			return history, nil
		},
	}

	logger := slog.New(slog.DiscardHandler)
	clk := testutil.NewFakeClock(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC))
	log := eventlog.New(events, logger)
	e := engine.New(log, undo.New(log, clk, undo.Config{}, logger), crdt.NewClock("c1", clk.Now), meta, logger)
	require.NoError(t, e.Load(context.Background()))

	return NewService(e), e
}

func texts(s Service) []string {
	var out []string
	for _, r := range s.List() {
		out = append(out, r.Item.Text)
	}
	return out
}

func depths(s Service) []int {
	var out []int
	for _, r := range s.List() {
		out = append(out, r.Depth)
	}
	return out
}

// sectionsFixture строит список: S1, a, S2, b
func sectionsFixture(t *testing.T, s Service) (s1, a, s2, b string) {
	t.Helper()
	ctx := context.Background()
	var err error
	s1, err = s.AddSection(ctx, "S1", 1, "")
	require.NoError(t, err)
	a, err = s.AddItem(ctx, "a", "")
	require.NoError(t, err)
	s2, err = s.AddSection(ctx, "S2", 1, "")
	require.NoError(t, err)
	b, err = s.AddItem(ctx, "b", "")
	require.NoError(t, err)
	require.Equal(t, []string{"S1", "a", "S2", "b"}, texts(s))
	return s1, a, s2, b
}

func TestService_AddItem(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)

	a, err := s.AddItem(ctx, "a", "")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "c", "")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "b", a)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, texts(s))

	rows := s.List()
	for i := 1; i < len(rows); i++ {
		assert.Less(t, rows[i-1].Item.Position, rows[i].Item.Position)
	}
	// каждое добавление это одно событие создания
	assert.Equal(t, 3, e.Log().Len())
}

func TestService_AddItemBeforeFirstKey(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)

	// другой клиент занял наименьший ключ "a" внутри секции
	section := models.Event{
		ID: "r1", ItemID: "S", Kind: models.EventItemCreated, Timestamp: 1, ClientID: "c2",
		Fields: []models.FieldValue{
			{Field: models.FieldText, Value: models.Text("S")},
			{Field: models.FieldType, Value: models.Text(string(models.ItemSection))},
			{Field: models.FieldLevel, Value: models.Number(1)},
			{Field: models.FieldPosition, Value: models.Text("m")},
		},
	}
	first := models.Event{
		ID: "r2", ItemID: "T", Kind: models.EventItemCreated, Timestamp: 2, ClientID: "c2",
		Fields: []models.FieldValue{
			{Field: models.FieldText, Value: models.Text("T")},
			{Field: models.FieldPosition, Value: models.Text("a")},
			{Field: models.FieldParentID, Value: models.Ref("S")},
		},
	}
	_, err := e.Remote().AppendRemote(ctx, []models.Event{section.WithSeq(1), first.WithSeq(2)})
	require.NoError(t, err)
	require.Equal(t, []string{"S", "T"}, texts(s))

	id, err := s.AddItem(ctx, "new", "S")
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "new", "T"}, texts(s))
	added, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "S", added.Parent())

	rows := s.List()
	for _, r := range rows {
		assert.True(t, position.Valid(r.Item.Position), "position %q of %s", r.Item.Position, r.Item.Text)
	}
	assert.Less(t, rows[1].Item.Position, rows[2].Item.Position)
}

func TestService_AddItemUnknownAnchor(t *testing.T) {
	s, _ := newTestService(t)
	_, err := s.AddItem(context.Background(), "x", "missing")
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestService_AddSectionAssignsParents(t *testing.T) {
	s, _ := newTestService(t)
	s1, a, s2, b := sectionsFixture(t, s)

	item, err := s.Get(a)
	require.NoError(t, err)
	assert.Equal(t, s1, item.Parent())

	item, err = s.Get(b)
	require.NoError(t, err)
	assert.Equal(t, s2, item.Parent())

	item, err = s.Get(s2)
	require.NoError(t, err)
	assert.True(t, item.IsSection())
	assert.Equal(t, "", item.Parent())
	assert.Equal(t, []int{0, 1, 0, 1}, depths(s))

	_, err = s.AddSection(context.Background(), "bad", 3, "")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestService_MoveTaskIntoSection(t *testing.T) {
	s, _ := newTestService(t)
	_, a, s2, _ := sectionsFixture(t, s)

	// без самого элемента список S1, S2, b; индекс 3 это конец
	require.NoError(t, s.Move(context.Background(), a, 3))

	assert.Equal(t, []string{"S1", "S2", "b", "a"}, texts(s))
	item, _ := s.Get(a)
	assert.Equal(t, s2, item.Parent())
}

func TestService_MoveSectionCarriesChildren(t *testing.T) {
	s, _ := newTestService(t)
	_, _, s2, b := sectionsFixture(t, s)

	require.NoError(t, s.Move(context.Background(), s2, 0))

	assert.Equal(t, []string{"S2", "b", "S1", "a"}, texts(s))
	item, _ := s.Get(b)
	assert.Equal(t, s2, item.Parent())
}

func TestService_MoveIsOneUndoStep(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)
	_, a, _, _ := sectionsFixture(t, s)

	require.NoError(t, s.Move(ctx, a, 3))
	_, err := e.Undo(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "a", "S2", "b"}, texts(s))
}

func TestService_MoveUnknown(t *testing.T) {
	s, _ := newTestService(t)
	assert.ErrorIs(t, s.Move(context.Background(), "missing", 0), ErrItemNotFound)
}

func TestService_IndentTask(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	id, err := s.AddItem(ctx, "a", "")
	require.NoError(t, err)

	require.NoError(t, s.Indent(ctx, id))
	item, _ := s.Get(id)
	assert.True(t, item.Indented)

	require.NoError(t, s.Outdent(ctx, id))
	item, _ = s.Get(id)
	assert.False(t, item.Indented)
}

func TestService_IndentSectionNests(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	s1, _, s2, b := sectionsFixture(t, s)

	require.NoError(t, s.Indent(ctx, s2))

	item, _ := s.Get(s2)
	assert.Equal(t, int64(2), item.SectionLevel())
	assert.Equal(t, s1, item.Parent())
	item, _ = s.Get(b)
	assert.Equal(t, s2, item.Parent())
	assert.Equal(t, []string{"S1", "a", "S2", "b"}, texts(s))
	assert.Equal(t, []int{0, 1, 1, 2}, depths(s))

	require.NoError(t, s.Outdent(ctx, s2))
	item, _ = s.Get(s2)
	assert.Equal(t, int64(1), item.SectionLevel())
	assert.Equal(t, "", item.Parent())
	assert.Equal(t, []int{0, 1, 0, 1}, depths(s))
}

func TestService_SetLevel(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	_, a, s2, _ := sectionsFixture(t, s)

	assert.ErrorIs(t, s.SetLevel(ctx, a, 2), ErrNotSection)
	assert.ErrorIs(t, s.SetLevel(ctx, s2, 0), ErrInvalidLevel)
	// тот же уровень ничего не меняет
	assert.NoError(t, s.SetLevel(ctx, s2, 1))
}

func TestService_Split(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	s1, err := s.AddSection(ctx, "S1", 1, "")
	require.NoError(t, err)
	id, err := s.AddItem(ctx, "привет мир", "")
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "last", "")
	require.NoError(t, err)

	tail, err := s.Split(ctx, id, 6)
	require.NoError(t, err)

	assert.Equal(t, []string{"S1", "привет", " мир", "last"}, texts(s))
	item, _ := s.Get(tail)
	assert.Equal(t, s1, item.Parent())
	assert.Equal(t, models.ItemTask, item.Type)

	_, err = s.Split(ctx, id, 100)
	assert.ErrorIs(t, err, ErrInvalidSplit)
}

func TestService_DeleteSectionReparentsChildren(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)
	s1, _, s2, b := sectionsFixture(t, s)

	require.NoError(t, s.Delete(ctx, s2))

	assert.Equal(t, []string{"S1", "a", "b"}, texts(s))
	item, _ := s.Get(b)
	assert.Equal(t, s1, item.Parent())
	_, err := s.Get(s2)
	assert.ErrorIs(t, err, ErrItemNotFound)

	_, err = e.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"S1", "a", "S2", "b"}, texts(s))
}

func TestService_SetCompleted(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	id, err := s.AddItem(ctx, "a", "")
	require.NoError(t, err)

	require.NoError(t, s.SetCompleted(ctx, id, true))
	item, _ := s.Get(id)
	assert.True(t, item.Completed)
	require.NotNil(t, item.CompletedAt)

	require.NoError(t, s.SetCompleted(ctx, id, false))
	item, _ = s.Get(id)
	assert.False(t, item.Completed)
	assert.Nil(t, item.CompletedAt)
}

func TestService_SetImportantNoop(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)
	id, err := s.AddItem(ctx, "a", "")
	require.NoError(t, err)

	require.NoError(t, s.SetImportant(ctx, id, false))
	assert.Equal(t, 1, e.Log().Len())

	require.NoError(t, s.SetImportant(ctx, id, true))
	item, _ := s.Get(id)
	assert.True(t, item.Important)
}

func TestService_SetArchivedSection(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService(t)
	s1, _, s2, b := sectionsFixture(t, s)

	require.NoError(t, s.SetArchived(ctx, s2, true))

	item, _ := s.Get(s2)
	assert.True(t, item.Archived)
	assert.NotNil(t, item.ArchivedAt)
	item, _ = s.Get(b)
	assert.Equal(t, s1, item.Parent())
}

func TestService_SetTextGroupsTyping(t *testing.T) {
	ctx := context.Background()
	s, e := newTestService(t)
	id, err := s.AddItem(ctx, "", "")
	require.NoError(t, err)

	require.NoError(t, s.SetText(ctx, id, "m"))
	require.NoError(t, s.SetText(ctx, id, "mi"))
	require.NoError(t, s.SetText(ctx, id, "milk"))

	view, err := e.Undo(ctx)
	require.NoError(t, err)
	assert.Equal(t, undo.ViewContext{FocusID: id, Caret: 0}, view)

	item, err := s.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "", item.Text)
}
