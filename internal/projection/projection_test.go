package projection

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/listsync/internal/models"
)

var seq int

func nextID() string {
	seq++
	return fmt.Sprintf("e%04d", seq)
}

func created(item string, ts int64, client string, fields ...models.FieldValue) models.Event {
	return models.Event{
		ID:        nextID(),
		ItemID:    item,
		Kind:      models.EventItemCreated,
		Fields:    fields,
		Timestamp: ts,
		ClientID:  client,
	}
}

func changed(item string, f models.Field, v models.Value, ts int64, client string) models.Event {
	return models.Event{
		ID:        nextID(),
		ItemID:    item,
		Kind:      models.EventFieldChanged,
		Field:     f,
		Value:     v,
		Timestamp: ts,
		ClientID:  client,
	}
}

func deletedEv(item string, ts int64, client string) models.Event {
	return models.Event{
		ID:        nextID(),
		ItemID:    item,
		Kind:      models.EventItemDeleted,
		Timestamp: ts,
		ClientID:  client,
	}
}

func fv(f models.Field, v models.Value) models.FieldValue {
	return models.FieldValue{Field: f, Value: v}
}

func TestProject_OutOfOrderTimestamp(t *testing.T) {
	events := []models.Event{
		created("X", 1, "c1"),
		changed("X", models.FieldText, models.Text("hi"), 2, "c1"),
		changed("X", models.FieldText, models.Text("bye"), 1, "c1"),
	}

	items := Project(events)

	require.Len(t, items, 1)
	assert.Equal(t, "hi", items[0].Text)
	assert.Equal(t, int64(2), items[0].Versions[models.FieldText].Timestamp)
}

func TestProject_CreationPayload(t *testing.T) {
	events := []models.Event{
		created("A", 100, "c1",
			fv(models.FieldText, models.Text("buy milk")),
			fv(models.FieldPosition, models.Text("n")),
			fv(models.FieldImportant, models.Bool(true)),
		),
	}

	items := Project(events)

	require.Len(t, items, 1)
	it := items[0]
	assert.Equal(t, "A", it.ID)
	assert.Equal(t, "buy milk", it.Text)
	assert.Equal(t, "n", it.Position)
	assert.True(t, it.Important)
	assert.Equal(t, models.ItemTask, it.Type)
	assert.Equal(t, int64(100), it.CreatedAt, "createdAt defaults to creation time")
	assert.Nil(t, it.ParentID)
}

func TestProject_TieBreakByClientThenEventID(t *testing.T) {
	a := changed("X", models.FieldText, models.Text("from-a"), 5, "client-a")
	b := changed("X", models.FieldText, models.Text("from-b"), 5, "client-b")

	items := Project([]models.Event{created("X", 1, "c"), b, a})
	require.Len(t, items, 1)
	assert.Equal(t, "from-b", items[0].Text)

	// одинаковый клиент: побеждает больший id события
	e1 := changed("Y", models.FieldText, models.Text("first"), 5, "c")
	e1.ID = "id-1"
	e2 := changed("Y", models.FieldText, models.Text("second"), 5, "c")
	e2.ID = "id-2"

	items = Project([]models.Event{created("Y", 1, "c"), e2, e1})
	require.Len(t, items, 1)
	assert.Equal(t, "second", items[0].Text)
}

func TestProject_OrderByPositionThenID(t *testing.T) {
	events := []models.Event{
		created("b", 1, "c", fv(models.FieldPosition, models.Text("m"))),
		created("a", 1, "c", fv(models.FieldPosition, models.Text("m"))),
		created("c", 1, "c", fv(models.FieldPosition, models.Text("d"))),
	}

	items := Project(events)

	require.Len(t, items, 3)
	assert.Equal(t, []string{"c", "a", "b"}, []string{items[0].ID, items[1].ID, items[2].ID})
}

func TestProject_TombstonePermanence(t *testing.T) {
	events := []models.Event{
		created("X", 1, "c1", fv(models.FieldText, models.Text("x"))),
		deletedEv("X", 2, "c1"),
		// поздние изменения не воскрешают элемент
		changed("X", models.FieldText, models.Text("zombie"), 100, "c2"),
		changed("X", models.FieldCompleted, models.Bool(true), 200, "c2"),
		created("Y", 1, "c1"),
	}

	res := ProjectWithStats(events)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "Y", res.Items[0].ID)
	assert.Equal(t, 1, res.Deleted)

	// даже повторное создание с тем же id не воскрешает
	events = append(events, created("X", 300, "c3"))
	items := Project(events)
	require.Len(t, items, 1)
	assert.Equal(t, "Y", items[0].ID)
}

func TestProject_FieldEventsBeforeCreation(t *testing.T) {
	change := changed("X", models.FieldText, models.Text("late"), 5, "c")

	// изменение без создания не видно
	assert.Empty(t, Project([]models.Event{change}))

	items := Project([]models.Event{change, created("X", 1, "c", fv(models.FieldText, models.Text("early")))})
	require.Len(t, items, 1)
	assert.Equal(t, "late", items[0].Text)
}

func TestProject_SkipsMalformed(t *testing.T) {
	events := []models.Event{
		created("X", 1, "c", fv(models.FieldText, models.Text("ok")), fv("color", models.Text("red"))),
		changed("X", "color", models.Text("blue"), 2, "c"),
		changed("X", models.FieldCompleted, models.Text("yes"), 3, "c"),
		changed("X", models.FieldType, models.Text("folder"), 3, "c"),
		{ID: "", ItemID: "X", Kind: models.EventFieldChanged, Field: models.FieldText, Value: models.Text("no id"), ClientID: "c"},
		{ID: "k1", ItemID: "X", Kind: "renamed", ClientID: "c"},
		changed("X", models.FieldImportant, models.Bool(true), 4, "c"),
	}

	res := ProjectWithStats(events)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "ok", res.Items[0].Text)
	assert.True(t, res.Items[0].Important)
	assert.False(t, res.Items[0].Completed)
	assert.Equal(t, models.ItemTask, res.Items[0].Type)
	assert.Equal(t, 6, res.Skipped)
}

func TestProject_UnknownFieldFromJSON(t *testing.T) {
	raw := `[
		{"id":"e1","itemId":"X","kind":"item_created","fields":[{"field":"text","value":"hi"}],"timestamp":1,"clientId":"c"},
		{"id":"e2","itemId":"X","kind":"field_changed","field":"mood","value":{"nested":true},"timestamp":2,"clientId":"c"},
		{"id":"e3","itemId":"X","kind":"field_changed","field":"level","value":"two","timestamp":3,"clientId":"c"},
		{"id":"e4","itemId":"X","kind":"field_changed","field":"parentId","value":null,"timestamp":4,"clientId":"c"}
	]`

	var events []models.Event
	require.NoError(t, json.Unmarshal([]byte(raw), &events))

	res := ProjectWithStats(events)

	require.Len(t, res.Items, 1)
	assert.Equal(t, "hi", res.Items[0].Text)
	assert.Nil(t, res.Items[0].ParentID)
	assert.Equal(t, 2, res.Skipped)

	// неизвестное значение переживает повторное кодирование
	data, err := json.Marshal(events[1])
	require.NoError(t, err)
	assert.Contains(t, string(data), `"value":{"nested":true}`)
}

func randomEventSet(rng *rand.Rand) []models.Event {
	ids := []string{"A", "B", "C", "D"}
	clients := []string{"c1", "c2", "c3"}
	var events []models.Event
	for _, id := range ids {
		events = append(events, created(id, int64(rng.IntN(5)), clients[rng.IntN(3)],
			fv(models.FieldPosition, models.Text(string(rune('b'+rng.IntN(5)))))))
	}
	for range 40 {
		id := ids[rng.IntN(len(ids))]
		ts := int64(rng.IntN(20))
		client := clients[rng.IntN(3)]
		switch rng.IntN(6) {
		case 0:
			events = append(events, changed(id, models.FieldText, models.Text(fmt.Sprintf("t%d", rng.IntN(100))), ts, client))
		case 1:
			events = append(events, changed(id, models.FieldCompleted, models.Bool(rng.IntN(2) == 0), ts, client))
		case 2:
			events = append(events, changed(id, models.FieldPosition, models.Text(string(rune('b'+rng.IntN(5)))), ts, client))
		case 3:
			events = append(events, changed(id, models.FieldParentID, models.Ref(ids[rng.IntN(len(ids))]), ts, client))
		case 4:
			events = append(events, changed(id, models.FieldLevel, models.Number(int64(1+rng.IntN(2))), ts, client))
		case 5:
			if rng.IntN(4) == 0 {
				events = append(events, deletedEv(id, ts, client))
			}
		}
	}
	return events
}

func TestProject_OrderIndependence(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 7))

	for round := range 50 {
		events := randomEventSet(rng)
		expected := Project(events)

		for range 10 {
			shuffled := make([]models.Event, len(events))
			copy(shuffled, events)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })

			assert.Equal(t, expected, Project(shuffled), "round %d", round)
		}
	}
}

func TestProject_Convergence(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 9))

	// два клиента получают одно и то же множество событий в разном порядке,
	// причем один из них видит часть событий дважды
	for range 20 {
		events := randomEventSet(rng)

		clientA := make([]models.Event, 0, len(events))
		clientB := make([]models.Event, 0, len(events)+5)
		clientA = append(clientA, events...)
		for i := len(events) - 1; i >= 0; i-- {
			clientB = append(clientB, events[i])
		}
		clientB = append(clientB, events[:5]...)

		assert.Equal(t, Project(clientA), Project(clientB))
	}
}

func TestProject_Pure(t *testing.T) {
	events := []models.Event{
		created("X", 1, "c", fv(models.FieldText, models.Text("a"))),
		changed("X", models.FieldText, models.Text("b"), 2, "c"),
	}
	before := make([]models.Event, len(events))
	copy(before, events)

	first := Project(events)
	second := Project(events)

	assert.Equal(t, first, second)
	assert.Equal(t, before, events)
}
