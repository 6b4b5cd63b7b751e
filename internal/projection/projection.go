// Package projection выводит текущее состояние списка из журнала событий.
//
// Проекция чистая: результат зависит только от множества событий,
// но не от их порядка. Каждое поле разрешается по правилу
// last-writer-wins с версией (timestamp, clientID, eventID), а
// удаление элемента всегда побеждает любые изменения полей.
package projection

import (
	"slices"

	"github.com/iudanet/listsync/internal/crdt"
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/position"
)

// Result результат проекции с диагностикой
type Result struct {
	Items []models.Item
	// Skipped события или поля payload, отброшенные как некорректные
	// (неизвестное поле, тип значения не совпадает, нет id)
	Skipped int
	// Deleted количество tombstone-элементов
	Deleted int
}

type itemState struct {
	created bool
	fields  map[models.Field]*crdt.Register[models.Value]
}

func (s *itemState) set(f models.Field, v models.Value, stamp crdt.Stamp) {
	reg, ok := s.fields[f]
	if !ok {
		reg = &crdt.Register[models.Value]{}
		s.fields[f] = reg
	}
	reg.Set(v, stamp)
}

// Project возвращает видимые элементы, упорядоченные по position, затем по id
func Project(events []models.Event) []models.Item {
	return ProjectWithStats(events).Items
}

// ProjectWithStats как Project, но дополнительно считает пропущенные события
func ProjectWithStats(events []models.Event) Result {
	var res Result

	states := make(map[string]*itemState)
	deleted := make(map[string]bool)

	state := func(id string) *itemState {
		s, ok := states[id]
		if !ok {
			s = &itemState{fields: make(map[models.Field]*crdt.Register[models.Value])}
			states[id] = s
		}
		return s
	}

	for i := range events {
		e := &events[i]
		if err := e.Validate(); err != nil {
			res.Skipped++
			continue
		}

		switch e.Kind {
		case models.EventItemDeleted:
			deleted[e.ItemID] = true

		case models.EventItemCreated:
			s := state(e.ItemID)
			s.created = true
			stamp := e.Stamp()
			hasCreatedAt := false
			for _, fv := range e.Fields {
				if !fv.Field.Accepts(fv.Value) {
					res.Skipped++
					continue
				}
				if fv.Field == models.FieldCreatedAt {
					hasCreatedAt = true
				}
				s.set(fv.Field, fv.Value, stamp)
			}
			// по умолчанию createdAt = время события создания
			if !hasCreatedAt {
				s.set(models.FieldCreatedAt, models.Timestamp(e.Timestamp), stamp)
			}

		case models.EventFieldChanged:
			if !e.Field.Accepts(e.Value) {
				res.Skipped++
				continue
			}
			state(e.ItemID).set(e.Field, e.Value, e.Stamp())
		}
	}

	res.Deleted = len(deleted)
	res.Items = make([]models.Item, 0, len(states))
	for id, s := range states {
		if !s.created || deleted[id] {
			continue
		}
		item := models.NewItem(id)
		for f, reg := range s.fields {
			item.SetField(f, reg.Value)
			item.Versions[f] = reg.Stamp
		}
		res.Items = append(res.Items, item)
	}

	SortItems(res.Items)
	return res
}

// SortItems сортирует элементы по position, затем по id
func SortItems(items []models.Item) {
	slices.SortFunc(items, func(a, b models.Item) int {
		return position.Compare(a.Position, a.ID, b.Position, b.ID)
	})
}
