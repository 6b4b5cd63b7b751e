// Package hierarchy восстанавливает связи parentId и порядок позиций
// по визуальному (линейному) порядку элементов списка.
//
// Функции чистые и возвращают только diff: список изменений полей,
// которые вызывающий код применяет одним атомарным пакетом событий.
package hierarchy

import (
	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/position"
)

// Change одно корректирующее изменение поля
type Change struct {
	ItemID string
	Field  models.Field
	Value  models.Value
}

// RebuildParentIDs проходит список в визуальном порядке и вычисляет
// ожидаемого родителя каждого элемента:
//   - задача принадлежит открытой секции второго уровня, иначе секции
//     первого уровня, иначе корню;
//   - секция второго уровня принадлежит текущей секции первого уровня;
//   - секция первого уровня всегда корневая.
//
// Архивные элементы пропускаются полностью.
func RebuildParentIDs(items []models.Item) []Change {
	expected := expectedParents(items)

	var changes []Change
	for i := range items {
		it := &items[i]
		if it.Archived {
			continue
		}
		want := expected[it.ID]
		if it.Parent() == want {
			continue
		}
		changes = append(changes, parentChange(it.ID, want))
	}
	return changes
}

// SyncHierarchyFromLinearOrder сначала вычисляет RebuildParentIDs, затем
// группирует элементы по исправленному родителю и проверяет, что позиции
// внутри каждой группы строго возрастают в порядке списка. Позиции
// немонотонной группы назначаются заново через position.Initial;
// в diff попадают только изменившиеся ключи.
func SyncHierarchyFromLinearOrder(items []models.Item) []Change {
	changes := RebuildParentIDs(items)
	expected := expectedParents(items)

	var order []string
	groups := make(map[string][]*models.Item)
	for i := range items {
		it := &items[i]
		if it.Archived {
			continue
		}
		parent := expected[it.ID]
		if _, ok := groups[parent]; !ok {
			order = append(order, parent)
		}
		groups[parent] = append(groups[parent], it)
	}

	for _, parent := range order {
		group := groups[parent]
		if monotonic(group) {
			continue
		}
		keys := position.Initial(len(group))
		for i, it := range group {
			if it.Position == keys[i] {
				continue
			}
			changes = append(changes, Change{
				ItemID: it.ID,
				Field:  models.FieldPosition,
				Value:  models.Text(keys[i]),
			})
		}
	}

	return changes
}

// Apply применяет изменения к копии элементов, сохраняя порядок
func Apply(items []models.Item, changes []Change) []models.Item {
	out := make([]models.Item, len(items))
	idx := make(map[string]int, len(items))
	for i := range items {
		out[i] = items[i].Clone()
		idx[items[i].ID] = i
	}
	for _, c := range changes {
		if i, ok := idx[c.ItemID]; ok {
			out[i].SetField(c.Field, c.Value)
		}
	}
	return out
}

func expectedParents(items []models.Item) map[string]string {
	expected := make(map[string]string, len(items))

	var level1, level2 string
	for i := range items {
		it := &items[i]
		if it.Archived {
			continue
		}

		switch {
		case it.IsSection() && it.SectionLevel() == 2:
			expected[it.ID] = level1
			level2 = it.ID
		case it.IsSection():
			expected[it.ID] = ""
			level1 = it.ID
			level2 = ""
		case level2 != "":
			expected[it.ID] = level2
		default:
			expected[it.ID] = level1
		}
	}

	return expected
}

func monotonic(group []*models.Item) bool {
	for i := 1; i < len(group); i++ {
		if group[i-1].Position >= group[i].Position {
			return false
		}
	}
	return true
}

func parentChange(id, parent string) Change {
	v := models.NullRef()
	if parent != "" {
		v = models.Ref(parent)
	}
	return Change{ItemID: id, Field: models.FieldParentID, Value: v}
}
