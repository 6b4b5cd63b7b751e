package projection

import (
	"github.com/iudanet/listsync/internal/models"
)

// Row строка списка в порядке отображения
type Row struct {
	Item  models.Item
	Depth int
}

// Outline раскладывает элементы в порядок отображения: корневые элементы
// по position/id, за каждой секцией ее дети (рекурсивно).
// Элемент, чей родитель отсутствует среди items, считается корневым.
func Outline(items []models.Item) []Row {
	sorted := make([]models.Item, len(items))
	copy(sorted, items)
	SortItems(sorted)

	present := make(map[string]bool, len(sorted))
	for i := range sorted {
		present[sorted[i].ID] = true
	}

	children := make(map[string][]int)
	var roots []int
	for i := range sorted {
		parent := sorted[i].Parent()
		if parent == "" || !present[parent] || parent == sorted[i].ID {
			roots = append(roots, i)
			continue
		}
		children[parent] = append(children[parent], i)
	}

	rows := make([]Row, 0, len(sorted))
	visited := make(map[string]bool, len(sorted))

	var walk func(idx, depth int)
	walk = func(idx, depth int) {
		it := sorted[idx]
		if visited[it.ID] {
			return
		}
		visited[it.ID] = true
		rows = append(rows, Row{Item: it, Depth: depth})
		for _, c := range children[it.ID] {
			walk(c, depth+1)
		}
	}

	for _, r := range roots {
		walk(r, 0)
	}

	// циклы parentId: недостижимые элементы выводим как корневые
	for i := range sorted {
		if !visited[sorted[i].ID] {
			walk(i, 0)
		}
	}

	return rows
}

// Items возвращает элементы строк в том же порядке
func Items(rows []Row) []models.Item {
	out := make([]models.Item, len(rows))
	for i := range rows {
		out[i] = rows[i].Item
	}
	return out
}
