package models

import "github.com/iudanet/listsync/internal/crdt"

// ItemType тип элемента списка
type ItemType string

const (
	ItemTask    ItemType = "task"
	ItemSection ItemType = "section"
)

// Item проекция элемента списка. Никогда не хранится, всегда выводится из журнала.
type Item struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	CreatedAt   int64    `json:"createdAt"`
	Important   bool     `json:"important"`
	Completed   bool     `json:"completed"`
	CompletedAt *int64   `json:"completedAt,omitempty"`
	Archived    bool     `json:"archived"`
	ArchivedAt  *int64   `json:"archivedAt,omitempty"`
	Position    string   `json:"position"`
	Type        ItemType `json:"type"`
	Level       int64    `json:"level,omitempty"`
	Indented    bool     `json:"indented"`
	ParentID    *string  `json:"parentId,omitempty"`

	// Versions LWW-версия последней записи каждого поля
	Versions map[Field]crdt.Stamp `json:"-"`
}

// NewItem создает пустую задачу с заданным id
func NewItem(id string) Item {
	return Item{
		ID:       id,
		Type:     ItemTask,
		Versions: make(map[Field]crdt.Stamp),
	}
}

// IsSection сообщает, что элемент является секцией
func (it *Item) IsSection() bool {
	return it.Type == ItemSection
}

// SectionLevel уровень вложенности секции: 2 только при явном level=2
func (it *Item) SectionLevel() int64 {
	if it.Level == 2 {
		return 2
	}
	return 1
}

// Parent возвращает parentId или пустую строку
func (it *Item) Parent() string {
	if it.ParentID == nil {
		return ""
	}
	return *it.ParentID
}

// SetField записывает значение поля. Значение должно соответствовать
// типу поля (см. Field.Accepts); иначе возвращается false.
func (it *Item) SetField(f Field, v Value) bool {
	if !f.Accepts(v) {
		return false
	}
	switch f {
	case FieldText:
		it.Text = v.AsText()
	case FieldPosition:
		it.Position = v.AsText()
	case FieldType:
		it.Type = ItemType(v.AsText())
	case FieldImportant:
		it.Important = v.AsBool()
	case FieldCompleted:
		it.Completed = v.AsBool()
	case FieldCompletedAt:
		it.CompletedAt = tsPtr(v)
	case FieldArchived:
		it.Archived = v.AsBool()
	case FieldArchivedAt:
		it.ArchivedAt = tsPtr(v)
	case FieldCreatedAt:
		ts, _ := v.AsTimestamp()
		it.CreatedAt = ts
	case FieldLevel:
		it.Level = v.AsNumber()
	case FieldIndented:
		it.Indented = v.AsBool()
	case FieldParentID:
		if id, ok := v.AsRef(); ok {
			it.ParentID = &id
		} else {
			it.ParentID = nil
		}
	default:
		return false
	}
	return true
}

// FieldValue возвращает текущее значение поля в виде Value
func (it *Item) FieldValue(f Field) (Value, bool) {
	switch f {
	case FieldText:
		return Text(it.Text), true
	case FieldPosition:
		return Text(it.Position), true
	case FieldType:
		return Text(string(it.Type)), true
	case FieldImportant:
		return Bool(it.Important), true
	case FieldCompleted:
		return Bool(it.Completed), true
	case FieldCompletedAt:
		return ptrTs(it.CompletedAt), true
	case FieldArchived:
		return Bool(it.Archived), true
	case FieldArchivedAt:
		return ptrTs(it.ArchivedAt), true
	case FieldCreatedAt:
		return Timestamp(it.CreatedAt), true
	case FieldLevel:
		return Number(it.Level), true
	case FieldIndented:
		return Bool(it.Indented), true
	case FieldParentID:
		if it.ParentID == nil {
			return NullRef(), true
		}
		return Ref(*it.ParentID), true
	}
	return Value{}, false
}

// Clone создает глубокую копию элемента
func (it *Item) Clone() Item {
	c := *it
	if it.CompletedAt != nil {
		v := *it.CompletedAt
		c.CompletedAt = &v
	}
	if it.ArchivedAt != nil {
		v := *it.ArchivedAt
		c.ArchivedAt = &v
	}
	if it.ParentID != nil {
		v := *it.ParentID
		c.ParentID = &v
	}
	c.Versions = make(map[Field]crdt.Stamp, len(it.Versions))
	for k, v := range it.Versions {
		c.Versions[k] = v
	}
	return c
}

func tsPtr(v Value) *int64 {
	ts, ok := v.AsTimestamp()
	if !ok {
		return nil
	}
	return &ts
}

func ptrTs(p *int64) Value {
	if p == nil {
		return NullTimestamp()
	}
	return Timestamp(*p)
}
