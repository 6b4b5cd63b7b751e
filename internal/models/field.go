package models

// Field имя изменяемого атрибута элемента списка
type Field string

// Поля элемента. Каждое поле имеет ровно один тип значения.
const (
	FieldText        Field = "text"
	FieldPosition    Field = "position"
	FieldType        Field = "type"
	FieldImportant   Field = "important"
	FieldCompleted   Field = "completed"
	FieldCompletedAt Field = "completedAt"
	FieldArchived    Field = "archived"
	FieldArchivedAt  Field = "archivedAt"
	FieldCreatedAt   Field = "createdAt"
	FieldLevel       Field = "level"
	FieldIndented    Field = "indented"
	FieldParentID    Field = "parentId"
)

var fieldKinds = map[Field]ValueKind{
	FieldText:        KindText,
	FieldPosition:    KindText,
	FieldType:        KindText,
	FieldImportant:   KindBool,
	FieldCompleted:   KindBool,
	FieldCompletedAt: KindTimestamp,
	FieldArchived:    KindBool,
	FieldArchivedAt:  KindTimestamp,
	FieldCreatedAt:   KindTimestamp,
	FieldLevel:       KindNumber,
	FieldIndented:    KindBool,
	FieldParentID:    KindRef,
}

// Kind возвращает тип значения поля; false для неизвестного поля
func (f Field) Kind() (ValueKind, bool) {
	k, ok := fieldKinds[f]
	return k, ok
}

// Valid сообщает, что поле известно модели
func (f Field) Valid() bool {
	_, ok := fieldKinds[f]
	return ok
}

// Accepts проверяет, что значение подходит полю по типу
func (f Field) Accepts(v Value) bool {
	k, ok := fieldKinds[f]
	if !ok || v.Kind() != k {
		return false
	}
	if f == FieldType {
		t := ItemType(v.AsText())
		return t == ItemTask || t == ItemSection
	}
	return true
}

// Fields возвращает все известные поля в стабильном порядке
func Fields() []Field {
	return []Field{
		FieldText, FieldPosition, FieldType, FieldImportant,
		FieldCompleted, FieldCompletedAt, FieldArchived, FieldArchivedAt,
		FieldCreatedAt, FieldLevel, FieldIndented, FieldParentID,
	}
}
