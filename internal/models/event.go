package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/listsync/internal/crdt"
)

// EventKind тип события в журнале
type EventKind string

const (
	// EventItemCreated создание элемента; начальные значения в Fields
	EventItemCreated EventKind = "item_created"
	// EventFieldChanged изменение одного поля элемента
	EventFieldChanged EventKind = "field_changed"
	// EventItemDeleted удаление элемента (терминальный tombstone)
	EventItemDeleted EventKind = "item_deleted"
)

// Ошибки валидации событий
var (
	ErrEventNoID       = errors.New("event id is required")
	ErrEventNoItemID   = errors.New("event item id is required")
	ErrEventKind       = errors.New("unknown event kind")
	ErrEventNoClientID = errors.New("event client id is required")
	ErrEventField      = errors.New("field_changed event requires a field")
)

// FieldValue пара поле/значение в payload события создания
type FieldValue struct {
	Field Field `json:"field"`
	Value Value `json:"value"`
}

// UnmarshalJSON декодирует пару и приводит значение к типу поля
func (fv *FieldValue) UnmarshalJSON(data []byte) error {
	type alias FieldValue
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Value = a.Value.Bind(a.Field)
	*fv = FieldValue(a)
	return nil
}

// Event одна запись журнала изменений. После создания не меняется,
// кроме Seq, который заполняется при подтверждении сервером.
type Event struct {
	ID        string       `json:"id"`
	ItemID    string       `json:"itemId"`
	Kind      EventKind    `json:"kind"`
	Field     Field        `json:"field,omitempty"`
	Value     Value        `json:"value"`
	Fields    []FieldValue `json:"fields,omitempty"`
	Timestamp int64        `json:"timestamp"` // unix millis
	ClientID  string       `json:"clientId"`
	Seq       *int64       `json:"seq,omitempty"` // nil = не отправлено
}

// UnmarshalJSON декодирует событие и приводит Value к типу поля
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias Event
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.Field != "" {
		a.Value = a.Value.Bind(a.Field)
	}
	*e = Event(a)
	return nil
}

// Pushed сообщает, что событие подтверждено сервером
func (e *Event) Pushed() bool {
	return e.Seq != nil
}

// Stamp возвращает LWW-версию события
func (e *Event) Stamp() crdt.Stamp {
	return crdt.Stamp{
		Timestamp: e.Timestamp,
		ClientID:  e.ClientID,
		EventID:   e.ID,
	}
}

// Clone создает глубокую копию события
func (e *Event) Clone() Event {
	c := *e
	if e.Fields != nil {
		c.Fields = make([]FieldValue, len(e.Fields))
		copy(c.Fields, e.Fields)
	}
	if e.Seq != nil {
		seq := *e.Seq
		c.Seq = &seq
	}
	return c
}

// WithSeq возвращает копию события с назначенным seq
func (e *Event) WithSeq(seq int64) Event {
	c := e.Clone()
	c.Seq = &seq
	return c
}

// Validate проверяет структурную корректность события.
// Неизвестные поля не считаются ошибкой: их пропускает проекция.
func (e *Event) Validate() error {
	if e.ID == "" {
		return ErrEventNoID
	}
	if e.ItemID == "" {
		return ErrEventNoItemID
	}
	if e.ClientID == "" {
		return ErrEventNoClientID
	}
	switch e.Kind {
	case EventItemCreated, EventItemDeleted:
	case EventFieldChanged:
		if e.Field == "" {
			return ErrEventField
		}
	default:
		return fmt.Errorf("%w: %q", ErrEventKind, e.Kind)
	}
	return nil
}

// IDs возвращает идентификаторы событий в исходном порядке
func IDs(events []Event) []string {
	ids := make([]string, len(events))
	for i := range events {
		ids[i] = events[i].ID
	}
	return ids
}
