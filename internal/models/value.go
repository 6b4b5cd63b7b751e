package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ValueKind определяет тип значения поля
type ValueKind uint8

const (
	// KindUnknown значение неизвестного или некорректного поля (игнорируется проекцией)
	KindUnknown ValueKind = iota
	// KindText строковое значение
	KindText
	// KindBool булево значение
	KindBool
	// KindNumber целое число
	KindNumber
	// KindTimestamp nullable unix millis
	KindTimestamp
	// KindRef nullable ссылка на другой элемент (id)
	KindRef
)

func (k ValueKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindTimestamp:
		return "timestamp"
	case KindRef:
		return "ref"
	default:
		return "unknown"
	}
}

// Value is a closed tagged union of the value kinds an event can carry.
// The zero Value is an unknown value that encodes as JSON null.
type Value struct {
	raw  json.RawMessage
	text string
	num  int64
	kind ValueKind
	flag bool
	null bool
}

// Text создает строковое значение
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool создает булево значение
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Number создает числовое значение
func Number(n int64) Value { return Value{kind: KindNumber, num: n} }

// Timestamp создает значение времени (unix millis)
func Timestamp(ms int64) Value { return Value{kind: KindTimestamp, num: ms} }

// NullTimestamp создает пустое значение времени
func NullTimestamp() Value { return Value{kind: KindTimestamp, null: true} }

// Ref создает ссылку на элемент
func Ref(id string) Value { return Value{kind: KindRef, text: id} }

// NullRef создает пустую ссылку
func NullRef() Value { return Value{kind: KindRef, null: true} }

// Kind возвращает тип значения
func (v Value) Kind() ValueKind { return v.kind }

// IsNull сообщает, что nullable значение пустое
func (v Value) IsNull() bool { return v.null }

// AsText возвращает строку (пустую для других типов)
func (v Value) AsText() string {
	if v.kind != KindText {
		return ""
	}
	return v.text
}

// AsBool возвращает булево значение
func (v Value) AsBool() bool { return v.kind == KindBool && v.flag }

// AsNumber возвращает число
func (v Value) AsNumber() int64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.num
}

// AsTimestamp возвращает время и признак наличия значения
func (v Value) AsTimestamp() (int64, bool) {
	if v.kind != KindTimestamp || v.null {
		return 0, false
	}
	return v.num, true
}

// AsRef возвращает id ссылки и признак наличия значения
func (v Value) AsRef() (string, bool) {
	if v.kind != KindRef || v.null {
		return "", false
	}
	return v.text, true
}

// Equal сравнивает два значения по типу и содержимому
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindText:
		return v.text == o.text
	case KindBool:
		return v.flag == o.flag
	case KindNumber:
		return v.num == o.num
	case KindTimestamp:
		return v.null == o.null && (v.null || v.num == o.num)
	case KindRef:
		return v.null == o.null && (v.null || v.text == o.text)
	default:
		return bytes.Equal(v.raw, o.raw)
	}
}

func (v Value) String() string {
	data, err := v.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<%s>", v.kind)
	}
	return string(data)
}

// MarshalJSON кодирует значение в естественный JSON тип (string, bool, number, null)
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindText:
		return json.Marshal(v.text)
	case KindBool:
		return json.Marshal(v.flag)
	case KindNumber:
		return json.Marshal(v.num)
	case KindTimestamp:
		if v.null {
			return []byte("null"), nil
		}
		return json.Marshal(v.num)
	case KindRef:
		if v.null {
			return []byte("null"), nil
		}
		return json.Marshal(v.text)
	default:
		if len(v.raw) == 0 {
			return []byte("null"), nil
		}
		return v.raw, nil
	}
}

// UnmarshalJSON сохраняет сырое значение; тип определяется позже через Bind,
// так как он зависит от имени поля.
func (v *Value) UnmarshalJSON(data []byte) error {
	raw := make(json.RawMessage, len(data))
	copy(raw, data)
	*v = Value{kind: KindUnknown, raw: raw}
	return nil
}

// Bind resolves a raw decoded value against the kind the field requires.
// Values that do not fit stay KindUnknown and keep their raw bytes.
func (v Value) Bind(f Field) Value {
	if v.kind != KindUnknown {
		return v
	}
	kind, ok := f.Kind()
	if !ok || len(v.raw) == 0 {
		return v
	}

	isNull := bytes.Equal(bytes.TrimSpace(v.raw), []byte("null"))

	switch kind {
	case KindText:
		var s string
		if isNull || json.Unmarshal(v.raw, &s) != nil {
			return v
		}
		return Text(s)
	case KindBool:
		var b bool
		if isNull || json.Unmarshal(v.raw, &b) != nil {
			return v
		}
		return Bool(b)
	case KindNumber:
		var n int64
		if isNull || json.Unmarshal(v.raw, &n) != nil {
			return v
		}
		return Number(n)
	case KindTimestamp:
		if isNull {
			return NullTimestamp()
		}
		var n int64
		if json.Unmarshal(v.raw, &n) != nil {
			return v
		}
		return Timestamp(n)
	case KindRef:
		if isNull {
			return NullRef()
		}
		var s string
		if json.Unmarshal(v.raw, &s) != nil {
			return v
		}
		return Ref(s)
	}

	return v
}
