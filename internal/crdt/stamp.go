package crdt

// Stamp LWW-версия записи поля: (timestamp, clientID, eventID).
// Сравнение лексикографическое по всем трем компонентам, поэтому
// порядок детерминирован для любого набора событий.
type Stamp struct {
	Timestamp int64  `json:"timestamp"`
	ClientID  string `json:"clientId"`
	EventID   string `json:"eventId"`
}

// IsZero сообщает, что версия не была записана
func (s Stamp) IsZero() bool {
	return s.Timestamp == 0 && s.ClientID == "" && s.EventID == ""
}

// IsNewerThan проверяет, является ли версия новее другой.
// При равных timestamp побеждает больший clientID, затем больший eventID.
func (s Stamp) IsNewerThan(other Stamp) bool {
	if s.Timestamp != other.Timestamp {
		return s.Timestamp > other.Timestamp
	}
	if s.ClientID != other.ClientID {
		return s.ClientID > other.ClientID
	}
	return s.EventID > other.EventID
}

// Register Last-Write-Wins регистр одного значения
type Register[T any] struct {
	Value T
	Stamp Stamp
	set   bool
}

// Set записывает значение, если версия новее текущей.
// Возвращает true, если регистр изменился.
func (r *Register[T]) Set(v T, s Stamp) bool {
	if r.set && !s.IsNewerThan(r.Stamp) {
		return false
	}
	r.Value = v
	r.Stamp = s
	r.set = true
	return true
}

// IsSet сообщает, что в регистр была хотя бы одна запись
func (r *Register[T]) IsSet() bool {
	return r.set
}
