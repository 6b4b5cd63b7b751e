package crdt

import (
	"sync"
	"time"
)

// Clock выдает временные метки событий (unix millis), которые не уменьшаются
// для одного клиента даже при переводе системных часов назад.
type Clock struct {
	now      func() time.Time // источник физического времени
	clientID string           // идентификатор клиента
	last     int64            // последняя выданная или увиденная метка
	mu       sync.Mutex
}

// NewClock создает часы клиента поверх источника времени now
func NewClock(clientID string, now func() time.Time) *Clock {
	return &Clock{
		now:      now,
		clientID: clientID,
	}
}

// Tick возвращает новую метку: max(now, last+1).
// Используется при создании нового локального события.
func (c *Clock) Tick() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ts := c.now().UnixMilli()
	if ts <= c.last {
		ts = c.last + 1
	}
	c.last = ts
	return ts
}

// Update учитывает метку удаленного события, чтобы следующая локальная
// правка была новее уже увиденных.
func (c *Clock) Update(remoteTimestamp int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remoteTimestamp > c.last {
		c.last = remoteTimestamp
	}
}

// Last возвращает последнюю метку без изменения часов
func (c *Clock) Last() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// ClientID возвращает идентификатор клиента
func (c *Clock) ClientID() string {
	return c.clientID
}
