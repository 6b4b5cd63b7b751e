// Package broker доставляет уведомления о новых событиях пользователя
// открытым SSE-потокам. Уведомление не несет данных: поток сам
// дочитывает журнал от своего курсора.
package broker

import (
	"context"
	"sync"
)

// Broker рассылает уведомления подписчикам одного пользователя
type Broker interface {
	// Notify сообщает, что в журнале пользователя появились события
	Notify(ctx context.Context, userID string) error
	// Subscribe возвращает канал уведомлений и функцию отписки
	Subscribe(userID string) (<-chan struct{}, func())
}

// Memory брокер в пределах одного процесса
type Memory struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

// NewMemory создает пустой брокер
func NewMemory() *Memory {
	return &Memory{subs: make(map[string]map[chan struct{}]struct{})}
}

// Subscribe регистрирует подписчика. Канал с буфером 1: несколько
// уведомлений подряд схлопываются в одно.
func (b *Memory) Subscribe(userID string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	b.mu.Lock()
	if b.subs[userID] == nil {
		b.subs[userID] = make(map[chan struct{}]struct{})
	}
	b.subs[userID][ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs[userID], ch)
			if len(b.subs[userID]) == 0 {
				delete(b.subs, userID)
			}
			b.mu.Unlock()
		})
	}
}

// Notify будит всех подписчиков пользователя
func (b *Memory) Notify(_ context.Context, userID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subs[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Subscribers возвращает число подписчиков пользователя
func (b *Memory) Subscribers(userID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[userID])
}
