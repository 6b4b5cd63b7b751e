// Package testutil содержит вспомогательные средства для тестов.
package testutil

import (
	"sort"
	"sync"
	"time"

	"github.com/iudanet/listsync/internal/clock"
)

// FakeClock детерминированные часы для тестов.
//
// Время меняется только через Advance/Set. Таймеры срабатывают синхронно
// внутри Advance в порядке дедлайнов, вне блокировки часов, поэтому
// колбэки могут снова вызывать AfterFunc.
type FakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
	nextID int
}

type fakeTimer struct {
	clock    *FakeClock
	deadline time.Time
	fn       func()
	id       int
	stopped  bool
	fired    bool
}

// NewFakeClock создает часы, стоящие в момент start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now возвращает текущее фиктивное время
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// AfterFunc регистрирует таймер, который сработает при Advance
func (c *FakeClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	t := &fakeTimer{
		clock:    c,
		deadline: c.now.Add(d),
		fn:       f,
		id:       c.nextID,
	}
	c.timers = append(c.timers, t)
	return t
}

// Advance сдвигает время на d и вызывает все наступившие таймеры,
// включая созданные самими колбэками, если их дедлайн тоже наступил.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		t := c.nextDue(target)
		if t == nil {
			break
		}
		t.fn()
	}

	c.mu.Lock()
	c.now = target
	c.mu.Unlock()
}

// Set переводит часы в момент t без запуска таймеров
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Pending возвращает задержки активных таймеров относительно текущего времени
func (c *FakeClock) Pending() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []time.Duration
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			out = append(out, t.deadline.Sub(c.now))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// nextDue снимает с очереди ближайший наступивший таймер и переводит
// время на его дедлайн.
func (c *FakeClock) nextDue(target time.Time) *fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var due *fakeTimer
	for _, t := range c.timers {
		if t.stopped || t.fired || t.deadline.After(target) {
			continue
		}
		if due == nil || t.deadline.Before(due.deadline) ||
			(t.deadline.Equal(due.deadline) && t.id < due.id) {
			due = t
		}
	}
	if due == nil {
		return nil
	}

	due.fired = true
	if due.deadline.After(c.now) {
		c.now = due.deadline
	}

	// чистим отработавшие
	alive := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			alive = append(alive, t)
		}
	}
	c.timers = alive

	return due
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}
