// Package clock абстрагирует источник времени и таймеры, чтобы движок
// синхронизации и события можно было тестировать детерминированно.
package clock

import "time"

// Timer отменяемый отложенный вызов
type Timer interface {
	// Stop отменяет вызов; возвращает false, если он уже сработал или отменен
	Stop() bool
}

// Clock источник времени
type Clock interface {
	Now() time.Time
	// AfterFunc вызывает f в отдельной горутине через d
	AfterFunc(d time.Duration, f func()) Timer
}

type system struct{}

// System возвращает часы поверх системного времени
func System() Clock {
	return system{}
}

func (system) Now() time.Time {
	return time.Now()
}

func (system) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
