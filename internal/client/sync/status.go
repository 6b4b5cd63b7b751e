package sync

import (
	"fmt"
	"time"
)

// State видимое состояние синхронизации
type State string

const (
	StateSynced       State = "synced"
	StateSyncing      State = "syncing"
	StateError        State = "error"
	StateReconnecting State = "reconnecting"
	StateOffline      State = "offline"
	StateDisabled     State = "disabled"
)

// Status состояние для отображения
type Status struct {
	State      State
	RetryCount int
	NextRetry  time.Duration // 0, если повтор не запланирован
	Exhausted  bool          // попытки исчерпаны, ждем внешнего триггера
}

func (s Status) String() string {
	switch {
	case s.State != StateError:
		return string(s.State)
	case s.Exhausted:
		return "error (retries exhausted)"
	default:
		return fmt.Sprintf("error (retry %d in %s)", s.RetryCount, s.NextRetry)
	}
}

// StatusInput исходные данные для DecideStatus
type StatusInput struct {
	Enabled           bool
	Online            bool
	RealtimeConnected bool
	Syncing           bool
	RetryPending      bool
	Exhausted         bool
	RetryCount        int
	NextRetry         time.Duration
}

// DecideStatus выводит видимое состояние из флагов движка.
// Приоритет: disabled, offline, syncing, error, reconnecting, synced.
func DecideStatus(in StatusInput) Status {
	switch {
	case !in.Enabled:
		return Status{State: StateDisabled}
	case !in.Online:
		return Status{State: StateOffline}
	case in.Syncing:
		return Status{State: StateSyncing, RetryCount: in.RetryCount}
	case in.RetryPending || in.Exhausted:
		st := Status{State: StateError, RetryCount: in.RetryCount, Exhausted: in.Exhausted}
		if in.RetryPending {
			st.NextRetry = in.NextRetry
		}
		return st
	case !in.RealtimeConnected:
		return Status{State: StateReconnecting}
	default:
		return Status{State: StateSynced}
	}
}
