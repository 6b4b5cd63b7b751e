package engine

import (
	"context"

	"github.com/iudanet/listsync/internal/models"
)

// RemoteLog представление журнала для синхронизации: удаленные события
// подтягивают часы клиента, а сжатие бережет историю undo.
type RemoteLog struct {
	e *Engine
}

// Remote возвращает журнал для движка синхронизации
func (e *Engine) Remote() RemoteLog {
	return RemoteLog{e: e}
}

func (r RemoteLog) Unpushed() []models.Event {
	return r.e.log.Unpushed()
}

func (r RemoteLog) HasUnpushed() bool {
	return r.e.log.HasUnpushed()
}

func (r RemoteLog) MarkPushed(ctx context.Context, acks map[string]int64) error {
	return r.e.log.MarkPushed(ctx, acks)
}

func (r RemoteLog) AppendRemote(ctx context.Context, events []models.Event) ([]models.Event, error) {
	for _, ev := range events {
		r.e.clock.Update(ev.Timestamp)
	}
	return r.e.log.AppendRemote(ctx, events)
}

func (r RemoteLog) Compact(ctx context.Context) (int, error) {
	return r.e.log.Compact(ctx, r.e.history.RetainedIDs())
}
