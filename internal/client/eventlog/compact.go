package eventlog

import (
	"context"

	"github.com/iudanet/listsync/internal/crdt"
	"github.com/iudanet/listsync/internal/models"
)

type fieldKey struct {
	item  string
	field models.Field
}

// Compact удаляет события, не влияющие на проекцию:
//   - field_changed, перекрытые более новой записью того же поля;
//   - все события удаленных элементов.
//
// Пока в журнале есть неотправленные события, Compact ничего не делает.
// Элементы, затронутые событиями из retain (история undo), не сжимаются.
// Возвращает количество удаленных событий.
func (l *Log) Compact(ctx context.Context, retain map[string]bool) (int, error) {
	l.mu.Lock()

	for i := range l.events {
		if !l.events[i].Pushed() {
			l.mu.Unlock()
			l.logger.Debug("compaction skipped: unpushed events remain")
			return 0, nil
		}
	}

	deleted := make(map[string]bool)
	protected := make(map[string]bool)
	winners := make(map[fieldKey]crdt.Stamp)
	for i := range l.events {
		e := &l.events[i]
		if retain[e.ID] {
			protected[e.ItemID] = true
		}
		switch e.Kind {
		case models.EventItemDeleted:
			deleted[e.ItemID] = true
		case models.EventFieldChanged:
			k := fieldKey{item: e.ItemID, field: e.Field}
			if w, ok := winners[k]; !ok || e.Stamp().IsNewerThan(w) {
				winners[k] = e.Stamp()
			}
		}
	}

	next := make([]models.Event, 0, len(l.events))
	for i := range l.events {
		e := &l.events[i]
		if protected[e.ItemID] {
			next = append(next, *e)
			continue
		}
		if deleted[e.ItemID] {
			continue
		}
		if e.Kind == models.EventFieldChanged && winners[fieldKey{item: e.ItemID, field: e.Field}] != e.Stamp() {
			continue
		}
		next = append(next, *e)
	}

	dropped := len(l.events) - len(next)
	if dropped == 0 {
		l.mu.Unlock()
		return 0, nil
	}

	if err := l.commitLocked(ctx, next, buildIndex(next)); err != nil {
		l.mu.Unlock()
		return 0, err
	}
	l.mu.Unlock()

	l.logger.Info("event log compacted", "dropped", dropped, "remaining", len(next))
	l.notify()
	return dropped, nil
}
