package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/iudanet/listsync/internal/models"
	"github.com/iudanet/listsync/internal/server/storage"
	"github.com/iudanet/listsync/pkg/api"
)

type eventRow struct {
	Seq     int64  `db:"seq"`
	Payload string `db:"payload"`
}

// AppendEvents сохраняет пакет событий пользователя; seq назначает база
func (s *Storage) AppendEvents(ctx context.Context, userID string, events []models.Event) (*storage.AppendResult, error) {
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", storage.ErrInvalidEvent, i, err)
		}
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	const insert = `
		INSERT INTO events (user_id, event_id, item_id, client_id, timestamp, payload, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (user_id, event_id) DO NOTHING
	`
	const existing = `SELECT seq FROM events WHERE user_id = ? AND event_id = ?`

	res := &storage.AppendResult{Acks: make([]api.Ack, 0, len(events))}
	now := time.Now().UTC()

	for _, ev := range events {
		ev.Seq = nil
		payload, err := json.Marshal(ev)
		if err != nil {
			return nil, fmt.Errorf("encoding event %s: %w", ev.ID, err)
		}

		result, err := tx.ExecContext(ctx, insert,
			userID, ev.ID, ev.ItemID, ev.ClientID, ev.Timestamp, string(payload), now)
		if err != nil {
			return nil, fmt.Errorf("inserting event %s: %w", ev.ID, err)
		}

		inserted, err := result.RowsAffected()
		if err != nil {
			return nil, fmt.Errorf("failed to get rows affected: %w", err)
		}

		var seq int64
		if inserted == 1 {
			if seq, err = result.LastInsertId(); err != nil {
				return nil, fmt.Errorf("reading seq of %s: %w", ev.ID, err)
			}
			res.Inserted = append(res.Inserted, ev.WithSeq(seq))
		} else if err := tx.GetContext(ctx, &seq, existing, userID, ev.ID); err != nil {
			return nil, fmt.Errorf("reading seq of duplicate %s: %w", ev.ID, err)
		}

		res.Acks = append(res.Acks, api.Ack{ID: ev.ID, Seq: seq})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing events: %w", err)
	}

	return res, nil
}

// EventsSince возвращает страницу журнала пользователя после курсора
func (s *Storage) EventsSince(ctx context.Context, userID string, since int64, limit int) ([]models.Event, error) {
	query := `
		SELECT seq, payload
		FROM events
		WHERE user_id = ? AND seq > ?
		ORDER BY seq
		LIMIT ?
	`

	var rows []eventRow
	if err := s.db.SelectContext(ctx, &rows, query, userID, since, limit); err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}

	events := make([]models.Event, 0, len(rows))
	for _, row := range rows {
		var ev models.Event
		if err := json.Unmarshal([]byte(row.Payload), &ev); err != nil {
			return nil, fmt.Errorf("decoding event at seq %d: %w", row.Seq, err)
		}
		events = append(events, ev.WithSeq(row.Seq))
	}

	return events, nil
}
