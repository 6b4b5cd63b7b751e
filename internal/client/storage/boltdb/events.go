package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/listsync/internal/client/storage"
	"github.com/iudanet/listsync/internal/models"
)

// LoadEvents returns the stored log in append order
func (s *Storage) LoadEvents(ctx context.Context) ([]models.Event, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var events []models.Event

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketEvents)
		if bucket == nil {
			// Нет bucket - пустой журнал
			return nil
		}

		// ключи - порядковые номера big-endian, ForEach идет в порядке добавления
		return bucket.ForEach(func(k, v []byte) error {
			var e models.Event
			if err := json.Unmarshal(v, &e); err != nil {
				return fmt.Errorf("%w: event #%d: %v", storage.ErrCorruptLog, binary.BigEndian.Uint64(k), err)
			}
			events = append(events, e)
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to load events: %w", err)
	}

	return events, nil
}

// SaveEvents replaces the stored log in a single transaction
func (s *Storage) SaveEvents(ctx context.Context, events []models.Event) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	// Сериализуем до начала транзакции
	encoded := make([][]byte, len(events))
	for i := range events {
		data, err := json.Marshal(&events[i])
		if err != nil {
			return fmt.Errorf("failed to marshal event %s: %w", events[i].ID, err)
		}
		encoded[i] = data
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketEvents) != nil {
			if err := tx.DeleteBucket(bucketEvents); err != nil {
				return fmt.Errorf("failed to reset events bucket: %w", err)
			}
		}
		bucket, err := tx.CreateBucket(bucketEvents)
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		// последовательная запись
		bucket.FillPercent = 1.0

		for i, data := range encoded {
			key := make([]byte, 8)
			binary.BigEndian.PutUint64(key, uint64(i))
			if err := bucket.Put(key, data); err != nil {
				return fmt.Errorf("failed to save event: %w", err)
			}
		}
		return nil
	})

	if err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	return nil
}
