package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"
	"go.etcd.io/bbolt"

	"github.com/iudanet/listsync/internal/client/storage"
)

var (
	keyCursor    = []byte("cursor")
	keyClientID  = []byte("client_id")
	keyUndoState = []byte("undo_state")
)

// SaveCursor saves the highest remote seq already applied locally
func (s *Storage) SaveCursor(ctx context.Context, seq int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		seqBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(seqBytes, uint64(seq))

		if err := bucket.Put(keyCursor, seqBytes); err != nil {
			return fmt.Errorf("failed to save cursor: %w", err)
		}

		return nil
	})
}

// GetCursor retrieves the sync cursor
// Returns 0 if no sync has been performed yet
func (s *Storage) GetCursor(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var seq int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		seqBytes := bucket.Get(keyCursor)
		if seqBytes == nil {
			// первая синхронизация
			seq = 0
			return nil
		}

		seq = int64(binary.BigEndian.Uint64(seqBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get cursor: %w", err)
	}

	return seq, nil
}

// GetClientID returns the persistent id of this client,
// generating and storing a new one on first call
func (s *Storage) GetClientID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var clientID string

	err := s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if v := bucket.Get(keyClientID); v != nil {
			clientID = string(v)
			return nil
		}

		clientID = uuid.New().String()
		return bucket.Put(keyClientID, []byte(clientID))
	})

	if err != nil {
		return "", fmt.Errorf("failed to get client id: %w", err)
	}

	return clientID, nil
}

// SaveUndoState stores the serialized undo/redo stacks
func (s *Storage) SaveUndoState(ctx context.Context, data []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if data == nil {
			return bucket.Delete(keyUndoState)
		}
		if err := bucket.Put(keyUndoState, data); err != nil {
			return fmt.Errorf("failed to save undo state: %w", err)
		}
		return nil
	})
}

// GetUndoState returns the serialized undo/redo stacks or nil
func (s *Storage) GetUndoState(ctx context.Context) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var data []byte

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}
		if v := bucket.Get(keyUndoState); v != nil {
			// значение валидно только внутри транзакции
			data = append([]byte(nil), v...)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get undo state: %w", err)
	}

	return data, nil
}
