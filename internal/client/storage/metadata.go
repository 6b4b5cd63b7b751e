package storage

import "context"

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveCursor saves the highest remote seq already applied locally
	SaveCursor(ctx context.Context, seq int64) error

	// GetCursor retrieves the sync cursor
	// Returns 0 if no sync has been performed yet
	GetCursor(ctx context.Context) (int64, error)

	// GetClientID returns the persistent id of this client,
	// generating and storing a new one on first call
	GetClientID(ctx context.Context) (string, error)

	// SaveUndoState stores the serialized undo/redo stacks
	SaveUndoState(ctx context.Context, data []byte) error

	// GetUndoState returns the serialized undo/redo stacks or nil
	GetUndoState(ctx context.Context) ([]byte, error)
}
