package storage

import (
	"context"

	"github.com/iudanet/listsync/internal/models"
)

//go:generate moq -out events_mock.go . EventStorage

// EventStorage persists the local event log.
// SaveEvents replaces the stored log atomically: after a crash the
// storage holds either the previous log or the new one, never a mix.
type EventStorage interface {
	// LoadEvents returns the stored log in append order
	LoadEvents(ctx context.Context) ([]models.Event, error)

	// SaveEvents replaces the stored log
	SaveEvents(ctx context.Context, events []models.Event) error
}
