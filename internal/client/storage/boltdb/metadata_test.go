package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/listsync/internal/client/storage"
)

// createTestStorage создает временное BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestSaveAndGetCursor(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Изначально курсор 0
	seq, err := store.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), seq)

	require.NoError(t, store.SaveCursor(ctx, 1234567890))

	got, err := store.GetCursor(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), got)
}

func TestGetCursor_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket metadata напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketMetadata)
	})
	require.NoError(t, err)

	_, err = store.GetCursor(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")

	err = store.SaveCursor(ctx, 42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "metadata bucket not found")
}

func TestGetClientID_StableAcrossCalls(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)

	first, err := store.GetClientID(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first)

	second, err := store.GetClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	require.NoError(t, store.Close())

	// после переоткрытия id тот же
	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer store.Close()

	third, err := store.GetClientID(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, third)
}

func TestUndoState(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	data, err := store.GetUndoState(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.SaveUndoState(ctx, []byte(`{"undo":[]}`)))

	data, err = store.GetUndoState(ctx)
	require.NoError(t, err)
	assert.Equal(t, `{"undo":[]}`, string(data))

	// nil очищает состояние
	require.NoError(t, store.SaveUndoState(ctx, nil))
	data, err = store.GetUndoState(ctx)
	require.NoError(t, err)
	assert.Nil(t, data)
}

func TestMetadata_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, err = store.GetCursor(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	_, err = store.GetClientID(ctx)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.SaveUndoState(ctx, nil), storage.ErrStorageClosed)
}
