package boltdb

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/storefront/internal/client/storage"
)

// создаём тестовое BoltDB хранилище
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	store, err := New(context.Background(), filepath.Join(t.TempDir(), "session_test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestStorage_SetGetClear(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Отсутствующий ключ не ошибка
	value, ok, err := store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)

	require.NoError(t, store.Set(ctx, storage.KeyAccessToken, "X"))

	value, ok, err = store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "X", value)

	// Перезапись
	require.NoError(t, store.Set(ctx, storage.KeyAccessToken, "Y"))
	value, _, err = store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.Equal(t, "Y", value)

	require.NoError(t, store.Clear(ctx, storage.KeyAccessToken))

	_, ok, err = store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStorage_ClearAllKeys(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, storage.SaveCredentials(ctx, store, storage.Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
	}))
	require.NoError(t, storage.SaveUser(ctx, store, &storage.CachedUser{ID: 1, Email: "a@b.c"}))

	require.NoError(t, store.Clear(ctx, storage.AllKeys()...))

	for _, key := range storage.AllKeys() {
		_, ok, err := store.Get(ctx, key)
		require.NoError(t, err)
		assert.False(t, ok, "key %s must be removed", key)
	}

	// Повторная очистка отсутствующих ключей не ошибка
	assert.NoError(t, store.Clear(ctx, storage.AllKeys()...))
	assert.NoError(t, store.Clear(ctx))
}

func TestStorage_EmptyValue(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, storage.KeyUser, ""))
	value, ok, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, value)
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketSession)
	})
	require.NoError(t, err)

	_, _, err = store.Get(ctx, storage.KeyAccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrStorageUnavailable)
	assert.Contains(t, err.Error(), "session bucket not found")

	err = store.Set(ctx, storage.KeyAccessToken, "X")
	var storageErr *storage.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "set", storageErr.Op)
	assert.Equal(t, "access_token", storageErr.Key)

	err = store.Clear(ctx, storage.AllKeys()...)
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "clear", storageErr.Op)
}

func TestStorage_Closed(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	_, _, err = store.Get(ctx, storage.KeyAccessToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Set(ctx, storage.KeyAccessToken, "X")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)

	err = store.Clear(ctx, storage.KeyAccessToken)
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
}

func TestStorage_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, store.Set(ctx, storage.KeyAccessToken, fmt.Sprintf("token-%d", i)))
		}(i)
		go func() {
			defer wg.Done()
			_, _, err := store.Get(ctx, storage.KeyAccessToken)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, ok, err := store.Get(ctx, storage.KeyAccessToken)
	require.NoError(t, err)
	assert.True(t, ok)
}
