package boltdb

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/countrybook/internal/client/storage"
)

// создаём тестовое BoltDB хранилище во временной директории
func createTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "testdb.db")
	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})

	return store
}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	err = store.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket(bucketLocal) == nil {
			return os.ErrNotExist
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Директория не существует, файл создать нельзя
	invalidPath := filepath.Join(t.TempDir(), "missing", "dir", "db")
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close не должен падать
	assert.NoError(t, store.Close())

	// Операции после закрытия
	_, err = store.Get(context.Background(), "user")
	assert.ErrorIs(t, err, storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Set(context.Background(), "user", []byte("x")), storage.ErrStorageClosed)
	assert.ErrorIs(t, store.Delete(context.Background(), "user"), storage.ErrStorageClosed)
}

func TestStorage_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("alice")))

	got, err := store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, "alice", string(got))

	// Перезапись
	require.NoError(t, store.Set(ctx, storage.KeyUser, []byte("bob")))
	got, err = store.Get(ctx, storage.KeyUser)
	require.NoError(t, err)
	assert.Equal(t, "bob", string(got))

	require.NoError(t, store.Delete(ctx, storage.KeyUser))
	_, err = store.Get(ctx, storage.KeyUser)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)

	// Удаление отсутствующего ключа не ошибка
	assert.NoError(t, store.Delete(ctx, storage.KeyUser))
}

func TestStorage_Update(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	err := store.Update(ctx, storage.KeyUsers, func(current []byte, found bool) ([]byte, error) {
		assert.False(t, found)
		assert.Nil(t, current)
		return []byte(`{}`), nil
	})
	require.NoError(t, err)

	err = store.Update(ctx, storage.KeyUsers, func(current []byte, found bool) ([]byte, error) {
		assert.True(t, found)
		assert.Equal(t, `{}`, string(current))
		return []byte(`{"a":1}`), nil
	})
	require.NoError(t, err)

	got, err := store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(got))
}

func TestStorage_Update_AbortKeepsValue(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, storage.KeyUsers, []byte("original")))

	errAbort := errors.New("abort")
	err := store.Update(ctx, storage.KeyUsers, func([]byte, bool) ([]byte, error) {
		return nil, errAbort
	})
	assert.ErrorIs(t, err, errAbort)

	got, err := store.Get(ctx, storage.KeyUsers)
	require.NoError(t, err)
	assert.Equal(t, "original", string(got))
}

func TestStorage_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	require.NoError(t, store.Set(ctx, "k", []byte("value")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "value", string(again))
}

func TestStorage_BucketMissing(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	// Удаляем bucket напрямую
	err := store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketLocal)
	})
	require.NoError(t, err)

	_, err = store.Get(ctx, "k")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "local bucket not found")

	err = store.Set(ctx, "k", []byte("v"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "local bucket not found")
}

func TestStorage_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "reopen.db")

	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, storage.KeyLastActivity, []byte("1700000000000")))
	require.NoError(t, store.Close())

	store, err = New(ctx, dbPath)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	got, err := store.Get(ctx, storage.KeyLastActivity)
	require.NoError(t, err)
	assert.Equal(t, "1700000000000", string(got))
}
