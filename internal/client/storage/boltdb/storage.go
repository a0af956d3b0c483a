package boltdb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/countrybook/internal/client/storage"
)

// BoltDB bucket names
var bucketLocal = []byte("local")

// Compile-time check that Storage implements storage.KeyValue
var _ storage.KeyValue = (*Storage)(nil)

// Storage represents BoltDB key-value storage for client
type Storage struct {
	db *bbolt.DB
	mu sync.RWMutex
}

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string) (*Storage, error) {
	// Открываем BoltDB. Timeout защищает от вечного ожидания flock,
	// если файл уже открыт другим процессом
	db, err := bbolt.Open(dbPath, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	s := &Storage{db: db}

	if err := s.initBuckets(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return s, nil
}

// Close closes the database connection. Repeated calls are no-ops
func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		if _, err := tx.CreateBucketIfNotExists(bucketLocal); err != nil {
			return fmt.Errorf("failed to create local bucket: %w", err)
		}
		return nil
	})
}

// Get returns the value stored under key
func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrKeyNotFound
		}

		// Значение валидно только внутри транзакции, копируем
		value = make([]byte, len(data))
		copy(value, data)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Set stores value under key
func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	return s.Update(ctx, key, func([]byte, bool) ([]byte, error) {
		return value, nil
	})
}

// Delete removes key
func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete %q: %w", key, err)
		}
		return nil
	})
}

// Update runs fn inside a single write transaction
func (s *Storage) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketLocal)
		if bucket == nil {
			return fmt.Errorf("local bucket not found")
		}

		current := bucket.Get([]byte(key))
		var snapshot []byte
		if current != nil {
			snapshot = make([]byte, len(current))
			copy(snapshot, current)
		}

		next, err := fn(snapshot, current != nil)
		if err != nil {
			return err
		}

		if err := bucket.Put([]byte(key), next); err != nil {
			return fmt.Errorf("failed to save %q: %w", key, err)
		}
		return nil
	})
}
