// Package memory provides a process-local storage.KeyValue used in tests
// and for throwaway sessions (--storage memory).
package memory

import (
	"context"
	"sync"

	"github.com/iudanet/countrybook/internal/client/storage"
)

var _ storage.KeyValue = (*Storage)(nil)

// Storage keeps values in a map guarded by a mutex.
type Storage struct {
	data   map[string][]byte
	mu     sync.Mutex
	closed bool
}

// New returns an empty storage.
func New() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, storage.ErrStorageClosed
	}

	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrKeyNotFound
	}
	return clone(v), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}

	s.data[key] = clone(value)
	return nil
}

func (s *Storage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}

	delete(s.data, key)
	return nil
}

func (s *Storage) Update(ctx context.Context, key string, fn storage.UpdateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrStorageClosed
	}

	current, found := s.data[key]
	next, err := fn(clone(current), found)
	if err != nil {
		return err
	}
	s.data[key] = clone(next)
	return nil
}

func (s *Storage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
