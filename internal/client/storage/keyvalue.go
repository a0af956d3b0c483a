package storage

import (
	"context"
)

// Persisted keys. The layout mirrors the browser's local storage so a table
// exported from there can be imported as-is.
const (
	// KeyUser holds the username of the logged-in account
	KeyUser = "user"
	// KeyLastActivity holds the last activity time as decimal epoch milliseconds
	KeyLastActivity = "lastActivityTimestamp"
	// KeyUsers holds the whole account table as one JSON object
	KeyUsers = "users"
)

//go:generate moq -out keyvalue_mock.go . KeyValue

// UpdateFunc receives the current value of a key (found=false if absent)
// and returns the new value. Returning an error aborts the update.
type UpdateFunc func(current []byte, found bool) ([]byte, error)

// KeyValue defines the local key-value storage used by the client.
// This is the lowest storage layer: values are opaque bytes, there is no
// per-field granularity.
type KeyValue interface {
	// Get returns the value stored under key
	// Returns ErrKeyNotFound if the key is absent
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Removing an absent key is not an error
	Delete(ctx context.Context, key string) error

	// Update performs read-modify-write of a single key atomically
	// with respect to other writers of the same storage instance
	Update(ctx context.Context, key string, fn UpdateFunc) error

	// Close releases underlying resources
	Close() error
}
