// Package storage provides the key-value port the record store persists
// through, with an in-process backend and an embedded SQLite backend.
package storage

import (
	"context"
	"fmt"
)

// Storage is a flat key-value namespace holding one opaque value per key.
type Storage interface {
	// Get returns nil, nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete is a no-op for an absent key.
	Delete(ctx context.Context, key string) error
	// Keys returns the keys starting with prefix in ascending order.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Open returns the backend selected by name. path is only used by the SQLite backend.
func Open(ctx context.Context, backend, path string) (Storage, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(), nil
	case BackendSQLite, "":
		return NewSQLite(ctx, path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
