package db

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/storage"
)

// RecordStore maps keys to JSON-encoded collections on a storage backend.
// Absent or unparseable values load as empty; only backend failures are
// returned as errors.
type RecordStore struct {
	backend storage.Storage
	logger  *slog.Logger
	corrupt atomic.Int64
}

// NewRecordStore creates a record store over backend.
func NewRecordStore(backend storage.Storage, logger *slog.Logger) *RecordStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecordStore{backend: backend, logger: logger}
}

// CorruptLoads counts loads that found an unparseable value since startup.
func (s *RecordStore) CorruptLoads() int64 {
	return s.corrupt.Load()
}

func (s *RecordStore) recoverCorrupt(key string, err error) {
	s.corrupt.Add(1)
	s.logger.Warn("treating corrupt stored value as empty",
		"key", key,
		"error", fmt.Errorf("%w: %v", ErrStorageCorrupt, err),
	)
}

// Load returns the collection stored at key, or an empty slice when the key
// is absent or its value does not parse.
func Load[T any](ctx context.Context, s *RecordStore, key string) ([]T, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		s.recoverCorrupt(key, err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save overwrites key with the whole collection in a single backend write.
func Save[T any](ctx context.Context, s *RecordStore, key string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// LoadRecord returns the single object stored at key, or nil when the key is
// absent or its value does not parse.
func LoadRecord[T any](ctx context.Context, s *RecordStore, key string) (*T, error) {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var rec *T
	if err := json.Unmarshal(raw, &rec); err != nil {
		s.recoverCorrupt(key, err)
		return nil, nil
	}
	return rec, nil
}

// SaveRecord overwrites key with a single object.
func SaveRecord[T any](ctx context.Context, s *RecordStore, key string, rec *T) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists stored keys sharing prefix.
func (s *RecordStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	keys, err := s.backend.Keys(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("list %s*: %w", prefix, err)
	}
	return keys, nil
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
