package db

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lisamayiya/capaciti-talent-showcase/internal/storage"
)

var testNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// testClock is a settable clock for the repositories under test.
type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func setupTestDB(t *testing.T) (*DB, *storage.Memory, *testClock) {
	t.Helper()

	backend := storage.NewMemory()
	clock := &testClock{now: testNow}
	database := New(backend, Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Clock:  clock.Now,
	})
	t.Cleanup(func() { database.Close() })

	return database, backend, clock
}
