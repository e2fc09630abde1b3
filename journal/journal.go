package journal

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Entry records one remote mirror operation that failed after its local half
// was committed. Entries are never replayed; they document divergence.
type Entry struct {
	ID        string
	Time      time.Time
	Area      string
	Operation string
	Container string
	Key       string
	Error     string
}

// Journal persists mirror failures.
type Journal interface {
	// Record appends a single entry.
	Record(ctx context.Context, entry *Entry) error

	// List returns up to limit entries, newest first. A limit <= 0 returns all.
	List(ctx context.Context, limit int) ([]*Entry, error)

	Close() error
}

func NewEntry(area, operation, container, key string, err error) *Entry {
	entry := &Entry{
		ID:        uuid.Must(uuid.NewV7()).String(),
		Time:      time.Now().UTC(),
		Area:      area,
		Operation: operation,
		Container: container,
		Key:       key,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	return entry
}
