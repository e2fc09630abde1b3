package sqlite_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwantia/mirrorfs/journal"
	"github.com/mwantia/mirrorfs/journal/sqlite"
)

func TestSQLiteJournal_RecordAndList(t *testing.T) {
	ctx := t.Context()

	j, err := sqlite.NewSQLiteJournal(":memory:")
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	defer j.Close()

	first := journal.NewEntry("media", "upload", "images", "2024/a.jpg", errors.New("timeout"))
	second := journal.NewEntry("media", "delete", "images", "2024/b.jpg", nil)
	second.Time = first.Time.Add(time.Second)

	for _, entry := range []*journal.Entry{first, second} {
		if err := j.Record(ctx, entry); err != nil {
			t.Fatalf("Record failed: %v", err)
		}
	}

	entries, err := j.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Errorf("Expected newest entry first, got %s", entries[0].Operation)
	}
	if entries[1].Error != "timeout" || entries[1].Key != "2024/a.jpg" {
		t.Errorf("Unexpected entry: %+v", entries[1])
	}
	if !entries[1].Time.Equal(first.Time) {
		t.Errorf("Expected time %v, got %v", first.Time, entries[1].Time)
	}

	limited, err := j.List(ctx, 1)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("Expected 1 entry, got %d", len(limited))
	}
}

func TestSQLiteJournal_Persists(t *testing.T) {
	ctx := t.Context()
	path := filepath.Join(t.TempDir(), "journal.db")

	j, err := sqlite.NewSQLiteJournal(path)
	if err != nil {
		t.Fatalf("Failed to open journal: %v", err)
	}
	if err := j.Record(ctx, journal.NewEntry("media", "upload", "docs", "a.txt", nil)); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if err := j.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened, err := sqlite.NewSQLiteJournal(path)
	if err != nil {
		t.Fatalf("Failed to reopen journal: %v", err)
	}
	defer reopened.Close()

	entries, err := reopened.List(ctx, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("Expected 1 entry after reopen, got %d", len(entries))
	}
}
