package mirrorfs_test

import (
	"errors"
	"testing"

	"github.com/mwantia/mirrorfs"
)

func TestNewBackend(t *testing.T) {
	tests := []struct {
		connection string
		name       string
		err        error
	}{
		{connection: ":memory:", name: "memory"},
		{connection: "s3://AKIA:secret@localhost:9000?ssl=false", name: "s3"},
		{connection: "consul://127.0.0.1:8500?prefix=mirror", name: "consul"},
		{connection: "localhost:9000", err: mirrorfs.ErrMalformedConnectionString},
		{connection: "azure://account", err: mirrorfs.ErrUnknownProvider},
	}

	for _, tt := range tests {
		b, err := mirrorfs.NewBackend(tt.connection)
		if tt.err != nil {
			if !errors.Is(err, tt.err) {
				t.Errorf("NewBackend(%q): expected %v, got %v", tt.connection, tt.err, err)
			}
			continue
		}

		if err != nil {
			t.Errorf("NewBackend(%q) failed: %v", tt.connection, err)
			continue
		}
		if b.Name() != tt.name {
			t.Errorf("NewBackend(%q): expected %s, got %s", tt.connection, tt.name, b.Name())
		}
	}
}

func TestOpenJournal(t *testing.T) {
	ctx := t.Context()

	j, err := mirrorfs.OpenJournal(ctx, "sqlite://:memory:")
	if err != nil {
		t.Fatalf("OpenJournal failed: %v", err)
	}
	defer j.Close()

	if _, err := mirrorfs.OpenJournal(ctx, "journal.db"); !errors.Is(err, mirrorfs.ErrMalformedConnectionString) {
		t.Errorf("Expected ErrMalformedConnectionString, got %v", err)
	}
	if _, err := mirrorfs.OpenJournal(ctx, "redis://localhost"); !errors.Is(err, mirrorfs.ErrUnknownProvider) {
		t.Errorf("Expected ErrUnknownProvider, got %v", err)
	}
}
