package backend_test

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/mwantia/mirrorfs"
	"github.com/mwantia/mirrorfs/backend"
	"github.com/mwantia/mirrorfs/backend/local"
	"github.com/mwantia/mirrorfs/backend/memory"
	"github.com/mwantia/mirrorfs/backend/sqlite"
	"github.com/mwantia/mirrorfs/data"
)

// TestBackendFactory creates a new backend instance for testing.
type TestBackendFactory func(t *testing.T) (backend.ObjectStorageBackend, error)

// GetTestBackendFactories returns all backend implementations to test. Remote
// stores are only exercised when a connection string is exported.
func GetTestBackendFactories() map[string]TestBackendFactory {
	factories := map[string]TestBackendFactory{
		"memory": func(t *testing.T) (backend.ObjectStorageBackend, error) {
			return memory.NewMemoryBackend(), nil
		},
		"local": func(t *testing.T) (backend.ObjectStorageBackend, error) {
			return local.NewLocalBackend(t.TempDir())
		},
		"sqlite": func(t *testing.T) (backend.ObjectStorageBackend, error) {
			return sqlite.NewSQLiteBackend(":memory:")
		},
	}

	for name, env := range map[string]string{
		"s3":     "MIRRORFS_TEST_S3",
		"consul": "MIRRORFS_TEST_CONSUL",
	} {
		factories[name] = func(t *testing.T) (backend.ObjectStorageBackend, error) {
			connection := os.Getenv(env)
			if connection == "" {
				t.Skipf("%s not set", env)
			}
			return mirrorfs.NewBackend(connection)
		}
	}

	return factories
}

func openBackend(t *testing.T, factory TestBackendFactory) backend.ObjectStorageBackend {
	t.Helper()

	b, err := factory(t)
	if err != nil {
		t.Fatalf("Backend init failed: %v", err)
	}
	if err := b.Open(t.Context()); err != nil {
		t.Fatalf("Backend open failed: %v", err)
	}

	return b
}

// uniqueContainer keeps runs against shared remote stores apart.
func uniqueContainer() string {
	return "test-" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// TestAllBackends_ObjectOperations verifies upload, existence checks, download and delete.
func TestAllBackends_ObjectOperations(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			b := openBackend(tst, factory)
			defer b.Close(ctx)

			container := uniqueContainer()
			content := []byte("hello world")

			if b.Exists(ctx, container, "docs/a.txt") {
				tst.Fatalf("Expected object to be missing before upload")
			}

			if err := b.Upload(ctx, bytes.NewReader(content), int64(len(content)), container, "docs/a.txt", data.ContentTypeTextPlain); err != nil {
				tst.Fatalf("Upload failed: %v", err)
			}
			defer b.DeleteByPrefix(ctx, container, "")

			if !b.Exists(ctx, container, "docs/a.txt") {
				tst.Fatalf("Expected object to exist after upload")
			}

			rc, found, err := b.Download(ctx, container, "docs/a.txt")
			if err != nil || !found {
				tst.Fatalf("Download failed: found=%t err=%v", found, err)
			}
			got, err := io.ReadAll(rc)
			rc.Close()
			if err != nil {
				tst.Fatalf("ReadAll failed: %v", err)
			}
			if !bytes.Equal(got, content) {
				tst.Errorf("Expected %q, got %q", content, got)
			}

			if err := b.Delete(ctx, container, "docs/a.txt"); err != nil {
				tst.Fatalf("Delete failed: %v", err)
			}
			if b.Exists(ctx, container, "docs/a.txt") {
				tst.Errorf("Expected object to be gone after delete")
			}
		})
	}
}

// TestAllBackends_MissingObjects verifies how missing objects are reported.
func TestAllBackends_MissingObjects(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			b := openBackend(tst, factory)
			defer b.Close(ctx)

			container := uniqueContainer()

			rc, found, err := b.Download(ctx, container, "missing.txt")
			if err != nil {
				tst.Fatalf("Expected no error for missing object, got %v", err)
			}
			if found || rc != nil {
				tst.Errorf("Expected found=false and no reader for missing object")
			}

			if err := b.Delete(ctx, container, "missing.txt"); !errors.Is(err, data.ErrNotExist) {
				tst.Errorf("Expected ErrNotExist, got %v", err)
			}
		})
	}
}

// TestAllBackends_DeleteByPrefix verifies that only keys below the prefix are removed.
func TestAllBackends_DeleteByPrefix(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			b := openBackend(tst, factory)
			defer b.Close(ctx)

			container := uniqueContainer()
			keys := []string{"2024/a.jpg", "2024/b.jpg", "2024/deep/c.jpg", "20240/d.jpg", "other.jpg"}
			for _, key := range keys {
				if err := b.Upload(ctx, strings.NewReader(key), int64(len(key)), container, key, ""); err != nil {
					tst.Fatalf("Upload %s failed: %v", key, err)
				}
			}
			defer b.DeleteByPrefix(ctx, container, "")

			count, err := b.DeleteByPrefix(ctx, container, "2024/")
			if err != nil {
				tst.Fatalf("DeleteByPrefix failed: %v", err)
			}
			if count != 3 {
				tst.Errorf("Expected 3 deleted objects, got %d", count)
			}

			for _, key := range keys {
				expected := !strings.HasPrefix(key, "2024/")
				if got := b.Exists(ctx, container, key); got != expected {
					tst.Errorf("Exists(%s): expected %t, got %t", key, expected, got)
				}
			}
		})
	}
}

// TestAllBackends_SetContentTypeForContainer verifies that every object in the container is counted.
func TestAllBackends_SetContentTypeForContainer(t *testing.T) {
	for name, factory := range GetTestBackendFactories() {
		t.Run(name, func(tst *testing.T) {
			ctx := tst.Context()
			b := openBackend(tst, factory)
			defer b.Close(ctx)

			container := uniqueContainer()
			for i := range 3 {
				key := fmt.Sprintf("file-%d.bin", i)
				if err := b.Upload(ctx, strings.NewReader(key), int64(len(key)), container, key, ""); err != nil {
					tst.Fatalf("Upload %s failed: %v", key, err)
				}
			}
			defer b.DeleteByPrefix(ctx, container, "")

			count, err := b.SetContentTypeForContainer(ctx, container, "application/octet-stream")
			if err != nil {
				tst.Fatalf("SetContentTypeForContainer failed: %v", err)
			}
			if count != 3 {
				tst.Errorf("Expected 3 updated objects, got %d", count)
			}
		})
	}
}

// TestCapabilities_Accepts verifies the object size limit check.
func TestCapabilities_Accepts(t *testing.T) {
	tests := []struct {
		limit    int64
		size     int64
		expected bool
	}{
		{limit: 0, size: 1 << 30, expected: true},
		{limit: 512, size: -1, expected: true},
		{limit: 512, size: 512, expected: true},
		{limit: 512, size: 513, expected: false},
	}

	for _, tt := range tests {
		caps := &backend.BackendCapabilities{MaxObjectSize: tt.limit}
		if got := caps.Accepts(tt.size); got != tt.expected {
			t.Errorf("Accepts(%d) with limit %d: expected %t, got %t", tt.size, tt.limit, tt.expected, got)
		}
	}
}
