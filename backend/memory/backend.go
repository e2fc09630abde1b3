package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mwantia/mirrorfs/backend"
	"github.com/tidwall/btree"
)

// MemoryBackend keeps objects in process memory. Keys are ordered in a B-tree
// as "<container>/<key>", so prefix operations are range scans.
type MemoryBackend struct {
	mu sync.RWMutex

	objects    *btree.Map[string, *object]
	containers map[string]time.Time
}

type object struct {
	data        []byte
	contentType string
	modifyTime  time.Time
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		objects:    btree.NewMap[string, *object](0),
		containers: make(map[string]time.Time),
	}
}

// Returns the identifier name defined for this backend
func (*MemoryBackend) Name() string {
	return "memory"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend.
func (mb *MemoryBackend) Open(ctx context.Context) error {
	return nil
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (mb *MemoryBackend) Close(ctx context.Context) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	mb.objects.Clear()
	clear(mb.containers)

	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (mb *MemoryBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityObjectStorage,
			backend.CapabilityImplicitContainers,
			backend.CapabilityBatchDelete,
			backend.CapabilityContentType,
		},
	}
}

// Len returns the number of stored objects across all containers.
func (mb *MemoryBackend) Len() int {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	return mb.objects.Len()
}

func objectPath(container, key string) string {
	return container + "/" + key
}
