package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mwantia/mirrorfs/backend"
)

// metaDirectory holds the content type sidecars next to the containers.
const metaDirectory = ".content-types"

// LocalBackend stores objects as plain files below a root directory, laid out
// as "<root>/<container>/<key>". It is meant for mirrors onto a second disk or
// a network mount.
type LocalBackend struct {
	mu   sync.RWMutex
	root string
}

func NewLocalBackend(root string) (*LocalBackend, error) {
	if strings.TrimSpace(root) == "" {
		return nil, fmt.Errorf("local: root must be defined")
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	return &LocalBackend{
		root: abs,
	}, nil
}

// Returns the identifier name defined for this backend
func (*LocalBackend) Name() string {
	return "local"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend.
func (lb *LocalBackend) Open(ctx context.Context) error {
	return os.MkdirAll(lb.root, 0755)
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (lb *LocalBackend) Close(ctx context.Context) error {
	return nil
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (lb *LocalBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityObjectStorage,
			backend.CapabilityImplicitContainers,
			backend.CapabilityContentType,
		},
	}
}

// resolvePath maps container/key below the root and rejects anything that
// would escape it or collide with the sidecar directory.
func (lb *LocalBackend) resolvePath(tree, container, key string) (string, error) {
	if container == "" || container == metaDirectory || strings.ContainsAny(container, `/\`) {
		return "", fmt.Errorf("local: invalid container '%s'", container)
	}

	base := filepath.Join(lb.root, container)
	if tree != "" {
		base = filepath.Join(lb.root, tree, container)
	}

	full := filepath.Join(base, filepath.FromSlash(key))
	if full != base && !strings.HasPrefix(full, base+string(filepath.Separator)) {
		return "", fmt.Errorf("local: key '%s' escapes container '%s'", key, container)
	}

	return full, nil
}
