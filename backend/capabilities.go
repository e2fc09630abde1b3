package backend

import "slices"

// BackendCapability represents a capability that a backend can provide
type BackendCapability string

const (
	CapabilityObjectStorage BackendCapability = "object_storage"
	// Container creation happens implicitly on first upload.
	CapabilityImplicitContainers BackendCapability = "implicit_containers"
	// Prefix deletion is executed as a single batched call instead of one request per object.
	CapabilityBatchDelete BackendCapability = "batch_delete"
	// Objects keep a content type next to their payload.
	CapabilityContentType BackendCapability = "content_type"
)

// BackendCapabilities describes what a backend supports
type BackendCapabilities struct {
	Capabilities  []BackendCapability `json:"capabilities"`
	MaxObjectSize int64               `json:"max_object_size"`
}

// Contains checks if a capability is supported
func (bc *BackendCapabilities) Contains(cap BackendCapability) bool {
	return slices.Contains(bc.Capabilities, cap)
}

// Accepts reports whether an object of size bytes fits into the backend.
// Unknown sizes (negative) and unlimited backends (zero limit) always fit.
func (bc *BackendCapabilities) Accepts(size int64) bool {
	return bc.MaxObjectSize <= 0 || size < 0 || size <= bc.MaxObjectSize
}
