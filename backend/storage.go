package backend

import (
	"context"
	"io"
)

// ObjectStorageBackend is a thin synchronous client over a container-based
// key/object store. Every call is independently failable and never retried.
type ObjectStorageBackend interface {
	Backend

	// Exists reports whether an object is stored at container/key.
	// Any failure to fetch its metadata is reported as false.
	Exists(ctx context.Context, container, key string) bool

	// Upload stores size bytes read from r at container/key, creating the
	// container if needed and replacing any existing object. An empty
	// contentType leaves the content type unset. A negative size uploads
	// until r is drained.
	Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error

	// Delete removes the object at container/key and fails with
	// data.ErrNotExist when no such object exists.
	Delete(ctx context.Context, container, key string) error

	// DeleteByPrefix removes every object in container whose key starts
	// with prefix and returns the number of removed objects.
	DeleteByPrefix(ctx context.Context, container, prefix string) (int, error)

	// Download returns the content at container/key. A missing object is
	// reported through found=false and a nil error.
	Download(ctx context.Context, container, key string) (rc io.ReadCloser, found bool, err error)

	// SetContentTypeForContainer rewrites the content type of every object
	// in container and returns the number of updated objects.
	SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error)
}
