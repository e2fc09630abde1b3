package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwantia/mirrorfs/data"
)

func (mb *MemoryBackend) Exists(ctx context.Context, container, key string) bool {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	_, exists := mb.objects.Get(objectPath(container, key))
	return exists
}

func (mb *MemoryBackend) Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error {
	if size >= 0 {
		r = io.LimitReader(r, size)
	}

	buffer, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if size >= 0 && int64(len(buffer)) != size {
		return fmt.Errorf("short upload: read %d of %d bytes", len(buffer), size)
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	now := time.Now()
	if _, exists := mb.containers[container]; !exists {
		mb.containers[container] = now
	}

	mb.objects.Set(objectPath(container, key), &object{
		data:        buffer,
		contentType: contentType,
		modifyTime:  now,
	})

	return nil
}

func (mb *MemoryBackend) Delete(ctx context.Context, container, key string) error {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	if _, deleted := mb.objects.Delete(objectPath(container, key)); !deleted {
		return data.ErrNotExist
	}

	return nil
}

func (mb *MemoryBackend) DeleteByPrefix(ctx context.Context, container, prefix string) (int, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	keys := mb.scan(container, prefix)
	for _, key := range keys {
		mb.objects.Delete(key)
	}

	return len(keys), nil
}

func (mb *MemoryBackend) Download(ctx context.Context, container, key string) (io.ReadCloser, bool, error) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	obj, exists := mb.objects.Get(objectPath(container, key))
	if !exists {
		return nil, false, nil
	}

	return io.NopCloser(bytes.NewReader(bytes.Clone(obj.data))), true, nil
}

func (mb *MemoryBackend) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	mb.mu.Lock()
	defer mb.mu.Unlock()

	keys := mb.scan(container, "")
	for _, key := range keys {
		obj, _ := mb.objects.Get(key)
		obj.contentType = contentType
	}

	return len(keys), nil
}

// ContentType returns the content type stored with container/key.
func (mb *MemoryBackend) ContentType(container, key string) (string, bool) {
	mb.mu.RLock()
	defer mb.mu.RUnlock()

	obj, exists := mb.objects.Get(objectPath(container, key))
	if !exists {
		return "", false
	}

	return obj.contentType, true
}

// scan collects every tree key below container/prefix.
// Must be called with lock held.
func (mb *MemoryBackend) scan(container, prefix string) []string {
	pivot := objectPath(container, prefix)

	var keys []string
	mb.objects.Ascend(pivot, func(key string, _ *object) bool {
		if !strings.HasPrefix(key, pivot) {
			return false
		}
		keys = append(keys, key)
		return true
	})

	return keys
}
