package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mwantia/mirrorfs/data"
)

func (lb *LocalBackend) Exists(ctx context.Context, container, key string) bool {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	fullPath, err := lb.resolvePath("", container, key)
	if err != nil {
		return false
	}

	info, err := os.Stat(fullPath)
	return err == nil && !info.IsDir()
}

func (lb *LocalBackend) Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	fullPath, err := lb.resolvePath("", container, key)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}

	if size >= 0 {
		r = io.LimitReader(r, size)
	}

	written, err := io.Copy(file, r)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err == nil && size >= 0 && written != size {
		err = fmt.Errorf("short upload: read %d of %d bytes", written, size)
	}
	if err != nil {
		os.Remove(fullPath)
		return err
	}

	return lb.writeContentType(container, key, contentType)
}

func (lb *LocalBackend) Delete(ctx context.Context, container, key string) error {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	fullPath, err := lb.resolvePath("", container, key)
	if err != nil {
		return err
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data.ErrNotExist
		}
		return err
	}
	if info.IsDir() {
		return data.ErrIsDirectory
	}

	if err := os.Remove(fullPath); err != nil {
		return err
	}

	return lb.writeContentType(container, key, "")
}

func (lb *LocalBackend) DeleteByPrefix(ctx context.Context, container, prefix string) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	keys, err := lb.walk(container, prefix)
	if err != nil {
		return 0, err
	}

	var errs data.Errors
	count := 0
	for _, key := range keys {
		fullPath, _ := lb.resolvePath("", container, key)
		if err := os.Remove(fullPath); err != nil {
			errs.Add(fmt.Errorf("'%s': %w", key, err))
			continue
		}
		lb.writeContentType(container, key, "")
		count++
	}

	return count, errs.Errors()
}

func (lb *LocalBackend) Download(ctx context.Context, container, key string) (io.ReadCloser, bool, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	fullPath, err := lb.resolvePath("", container, key)
	if err != nil {
		return nil, false, err
	}

	file, err := os.Open(fullPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		if errors.Is(err, fs.ErrPermission) {
			return nil, false, data.ErrPermission
		}
		return nil, false, err
	}

	return file, true, nil
}

func (lb *LocalBackend) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	lb.mu.Lock()
	defer lb.mu.Unlock()

	keys, err := lb.walk(container, "")
	if err != nil {
		return 0, err
	}

	for i, key := range keys {
		if err := lb.writeContentType(container, key, contentType); err != nil {
			return i, err
		}
	}

	return len(keys), nil
}

// ContentType returns the content type stored with container/key.
func (lb *LocalBackend) ContentType(container, key string) (string, error) {
	lb.mu.RLock()
	defer lb.mu.RUnlock()

	sidecar, err := lb.resolvePath(metaDirectory, container, key)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(sidecar)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}

	return string(content), err
}

// writeContentType stores the sidecar, or removes it for an empty content type.
// Must be called with lock held.
func (lb *LocalBackend) writeContentType(container, key, contentType string) error {
	sidecar, err := lb.resolvePath(metaDirectory, container, key)
	if err != nil {
		return err
	}

	if contentType == "" {
		if err := os.Remove(sidecar); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(sidecar), 0755); err != nil {
		return err
	}

	return os.WriteFile(sidecar, []byte(contentType), 0644)
}

// walk lists every object key in container starting with prefix.
// Must be called with lock held.
func (lb *LocalBackend) walk(container, prefix string) ([]string, error) {
	base, err := lb.resolvePath("", container, "")
	if err != nil {
		return nil, err
	}

	var keys []string
	err = filepath.WalkDir(base, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if entry.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		key := filepath.ToSlash(rel)
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
		return nil
	})

	return keys, err
}
