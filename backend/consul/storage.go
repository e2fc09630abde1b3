package consul

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/consul/api"
	"github.com/mwantia/mirrorfs/data"
)

func (cb *ConsulBackend) Exists(ctx context.Context, container, key string) bool {
	pair, _, err := cb.kv.Get(cb.objectKey(container, key), queryOptions(ctx))
	return err == nil && pair != nil
}

func (cb *ConsulBackend) Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error {
	capabilities := cb.GetCapabilities()
	if !capabilities.Accepts(size) {
		return fmt.Errorf("object of %d bytes exceeds max object size of %d bytes (Consul KV limit: 512KB)", size, capabilities.MaxObjectSize)
	}

	// Read one byte past the limit to detect oversized streams of unknown size
	buffer, err := io.ReadAll(io.LimitReader(r, capabilities.MaxObjectSize+1))
	if err != nil {
		return err
	}
	if int64(len(buffer)) > capabilities.MaxObjectSize {
		return fmt.Errorf("object exceeds max object size of %d bytes (Consul KV limit: 512KB)", capabilities.MaxObjectSize)
	}
	if size >= 0 && int64(len(buffer)) != size {
		return fmt.Errorf("short upload: read %d of %d bytes", len(buffer), size)
	}

	if _, err := cb.kv.Put(&api.KVPair{
		Key:   cb.objectKey(container, key),
		Value: buffer,
	}, writeOptions(ctx)); err != nil {
		return err
	}

	if contentType == "" {
		_, err = cb.kv.Delete(cb.contentTypeKey(container, key), writeOptions(ctx))
		return err
	}

	_, err = cb.kv.Put(&api.KVPair{
		Key:   cb.contentTypeKey(container, key),
		Value: []byte(contentType),
	}, writeOptions(ctx))
	return err
}

func (cb *ConsulBackend) Delete(ctx context.Context, container, key string) error {
	objectKey := cb.objectKey(container, key)

	pair, _, err := cb.kv.Get(objectKey, queryOptions(ctx))
	if err != nil {
		return err
	}
	if pair == nil {
		return data.ErrNotExist
	}

	if _, err := cb.kv.Delete(objectKey, writeOptions(ctx)); err != nil {
		return err
	}

	_, err = cb.kv.Delete(cb.contentTypeKey(container, key), writeOptions(ctx))
	return err
}

func (cb *ConsulBackend) DeleteByPrefix(ctx context.Context, container, prefix string) (int, error) {
	// The container segment always ends with '/', so "media" never matches "media2"
	objectPrefix := cb.objectKey(container, "") + prefix

	keys, _, err := cb.kv.Keys(objectPrefix, "", queryOptions(ctx))
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}

	if _, err := cb.kv.DeleteTree(objectPrefix, writeOptions(ctx)); err != nil {
		return 0, err
	}

	_, err = cb.kv.DeleteTree(cb.contentTypeKey(container, "")+prefix, writeOptions(ctx))
	return len(keys), err
}

func (cb *ConsulBackend) Download(ctx context.Context, container, key string) (io.ReadCloser, bool, error) {
	pair, _, err := cb.kv.Get(cb.objectKey(container, key), queryOptions(ctx))
	if err != nil {
		return nil, false, err
	}
	if pair == nil {
		return nil, false, nil
	}

	return io.NopCloser(bytes.NewReader(pair.Value)), true, nil
}

func (cb *ConsulBackend) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	objectPrefix := cb.objectKey(container, "")

	keys, _, err := cb.kv.Keys(objectPrefix, "", queryOptions(ctx))
	if err != nil {
		return 0, err
	}

	errs := data.Errors{}
	updated := 0
	for _, consulKey := range keys {
		key := consulKey[len(objectPrefix):]
		if _, err := cb.kv.Put(&api.KVPair{
			Key:   cb.contentTypeKey(container, key),
			Value: []byte(contentType),
		}, writeOptions(ctx)); err != nil {
			errs.Add(fmt.Errorf("update '%s': %w", key, err))
			continue
		}
		updated++
	}

	return updated, errs.Errors()
}

func queryOptions(ctx context.Context) *api.QueryOptions {
	return (&api.QueryOptions{}).WithContext(ctx)
}

func writeOptions(ctx context.Context) *api.WriteOptions {
	return (&api.WriteOptions{}).WithContext(ctx)
}
