package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mwantia/mirrorfs/data"
)

func (sb *SQLiteBackend) Exists(ctx context.Context, container, key string) bool {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	_, exists := sb.keys.Get(objectPath(container, key))
	return exists
}

func (sb *SQLiteBackend) Upload(ctx context.Context, r io.Reader, size int64, container, key, contentType string) error {
	if size >= 0 {
		r = io.LimitReader(r, size)
	}

	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if size >= 0 && int64(len(content)) != size {
		return fmt.Errorf("short upload: read %d of %d bytes", len(content), size)
	}

	sb.mu.Lock()
	defer sb.mu.Unlock()

	if _, err := sb.db.ExecContext(ctx, `
		INSERT INTO mirror_objects (container, key, content, size, content_type, modify_time)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (container, key) DO UPDATE SET
			content = excluded.content,
			size = excluded.size,
			content_type = excluded.content_type,
			modify_time = excluded.modify_time
	`, container, key, content, len(content), nullString(contentType), time.Now().UnixNano()); err != nil {
		return err
	}

	sb.keys.Set(objectPath(container, key), int64(len(content)))
	return nil
}

func (sb *SQLiteBackend) Delete(ctx context.Context, container, key string) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if _, exists := sb.keys.Get(objectPath(container, key)); !exists {
		return data.ErrNotExist
	}

	if _, err := sb.db.ExecContext(ctx,
		"DELETE FROM mirror_objects WHERE container = ? AND key = ?",
		container, key); err != nil {
		return err
	}

	sb.keys.Delete(objectPath(container, key))
	return nil
}

func (sb *SQLiteBackend) DeleteByPrefix(ctx context.Context, container, prefix string) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	keys := sb.scan(container, prefix)
	if len(keys) == 0 {
		return 0, nil
	}

	tx, err := sb.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, "DELETE FROM mirror_objects WHERE container = ? AND key = ?")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	for _, treeKey := range keys {
		if _, err := stmt.ExecContext(ctx, container, strings.TrimPrefix(treeKey, objectPath(container, ""))); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}

	for _, treeKey := range keys {
		sb.keys.Delete(treeKey)
	}

	return len(keys), nil
}

func (sb *SQLiteBackend) Download(ctx context.Context, container, key string) (io.ReadCloser, bool, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	var content []byte
	err := sb.db.QueryRowContext(ctx,
		"SELECT content FROM mirror_objects WHERE container = ? AND key = ?",
		container, key).Scan(&content)

	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	return io.NopCloser(bytes.NewReader(content)), true, nil
}

func (sb *SQLiteBackend) SetContentTypeForContainer(ctx context.Context, container, contentType string) (int, error) {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	result, err := sb.db.ExecContext(ctx,
		"UPDATE mirror_objects SET content_type = ? WHERE container = ?",
		nullString(contentType), container)
	if err != nil {
		return 0, err
	}

	count, err := result.RowsAffected()
	return int(count), err
}

// ContentType returns the content type stored with container/key.
func (sb *SQLiteBackend) ContentType(ctx context.Context, container, key string) (string, error) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()

	var contentType sql.NullString
	err := sb.db.QueryRowContext(ctx,
		"SELECT content_type FROM mirror_objects WHERE container = ? AND key = ?",
		container, key).Scan(&contentType)

	if err == sql.ErrNoRows {
		return "", data.ErrNotExist
	}

	return contentType.String, err
}

// scan collects every tree key below container/prefix.
// Must be called with lock held.
func (sb *SQLiteBackend) scan(container, prefix string) []string {
	pivot := objectPath(container, prefix)

	var keys []string
	sb.keys.Ascend(pivot, func(key string, _ int64) bool {
		if !strings.HasPrefix(key, pivot) {
			return false
		}
		keys = append(keys, key)
		return true
	})

	return keys
}

// Helper functions for nullable fields
func nullString(val string) sql.NullString {
	return sql.NullString{
		String: val,
		Valid:  val != "",
	}
}
