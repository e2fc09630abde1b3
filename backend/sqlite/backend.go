package sqlite

import (
	"context"
	"database/sql"
	"sync"

	"github.com/mwantia/mirrorfs/backend"
	"github.com/tidwall/btree"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteBackend stores objects as blobs in a single SQLite database:
//
// Layer 1: In-memory B-tree of "<container>/<key>" for existence checks and prefix scans
// Layer 2: SQLite table (mirror_objects) holding content, size and content type
//
// The B-tree is rebuilt from the table on Open.
type SQLiteBackend struct {
	mu sync.RWMutex
	db *sql.DB

	// In-memory B-tree mirroring the primary keys of mirror_objects
	keys *btree.Map[string, int64]
}

// NewSQLiteBackend creates a new SQLite-backed object store.
// The dbPath can be ":memory:" for an in-memory database or a file path.
func NewSQLiteBackend(dbPath string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	// Every pooled connection to ":memory:" would see its own empty database
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, err
	}

	backend := &SQLiteBackend{
		db:   db,
		keys: btree.NewMap[string, int64](0),
	}

	if err := backend.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return backend, nil
}

// initSchema creates the database schema.
func (sb *SQLiteBackend) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mirror_objects (
		container TEXT NOT NULL,
		key TEXT NOT NULL,
		content BLOB NOT NULL,
		size INTEGER NOT NULL CHECK(size >= 0),
		content_type TEXT,
		modify_time INTEGER NOT NULL,
		PRIMARY KEY (container, key)
	);
	`

	_, err := sb.db.Exec(schema)
	return err
}

// Returns the identifier name defined for this backend
func (*SQLiteBackend) Name() string {
	return "sqlite"
}

// Open is part of the lifecycle behaviour and gets called when opening this backend.
func (sb *SQLiteBackend) Open(ctx context.Context) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	// Verify database connection
	if err := sb.db.PingContext(ctx); err != nil {
		return err
	}

	// Load all keys into memory B-tree
	rows, err := sb.db.QueryContext(ctx, "SELECT container, key, size FROM mirror_objects")
	if err != nil {
		return err
	}
	defer rows.Close()

	sb.keys.Clear()
	for rows.Next() {
		var container, key string
		var size int64
		if err := rows.Scan(&container, &key, &size); err != nil {
			return err
		}
		sb.keys.Set(objectPath(container, key), size)
	}

	return rows.Err()
}

// Close is part of the lifecycle behaviour and gets called when closing this backend.
func (sb *SQLiteBackend) Close(ctx context.Context) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	sb.keys.Clear()
	return sb.db.Close()
}

// GetCapabilities returns a list of capabilities supported by this backend.
func (sb *SQLiteBackend) GetCapabilities() *backend.BackendCapabilities {
	return &backend.BackendCapabilities{
		Capabilities: []backend.BackendCapability{
			backend.CapabilityObjectStorage,
			backend.CapabilityImplicitContainers,
			backend.CapabilityBatchDelete,
			backend.CapabilityContentType,
		},
	}
}

func objectPath(container, key string) string {
	return container + "/" + key
}
