package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/mwantia/mirrorfs/journal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteJournal stores mirror failures in a SQLite database.
type SQLiteJournal struct {
	db *sql.DB
}

// NewSQLiteJournal opens (or creates) the journal at dbPath.
// The dbPath can be ":memory:" for an in-memory database or a file path.
func NewSQLiteJournal(dbPath string) (*SQLiteJournal, error) {
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

	j := &SQLiteJournal{
		db: db,
	}

	if err := j.initSchema(); err != nil {
		db.Close()
		return nil, err
	}

	return j, nil
}

// initSchema creates the database schema.
func (j *SQLiteJournal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS mirror_failures (
		id TEXT PRIMARY KEY,
		created_at INTEGER NOT NULL,
		area TEXT NOT NULL,
		operation TEXT NOT NULL,
		container TEXT NOT NULL,
		key TEXT NOT NULL,
		error TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_mirror_failures_created_at ON mirror_failures(created_at);
	`

	_, err := j.db.Exec(schema)
	return err
}

func (j *SQLiteJournal) Record(ctx context.Context, entry *journal.Entry) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO mirror_failures (id, created_at, area, operation, container, key, error)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.ID, entry.Time.UnixNano(), entry.Area, entry.Operation, entry.Container, entry.Key, entry.Error)

	return err
}

func (j *SQLiteJournal) List(ctx context.Context, limit int) ([]*journal.Entry, error) {
	query := `SELECT id, created_at, area, operation, container, key, error
		FROM mirror_failures ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*journal.Entry
	for rows.Next() {
		var entry journal.Entry
		var createdAt int64
		if err := rows.Scan(&entry.ID, &createdAt, &entry.Area, &entry.Operation,
			&entry.Container, &entry.Key, &entry.Error); err != nil {
			return nil, err
		}

		entry.Time = time.Unix(0, createdAt).UTC()
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
