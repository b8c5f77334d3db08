package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore keeps every collection as a single JSON document in one table.
// It implements the same whole-document contract as FileStore; the embedded
// engine only buys durability of individual writes, not record-level updates.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database file at path and prepares the
// collections table.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "tracker.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, unavailable("mkdir", path, err)
		}
	}
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, unavailable("open", path, err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, unavailable("open", path, err)
	}
	// journal_mode may not be supported in some contexts (e.g., in-memory). Ignore errors.
	_, _ = db.Exec(`PRAGMA journal_mode=WAL`)
	if _, err := db.Exec(`PRAGMA busy_timeout=5000`); err != nil {
		_ = db.Close()
		return nil, unavailable("open", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS collections (
        name TEXT PRIMARY KEY,
        doc TEXT NOT NULL,
        updated_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
    )`); err != nil {
		_ = db.Close()
		return nil, unavailable("open", path, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Load(ctx context.Context, name string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT doc FROM collections WHERE name = ?`, name).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return s.Save(ctx, name, v)
	}
	if err != nil {
		return unavailable("read", name, err)
	}
	if err := json.Unmarshal([]byte(doc), v); err != nil {
		return s.Save(ctx, name, v)
	}
	return nil
}

func (s *SQLiteStore) Save(ctx context.Context, name string, v any) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	if err != nil {
		return unavailable("encode", name, err)
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO collections (name, doc, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
        ON CONFLICT(name) DO UPDATE SET doc = excluded.doc, updated_at = CURRENT_TIMESTAMP`, name, string(data))
	if err != nil {
		return unavailable("write", name, err)
	}
	return nil
}
