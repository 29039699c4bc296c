// Package contentstore implements the key-value blob service the
// brochure engine's store client speaks: GET and PUT of JSON values
// under string keys, guarded by a static API key, persisted in SQLite.
// Running it is optional; a site without a configured store serves its
// bundled default content.
package contentstore

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a requested key has no value.
var ErrNotFound = sql.ErrNoRows

// Store wraps a SQLite database holding one JSON blob per key.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the SQLite database at path, ensures the
// data directory exists, and runs schema migrations.
func NewStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// WAL allows concurrent reads during a write; the busy timeout makes
	// writers wait instead of failing with SQLITE_BUSY; synchronous=NORMAL
	// is safe under WAL and skips an fsync per transaction.
	if _, err := db.Exec(`
		PRAGMA journal_mode=WAL;
		PRAGMA busy_timeout=5000;
		PRAGMA synchronous=NORMAL;
	`); err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS entries (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`)
	return err
}

// Get returns the raw JSON value stored under key, or ErrNotFound.
func (s *Store) Get(key string) (json.RawMessage, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM entries WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// Put stores value under key, replacing any previous value in full.
// The store relies on SQLite's own atomicity for the single write; it
// performs no further locking or version checks.
func (s *Store) Put(key string, value json.RawMessage) error {
	_, err := s.db.Exec(`INSERT OR REPLACE INTO entries (key, value, updated_at) VALUES (?, ?, ?)`,
		key, string(value), time.Now().UTC().Format(time.RFC3339))
	return err
}

// UpdatedAt returns the timestamp of the last write to key, or
// ErrNotFound if the key has never been written.
func (s *Store) UpdatedAt(key string) (time.Time, error) {
	var raw string
	err := s.db.QueryRow(`SELECT updated_at FROM entries WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, raw)
}
