package store

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// ErrNoSnapshot is returned by Load when no state has been persisted yet.
var ErrNoSnapshot = errors.New("no snapshot persisted")

// SnapshotStore is the durability gateway: the full engine state travels as a
// single opaque blob, loaded once at cold start and overwritten wholesale on
// every mutation.
type SnapshotStore interface {
	Load() ([]byte, error)
	Save(data []byte) error
	Close() error
}

// SQLiteStore persists the snapshot blob in a single-row SQLite table.
// Uses WAL mode for concurrent read access during writes.
type SQLiteStore struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies the
// snapshot schema. Idempotent - safe to call on an existing database.
func Open(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("store: open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: connect to database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit connections
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, err
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("store: execute %q: %w", pragma, err)
		}
	}

	return nil
}

// Load returns the persisted snapshot blob, or ErrNoSnapshot on a cold store.
func (s *SQLiteStore) Load() ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM snapshot WHERE id = 1").Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("store: load snapshot: %w", err)
	}
	return data, nil
}

// Save overwrites the snapshot row with the given blob.
func (s *SQLiteStore) Save(data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO snapshot (id, data, updated_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		data, time.Now().UnixMilli())
	if err != nil {
		return fmt.Errorf("store: save snapshot: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// MemoryStore is a concurrency-safe in-memory SnapshotStore for tests.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved blob, or ErrNoSnapshot if nothing was saved.
func (m *MemoryStore) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrNoSnapshot
	}
	return append([]byte(nil), m.data...), nil
}

// Save replaces the stored blob.
func (m *MemoryStore) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

// Close is a no-op for the in-memory store.
func (m *MemoryStore) Close() error {
	return nil
}
