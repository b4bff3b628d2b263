package cell

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DBFileName is the database file created inside the data directory.
const DBFileName = "statics.db"

var (
	ErrClosed    = errors.New("cell store is closed")
	ErrNameEmpty = errors.New("cell name must not be empty")
)

// Store is a SQLite database holding named cells and their write history.
type Store struct {
	mu     sync.RWMutex
	db     *sql.DB
	path   string
	closed bool
}

// Record is one write recorded in a cell's history.
type Record struct {
	HistoryID string
	Name      string
	Version   int64
	Value     json.RawMessage
	CreatedAt time.Time
}

// Open opens (creating if needed) the cell database in dataDir.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	path := filepath.Join(dataDir, DBFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// SQLite allows one writer; a single connection keeps version bumps serial.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	Logger().Debug("cell store opened", zap.String("path", path))
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close releases the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

// load returns the raw value and version of a cell. ok is false when the
// cell has never been written.
func (s *Store) load(name string) (raw []byte, version int64, ok bool, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, 0, false, ErrClosed
	}

	var value string
	err = s.db.QueryRow("SELECT value, version FROM cells WHERE name = ?", name).Scan(&value, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, false, nil
	}
	if err != nil {
		return nil, 0, false, fmt.Errorf("query cell %s: %w", name, err)
	}
	return []byte(value), version, true, nil
}

// save writes raw as the next version of a cell and records it in history.
func (s *Store) save(name string, raw []byte) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return 0, ErrClosed
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var version int64
	err = tx.QueryRow("SELECT version FROM cells WHERE name = ?", name).Scan(&version)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("query cell version: %w", err)
	}
	version++

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = tx.Exec(
		`INSERT INTO cells (name, value, version, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, version = excluded.version, updated_at = excluded.updated_at`,
		name, string(raw), version, now,
	)
	if err != nil {
		return 0, fmt.Errorf("persist cell %s: %w", name, err)
	}

	_, err = tx.Exec(
		"INSERT INTO cell_history (history_id, name, version, value, created_at) VALUES (?, ?, ?, ?, ?)",
		historyID(), name, version, string(raw), now,
	)
	if err != nil {
		return 0, fmt.Errorf("record cell history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit cell %s: %w", name, err)
	}
	return version, nil
}

// History returns the recorded writes of a cell, oldest first.
func (s *Store) History(name string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	rows, err := s.db.Query(
		"SELECT history_id, name, version, value, created_at FROM cell_history WHERE name = ? ORDER BY version",
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r         Record
			value     string
			createdAt string
		)
		if err := rows.Scan(&r.HistoryID, &r.Name, &r.Version, &value, &createdAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		r.Value = json.RawMessage(value)
		r.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// historyID generates a UUID v7 for a history row.
func historyID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// SQLite is a named cell persisted in a Store. Its Load and Store methods
// have the reader/writer signatures expected by reg.ReadWrite; failures are
// logged and kept for Err, and Load falls back to the last known value.
type SQLite[T any] struct {
	store *Store
	name  string

	mu   sync.Mutex
	last T
	err  error
}

// NewSQLite binds a cell named name in s. A cell that has never been
// written reads as init.
func NewSQLite[T any](s *Store, name string, init T) (*SQLite[T], error) {
	if name == "" {
		return nil, ErrNameEmpty
	}
	c := &SQLite[T]{store: s, name: name, last: init}
	if _, err := c.Get(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns the cell name.
func (c *SQLite[T]) Name() string { return c.name }

// Get reads the current value.
func (c *SQLite[T]) Get() (T, error) {
	raw, _, ok, err := c.store.load(c.name)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		return c.last, err
	}
	if !ok {
		return c.last, nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return c.last, fmt.Errorf("decode cell %s: %w", c.name, err)
	}
	c.last = v
	return v, nil
}

// Put writes v as the next version and returns that version.
func (c *SQLite[T]) Put(v T) (int64, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return 0, fmt.Errorf("encode cell %s: %w", c.name, err)
	}
	version, err := c.store.save(c.name, raw)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.last = v
	c.mu.Unlock()
	return version, nil
}

// Load is Get for use as a reader.
func (c *SQLite[T]) Load() T {
	v, err := c.Get()
	c.keep(err)
	return v
}

// Store is Put for use as a writer.
func (c *SQLite[T]) Store(v T) {
	_, err := c.Put(v)
	c.keep(err)
}

// Err returns the error of the last Load or Store, if any.
func (c *SQLite[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// History returns the recorded writes of the cell.
func (c *SQLite[T]) History() ([]Record, error) {
	return c.store.History(c.name)
}

func (c *SQLite[T]) keep(err error) {
	if err != nil {
		Logger().Warn("cell access failed", zap.String("cell", c.name), zap.Error(err))
	}
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}
