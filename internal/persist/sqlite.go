package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// DefaultSimName is the row used when no name is configured.
const DefaultSimName = "default"

// SQLiteStore keeps named sim documents as JSON blobs in one table.
type SQLiteStore struct {
	db   *sql.DB
	path string
	name string
}

// OpenSQLite opens (or creates) the database at path and selects the sim
// stored under name.
func OpenSQLite(path, name string) (*SQLiteStore, error) {
	if path == "" {
		path = "blockca.db"
	}
	if name == "" {
		name = DefaultSimName
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sims (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sims table: %w", err)
	}
	return &SQLiteStore{db: db, path: path, name: name}, nil
}

func (s *SQLiteStore) String() string { return fmt.Sprintf("sqlite:%s#%s", s.path, s.name) }

// Name returns the selected sim.
func (s *SQLiteStore) Name() string { return s.name }

// WithName returns a store sharing the same database but addressing another
// sim. Closing either closes both.
func (s *SQLiteStore) WithName(name string) *SQLiteStore {
	if name == "" {
		name = DefaultSimName
	}
	return &SQLiteStore{db: s.db, path: s.path, name: name}
}

// ReadDocument returns the payload stored under the selected name.
func (s *SQLiteStore) ReadDocument(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM sims WHERE name = ?`, s.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select sim %q: %w", s.name, err)
	}
	return payload, nil
}

// WriteDocument upserts the payload under the selected name.
func (s *SQLiteStore) WriteDocument(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sims(name, payload, updated_at) VALUES(?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("upsert sim %q: %w", s.name, err)
	}
	return nil
}

// List returns the names of every stored sim in order.
func (s *SQLiteStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM sims ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list sims: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Delete removes the selected sim. Deleting a missing sim is not an error.
func (s *SQLiteStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sims WHERE name = ?`, s.name); err != nil {
		return fmt.Errorf("delete sim %q: %w", s.name, err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
