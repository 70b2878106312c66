package kv

import (
	"context"
	"database/sql"

	"cafex/internal/domain/repository"
	"cafex/internal/errors"

	_ "modernc.org/sqlite" // registers the pure-Go "sqlite" driver
)

const createTableStmt = `
CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value BLOB NOT NULL
)`

// SQLiteStore is a durable KeyValueStore backed by a single sqlite file on
// the device. One table, one row per logical collection.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens (creating if needed) the sqlite file at path.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite store at %s", path)
	}

	// Single writer by construction; a second connection would only contend.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(createTableStmt); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &SQLiteStore{db: db}, nil
}

// Get returns the stored value for key, or repository.ErrKeyNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrKeyNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read key %s", key)
	}

	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		return errors.Wrapf(err, "failed to write key %s", key)
	}

	return nil
}

// Delete removes key entirely; deleting an absent key is a no-op.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return errors.Wrapf(err, "failed to delete key %s", key)
	}

	return nil
}

// Wipe removes every key.
func (s *SQLiteStore) Wipe(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return errors.Wrap(err, "failed to wipe store")
	}

	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
