// Package kvstore provides a SQLite-backed store of a single JSON value per
// fixed key. It is the durable half of the content repository: the whole post
// list is serialized under one key and rewritten on every mutation.
//
// The container is versioned (database file + table name + schema version via
// PRAGMA user_version). Bumping SchemaVersion drops and recreates the table,
// which is the migration path for future shape changes.
package kvstore

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const (
	// TableName is the object-store half of the versioned container triple.
	TableName = "blog_posts"
	// SchemaVersion is recorded in PRAGMA user_version.
	SchemaVersion = 1
)

// Store wraps a sql.DB holding the single-key blob table.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the database at dsn and ensures the versioned
// schema. Opening an existing database recorded under a different schema
// version recreates the table, discarding its contents.
func Open(dsn string) (*Store, error) {
	conn, err := sql.Open("sqlite3", dsn+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("kvstore: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("kvstore: ping: %w", err)
	}
	if err := migrate(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}
	return &Store{conn: conn}, nil
}

func migrate(conn *sql.DB) error {
	var version int
	if err := conn.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version != SchemaVersion {
		if _, err := conn.Exec("DROP TABLE IF EXISTS " + TableName); err != nil {
			return fmt.Errorf("drop stale table: %w", err)
		}
	}
	if _, err := conn.Exec(`CREATE TABLE IF NOT EXISTS ` + TableName + ` (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	if _, err := conn.Exec(fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Read returns the value stored under key. ok is false when the key is absent.
func (s *Store) Read(ctx context.Context, key string) (value []byte, ok bool, err error) {
	row := s.conn.QueryRowContext(ctx, "SELECT value FROM "+TableName+" WHERE key = ?", key)
	if err := row.Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("kvstore: read %q: %w", key, err)
	}
	return value, true, nil
}

// Write replaces the value under key in a single transaction.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.conn.ExecContext(ctx,
		"INSERT INTO "+TableName+" (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("kvstore: write %q: %w", key, err)
	}
	return nil
}

// Delete removes the value under key. Deleting an absent key is a no-op.
func (s *Store) Delete(ctx context.Context, key string) error {
	if _, err := s.conn.ExecContext(ctx, "DELETE FROM "+TableName+" WHERE key = ?", key); err != nil {
		return fmt.Errorf("kvstore: delete %q: %w", key, err)
	}
	return nil
}
