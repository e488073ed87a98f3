// ABOUTME: SQLite-backed project metadata store for persistent key-value entries
// ABOUTME: Entries are scoped by namespace and survive application restarts

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store implements the MetadataStore interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) a metadata database at filePath.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "metadata.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the metadata table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS project_metadata (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value TEXT NOT NULL,
			PRIMARY KEY (namespace, key)
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// ReadEntry returns the value stored under (namespace, key). The boolean
// reports whether the entry exists.
func (s *Store) ReadEntry(namespace, key string) (string, bool, error) {
	if namespace == "" || key == "" {
		return "", false, errors.New("namespace and key cannot be empty")
	}

	var value string
	query := "SELECT value FROM project_metadata WHERE namespace = ? AND key = ?"
	err := s.db.QueryRow(query, namespace, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read metadata entry: %w", err)
	}

	return value, true, nil
}

// WriteEntry stores value under (namespace, key), replacing any existing entry.
func (s *Store) WriteEntry(namespace, key, value string) error {
	if namespace == "" || key == "" {
		return errors.New("namespace and key cannot be empty")
	}

	query := `
		INSERT INTO project_metadata (namespace, key, value) VALUES (?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET value = excluded.value
	`
	if _, err := s.db.Exec(query, namespace, key, value); err != nil {
		return fmt.Errorf("failed to write metadata entry: %w", err)
	}

	return nil
}

// RemoveEntry deletes the entry under (namespace, key). Removing an absent
// entry is not an error.
func (s *Store) RemoveEntry(namespace, key string) error {
	if namespace == "" || key == "" {
		return errors.New("namespace and key cannot be empty")
	}

	query := "DELETE FROM project_metadata WHERE namespace = ? AND key = ?"
	if _, err := s.db.Exec(query, namespace, key); err != nil {
		return fmt.Errorf("failed to remove metadata entry: %w", err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
