package data

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return db, nil
}

// Repository is a persistent string key-value store.
type Repository struct {
	db *sql.DB
}

var (
	duckMu  sync.Mutex
	duckDBs = map[string]*sql.DB{}
)

// NewDuckDBRepository opens (or reuses) the database at path. Every
// repository for the same path shares one connection pool.
func NewDuckDBRepository(path string) (*Repository, error) {
	duckMu.Lock()
	defer duckMu.Unlock()

	if db, ok := duckDBs[path]; ok {
		return &Repository{db: db}, nil
	}
	db, err := InitDuckDB(path)
	if err != nil {
		return nil, err
	}
	duckDBs[path] = db
	return &Repository{db: db}, nil
}

// Get returns the value stored under key. found is false when the key was
// never written.
func (r *Repository) Get(key string) (string, bool, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

func (r *Repository) Set(key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`, key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (r *Repository) Delete(key string) error {
	if _, err := r.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

func (r *Repository) Keys() ([]string, error) {
	rows, err := r.db.Query(`SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// Close releases the shared connection pool for this repository's path.
func (r *Repository) Close() error {
	duckMu.Lock()
	defer duckMu.Unlock()
	for path, db := range duckDBs {
		if db == r.db {
			delete(duckDBs, path)
		}
	}
	return r.db.Close()
}
