package memo

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS slots (
	name       TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at DATETIME NOT NULL
);
`

// SQLiteDB holds named slots in a single sqlite table
type SQLiteDB struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the database at dbPath
func OpenSQLite(dbPath string) (*SQLiteDB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &SQLiteDB{db: db}, nil
}

// Close closes the database connection
func (s *SQLiteDB) Close() error {
	return s.db.Close()
}

// Slot returns the named slot in this database
func (s *SQLiteDB) Slot(name string) *SQLiteSlot {
	return &SQLiteSlot{db: s.db, name: name}
}

// SQLiteSlot is one row of the slots table
type SQLiteSlot struct {
	db   *sql.DB
	name string
}

// Read returns the stored value, or ErrSlotEmpty if the row does not exist
func (s *SQLiteSlot) Read() ([]byte, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM slots WHERE name = ?", s.name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSlotEmpty
		}
		return nil, fmt.Errorf("read slot %s: %w", s.name, err)
	}
	return []byte(value), nil
}

// Write upserts the slot value
func (s *SQLiteSlot) Write(data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO slots (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		s.name, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("write slot %s: %w", s.name, err)
	}
	return nil
}
