package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// pragmas run on every new database, in order.
var pragmas = []struct {
	desc string
	sql  string
}{
	{"setting WAL mode", "PRAGMA journal_mode = WAL"},
	{"enabling foreign keys", "PRAGMA foreign_keys = ON"},
	{"setting busy timeout", "PRAGMA busy_timeout = 5000"},
}

// OpenDB opens the synercore database at path, creating its directory when
// needed, applies the connection pragmas and migrates the schema.
//
// An in-memory database lives on a single connection: every extra pooled
// connection would see its own empty database.
func OpenDB(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	database, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		database.SetMaxOpenConns(1)
	}

	for _, p := range pragmas {
		if _, err := database.Exec(p.sql); err != nil {
			database.Close()
			return nil, fmt.Errorf("%s: %w", p.desc, err)
		}
	}

	if err := Migrate(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return database, nil
}
