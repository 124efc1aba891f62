// Package store persists PandaMJ documents as key/value blobs in SQLite.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// schemaVersion is stamped into PRAGMA user_version after migration.
// Bump it whenever Tables changes shape.
const schemaVersion = 1

// Store holds the ent driver and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open connects to the database at dsn, tunes it for a single local
// player and brings the schema up to date.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// Pragmas are per connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return &Store{db: db, drv: drv}, nil
}

// DB exposes the handle for tests and maintenance queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.drv.Close()
}

// BlobRepo returns the SQLite-backed BlobRepo.
func (s *Store) BlobRepo() BlobRepo {
	return &blobRepo{drv: s.drv}
}

func applyPragmas(db *sql.DB) error {
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	} {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// SchemaVersion reports the schema version stamped into the database.
func (s *Store) SchemaVersion(ctx context.Context) (int, error) {
	return readSchemaVersion(ctx, s.drv)
}

func readSchemaVersion(ctx context.Context, drv *entsql.Driver) (int, error) {
	var rows entsql.Rows
	if err := drv.Query(ctx, "PRAGMA user_version", []any{}, &rows); err != nil {
		return 0, fmt.Errorf("read user_version: %w", err)
	}
	defer rows.Close()

	var v int
	if rows.Next() {
		if err := rows.Scan(&v); err != nil {
			return 0, fmt.Errorf("read user_version: %w", err)
		}
	}
	return v, rows.Err()
}

// migrate refuses databases written by a newer build, then lets ent
// diff Tables against the live schema.
func migrate(ctx context.Context, drv *entsql.Driver) error {
	current, err := readSchemaVersion(ctx, drv)
	if err != nil {
		return err
	}
	if current > schemaVersion {
		return fmt.Errorf("database schema v%d is newer than this build (v%d)", current, schemaVersion)
	}

	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	if err := m.Create(ctx, Tables...); err != nil {
		return err
	}
	if current == schemaVersion {
		return nil
	}
	// PRAGMA does not take bind parameters.
	return drv.Exec(ctx, fmt.Sprintf("PRAGMA user_version = %d", schemaVersion), []any{}, nil)
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PANDAMJ_DB environment variable
// 2. $XDG_DATA_HOME/pandamj/pandamj.db
// 3. ~/.local/share/pandamj/pandamj.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PANDAMJ_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "pandamj", "pandamj.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
