package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

const documentsTable = "progress_documents"

// SQLite is a DocumentRepo backed by a local SQLite file.
type SQLite struct {
	db  *sql.DB
	drv *entsql.Driver
}

// OpenSQLite opens the database at dsn, applies the recommended pragmas and
// creates the documents table.
func OpenSQLite(ctx context.Context, dsn string) (*SQLite, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	err = drv.Exec(ctx, `CREATE TABLE IF NOT EXISTS `+documentsTable+` (
		doc_key TEXT PRIMARY KEY,
		version INTEGER NOT NULL,
		data TEXT NOT NULL,
		writer_id TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL
	)`, []any{}, nil)
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("create documents table: %w", err)
	}

	return &SQLite{db: db, drv: drv}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.drv.Close()
}

func (s *SQLite) Load(ctx context.Context, key string) (*Record, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("version", "data", "writer_id", "updated_at").
		From(entsql.Table(documentsTable)).
		Where(entsql.EQ("doc_key", key)).
		Query()

	var rows entsql.Rows
	if err := s.drv.Query(ctx, query, args, &rows); err != nil {
		return nil, fmt.Errorf("query document: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("query document: %w", err)
		}
		return nil, nil
	}

	rec := &Record{Key: key}
	var data, updated string
	if err := rows.Scan(&rec.Version, &data, &rec.WriterID, &updated); err != nil {
		return nil, fmt.Errorf("scan document: %w", err)
	}
	rec.Data = []byte(data)
	t, err := time.Parse(time.RFC3339Nano, updated)
	if err != nil {
		return nil, fmt.Errorf("parse updated_at %q: %w", updated, err)
	}
	rec.UpdatedAt = t
	return rec, nil
}

func (s *SQLite) Save(ctx context.Context, rec *Record) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert(documentsTable).
		Columns("doc_key", "version", "data", "writer_id", "updated_at").
		Values(rec.Key, rec.Version, string(rec.Data), rec.WriterID, rec.UpdatedAt.UTC().Format(time.RFC3339Nano)).
		OnConflict(
			entsql.ConflictColumns("doc_key"),
			entsql.ResolveWithNewValues(),
		).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Delete(documentsTable).
		Where(entsql.EQ("doc_key", key)).
		Query()

	if err := s.drv.Exec(ctx, query, args, nil); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// applyPragmas configures SQLite for optimal single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. VOCABSTREAK_DB environment variable
// 2. $XDG_DATA_HOME/vocabstreak/vocabstreak.db
// 3. ~/.local/share/vocabstreak/vocabstreak.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("VOCABSTREAK_DB"); p != "" {
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

	p := filepath.Join(dataHome, "vocabstreak", "vocabstreak.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
