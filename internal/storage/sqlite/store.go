// Package sqlite stores world documents in a single-table SQLite
// database, one row per game id. Useful when several campaigns share one
// state file or when the host already manages SQLite backups.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS world_documents (
	game_id TEXT PRIMARY KEY,
	document BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`

// Store provides a SQLite-backed world document store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path with WAL journaling
// and a busy timeout, and ensures the schema exists.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping storage db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load fetches the document for a game id. Returns storage.ErrNotFound
// when no row exists.
func (s *Store) Load(ctx context.Context, gameID string) ([]byte, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return nil, fmt.Errorf("game id is required")
	}

	var document []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM world_documents WHERE game_id = ?`, gameID,
	).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load world document: %w", err)
	}
	return document, nil
}

// Save upserts the document for a game id. The single-statement upsert is
// atomic under SQLite's transaction semantics.
func (s *Store) Save(ctx context.Context, gameID string, document []byte) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return fmt.Errorf("game id is required")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO world_documents (game_id, document, updated_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(game_id) DO UPDATE SET
			document = excluded.document,
			updated_at = excluded.updated_at
	`, gameID, document)
	if err != nil {
		return fmt.Errorf("save world document: %w", err)
	}
	return nil
}
