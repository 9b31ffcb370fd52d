// Package jsonfile stores world documents as plain JSON files on disk,
// one file per game id. It is the default backend: the saved file is
// human-readable and can be inspected or hand-edited between sessions.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
)

// Store persists world documents under a base directory, one
// "<game-id>.json" file each.
type Store struct {
	dir string
}

// Open prepares a file-backed store rooted at dir, creating the directory
// if needed.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Store{dir: cleanDir}, nil
}

// Close is a no-op; files are closed per operation.
func (s *Store) Close() error {
	return nil
}

// Load reads the document for a game id. Returns storage.ErrNotFound when
// no file exists.
func (s *Store) Load(ctx context.Context, gameID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.filePath(gameID)
	if err != nil {
		return nil, err
	}

	document, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("read world document: %w", err)
	}
	return document, nil
}

// Save writes the document for a game id. The write goes to a temporary
// file in the same directory which is then renamed over the target, so a
// crash mid-write leaves the previous document intact.
func (s *Store) Save(ctx context.Context, gameID string, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.filePath(gameID)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(document); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write world document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace world document: %w", err)
	}
	return nil
}

func (s *Store) filePath(gameID string) (string, error) {
	id := strings.TrimSpace(gameID)
	if id == "" {
		return "", fmt.Errorf("game id is required")
	}
	if id != filepath.Base(id) {
		return "", fmt.Errorf("game id must not contain path separators")
	}
	return filepath.Join(s.dir, id+".json"), nil
}
