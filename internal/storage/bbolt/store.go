// Package bbolt stores world documents in a BoltDB bucket, one key per
// game id. Single file, single process, no external service.
package bbolt

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
	"go.etcd.io/bbolt"
)

const worldBucket = "world"

// Store provides a BoltDB-backed world document store.
type Store struct {
	db *bbolt.DB
}

// Open opens a BoltDB-backed store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	db, err := bbolt.Open(cleanPath, 0o600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	store := &Store{db: db}
	if err := store.ensureBuckets(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying BoltDB database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Load fetches the document for a game id. Returns storage.ErrNotFound
// when no key exists.
func (s *Store) Load(ctx context.Context, gameID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return nil, fmt.Errorf("game id is required")
	}

	var document []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(worldBucket))
		if bucket == nil {
			return fmt.Errorf("world bucket is missing")
		}
		payload := bucket.Get([]byte(gameID))
		if payload == nil {
			return storage.ErrNotFound
		}
		document = append([]byte(nil), payload...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return document, nil
}

// Save persists the document for a game id inside a single write
// transaction.
func (s *Store) Save(ctx context.Context, gameID string, document []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.db == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(gameID) == "" {
		return fmt.Errorf("game id is required")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket([]byte(worldBucket))
		if bucket == nil {
			return fmt.Errorf("world bucket is missing")
		}
		return bucket.Put([]byte(gameID), document)
	})
}

func (s *Store) ensureBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(worldBucket))
		if err != nil {
			return fmt.Errorf("create world bucket: %w", err)
		}
		return nil
	})
}
