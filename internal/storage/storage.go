package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates no document has been saved for the game id.
var ErrNotFound = errors.New("document not found")

// WorldStore persists world documents keyed by game id.
//
// Save must be atomic from the caller's perspective: either the whole
// document replaces the previous one or the previous one remains intact.
type WorldStore interface {
	Load(ctx context.Context, gameID string) ([]byte, error)
	Save(ctx context.Context, gameID string, document []byte) error
	Close() error
}
