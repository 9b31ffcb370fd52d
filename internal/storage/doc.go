// Package storage defines the persistence interface for campaign world
// documents.
//
// A world document is the serialized JSON form of the full world-state
// tree, persisted as an opaque byte payload keyed by game id. Backends
// (jsonfile, sqlite, bbolt) live in subpackages and only move bytes; all
// encoding, validation, and corruption recovery belongs to the state
// manager.
//
// # Error Types
//
//   - ErrNotFound: Indicates no document has been saved for a game id.
package storage
