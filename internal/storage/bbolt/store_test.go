package bbolt

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
)

func TestStoreSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	document := []byte(`{"game_id":"lost-mines-001","current_scene":"intro"}`)
	if err := store.Save(context.Background(), "lost-mines-001", document); err != nil {
		t.Fatalf("save document: %v", err)
	}

	loaded, err := store.Load(context.Background(), "lost-mines-001")
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if !bytes.Equal(loaded, document) {
		t.Fatalf("expected document %s, got %s", document, loaded)
	}
}

func TestStoreLoadMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(context.Background(), "never-saved"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Save(context.Background(), "game", []byte(`{"round":1}`)); err != nil {
		t.Fatalf("save first document: %v", err)
	}
	if err := store.Save(context.Background(), "game", []byte(`{"round":2}`)); err != nil {
		t.Fatalf("save second document: %v", err)
	}

	loaded, err := store.Load(context.Background(), "game")
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if string(loaded) != `{"round":2}` {
		t.Fatalf("expected latest document, got %s", loaded)
	}
}

func TestStoreReopenKeepsDocuments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	if err := store.Save(context.Background(), "game", []byte(`{"round":3}`)); err != nil {
		t.Fatalf("save document: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	loaded, err := reopened.Load(context.Background(), "game")
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	if string(loaded) != `{"round":3}` {
		t.Fatalf("expected persisted document, got %s", loaded)
	}
}

func TestStoreValidation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Save(context.Background(), "  ", []byte(`{}`)); err == nil {
		t.Fatal("expected save with blank game id to fail")
	}
	if _, err := store.Load(context.Background(), ""); err == nil {
		t.Fatal("expected load with blank game id to fail")
	}
	if _, err := Open(""); err == nil {
		t.Fatal("expected open with blank path to fail")
	}
}
