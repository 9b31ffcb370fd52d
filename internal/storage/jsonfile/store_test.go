package jsonfile

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
)

func TestStoreSaveLoad(t *testing.T) {
	store, err := Open(t.TempDir())
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
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if _, err := store.Load(context.Background(), "never-saved"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	store, err := Open(t.TempDir())
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

func TestStoreSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Save(context.Background(), "game", []byte(`{}`)); err != nil {
		t.Fatalf("save document: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "game.json" {
		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			names = append(names, entry.Name())
		}
		t.Fatalf("expected exactly game.json, got %v", names)
	}
}

func TestStoreRejectsPathTraversal(t *testing.T) {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	bad := filepath.Join("..", "escape")
	if err := store.Save(context.Background(), bad, []byte(`{}`)); err == nil {
		t.Fatal("expected save with path separators to fail")
	}
	if _, err := store.Load(context.Background(), bad); err == nil {
		t.Fatal("expected load with path separators to fail")
	}
	if err := store.Save(context.Background(), "  ", []byte(`{}`)); err == nil {
		t.Fatal("expected save with blank game id to fail")
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("   "); err == nil {
		t.Fatal("expected open with blank path to fail")
	}
}
