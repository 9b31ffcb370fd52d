package engine

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("engine", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Backend != "jsonfile" {
		t.Errorf("backend = %q, want jsonfile", cfg.Backend)
	}
	if cfg.StatePath != "game_states" {
		t.Errorf("state path = %q", cfg.StatePath)
	}
	if cfg.GameID != "lost-mines-001" {
		t.Errorf("game id = %q", cfg.GameID)
	}
	if !cfg.AutoSave {
		t.Error("autosave should default on")
	}
	if cfg.Seed != 0 {
		t.Errorf("seed = %d, want 0", cfg.Seed)
	}
}

func TestParseConfigFlags(t *testing.T) {
	fs := flag.NewFlagSet("engine", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-backend", "sqlite",
		"-state-path", "worlds.db",
		"-game-id", "table-two",
		"-autosave=false",
		"-seed", "42",
	})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Backend != "sqlite" || cfg.StatePath != "worlds.db" || cfg.GameID != "table-two" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.AutoSave || cfg.Seed != 42 {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	if _, err := openStore(Config{Backend: "redis"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestOpenStoreJSONFile(t *testing.T) {
	store, err := openStore(Config{Backend: "jsonfile", StatePath: t.TempDir()})
	if err != nil {
		t.Fatalf("open jsonfile store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("close: %v", err)
	}
}
