// Package engine parses game engine flags and serves the MCP tool
// surface over stdio.
package engine

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/core/dice"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/combat"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/state"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/mcp/service"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/platform/config"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/random"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage/bbolt"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage/jsonfile"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage/sqlite"
)

// Config holds game engine command configuration.
type Config struct {
	Backend   string `env:"THENVOI_STATE_BACKEND" envDefault:"jsonfile"`
	StatePath string `env:"THENVOI_STATE_PATH"    envDefault:"game_states"`
	GameID    string `env:"THENVOI_GAME_ID"       envDefault:"lost-mines-001"`
	AutoSave  bool   `env:"THENVOI_AUTOSAVE"      envDefault:"true"`
	Seed      int64  `env:"THENVOI_SEED"          envDefault:"0"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.Backend, "backend", cfg.Backend, "State backend: jsonfile, sqlite, or bbolt")
	fs.StringVar(&cfg.StatePath, "state-path", cfg.StatePath, "State directory (jsonfile) or database file (sqlite, bbolt)")
	fs.StringVar(&cfg.GameID, "game-id", cfg.GameID, "Game session identifier")
	fs.BoolVar(&cfg.AutoSave, "autosave", cfg.AutoSave, "Persist the world after every mutation")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "Dice seed for deterministic play; 0 picks a random seed")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// openStore opens the configured storage backend.
func openStore(cfg Config) (storage.WorldStore, error) {
	switch cfg.Backend {
	case "jsonfile":
		return jsonfile.Open(cfg.StatePath)
	case "sqlite":
		return sqlite.Open(cfg.StatePath)
	case "bbolt":
		return bbolt.Open(cfg.StatePath)
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.Backend)
	}
}

// Run wires storage, world state, dice, and combat together and serves
// MCP over stdio until the context is canceled.
func Run(ctx context.Context, cfg Config) error {
	store, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	manager := state.NewManager(store, cfg.GameID, cfg.AutoSave)
	if err := manager.Load(ctx); err != nil {
		return fmt.Errorf("load world state: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed, err = random.NewSeed()
		if err != nil {
			return fmt.Errorf("generate dice seed: %w", err)
		}
	}
	roller := dice.NewRoller(seed)
	engine := combat.NewEngine(manager, roller)

	server, err := service.New(manager, engine, roller)
	if err != nil {
		return fmt.Errorf("build MCP server: %w", err)
	}

	log.Printf("serving game %s on stdio (backend=%s)", cfg.GameID, cfg.Backend)
	return server.Run(ctx)
}
