// Package state owns the authoritative world-state tree for one campaign:
// loading and persisting the world document, path-addressed access, HP
// mutation with death handling, narrative flags, and the turn gate.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"sync"
	"time"

	gameerrors "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/domain"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/storage"
)

// Manager mediates every read and write of one campaign's world state.
// Construct one per campaign and pass it to whatever drives the game;
// there is no process-wide instance.
//
// The mutex serializes all access because compound operations (HP updates,
// combat-end checks) read then write invariants that must not observe a
// torn intermediate state.
type Manager struct {
	mu       sync.Mutex
	store    storage.WorldStore
	gameID   string
	autoSave bool
	world    *domain.WorldState
}

// NewManager creates a manager over the given store. When autoSave is set,
// every mutating operation persists the whole document before returning.
func NewManager(store storage.WorldStore, gameID string, autoSave bool) *Manager {
	return &Manager{store: store, gameID: gameID, autoSave: autoSave}
}

// GameID returns the campaign identifier this manager was built for.
func (m *Manager) GameID() string {
	return m.gameID
}

// Load reads the world document from the store. A missing document builds
// and persists the default starting world. A document that fails to parse
// is logged and replaced by the default world; corruption never surfaces
// as an error because losing a malformed save and starting fresh is the
// recovery behavior.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLocked(ctx)
}

func (m *Manager) loadLocked(ctx context.Context) error {
	document, err := m.store.Load(ctx, m.gameID)
	if errors.Is(err, storage.ErrNotFound) {
		log.Printf("no world document for %s, creating default", m.gameID)
		m.world = DefaultWorld(m.gameID)
		return m.saveLocked(ctx)
	}
	if err != nil {
		return fmt.Errorf("load world document: %w", err)
	}

	var world domain.WorldState
	if err := json.Unmarshal(document, &world); err != nil {
		log.Printf("world document for %s is corrupt (%v), falling back to default", m.gameID, err)
		m.world = DefaultWorld(m.gameID)
		return nil
	}
	world.Normalize()
	m.world = &world
	return nil
}

// Save persists the current world document unconditionally.
func (m *Manager) Save(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}
	return m.saveLocked(ctx)
}

func (m *Manager) saveLocked(ctx context.Context) error {
	document, err := json.MarshalIndent(m.world, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal world document: %w", err)
	}
	if err := m.store.Save(ctx, m.gameID, document); err != nil {
		return fmt.Errorf("save world document: %w", err)
	}
	return nil
}

func (m *Manager) autoSaveLocked(ctx context.Context) error {
	if !m.autoSave {
		return nil
	}
	return m.saveLocked(ctx)
}

func (m *Manager) ensureLoaded(ctx context.Context) error {
	if m.world != nil {
		return nil
	}
	return m.loadLocked(ctx)
}

// View runs fn with read access to the world. The world pointer must not
// be retained after fn returns.
func (m *Manager) View(ctx context.Context, fn func(*domain.WorldState)) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}
	fn(m.world)
	return nil
}

// Update runs fn with write access to the world and persists afterwards
// when auto-save is on. If fn returns an error the world may have been
// partially mutated but is not persisted. The world pointer must not be
// retained after fn returns.
func (m *Manager) Update(ctx context.Context, fn func(*domain.WorldState) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.ensureLoaded(ctx); err != nil {
		return err
	}
	if err := fn(m.world); err != nil {
		return err
	}
	return m.autoSaveLocked(ctx)
}

// Get returns the value at a dot-separated path, or found=false when the
// path does not resolve.
func (m *Manager) Get(ctx context.Context, path string) (value any, found bool, err error) {
	err = m.View(ctx, func(world *domain.WorldState) {
		value, found = resolvePath(world, path)
	})
	return value, found, err
}

// Set assigns the value at a dot-separated path. Setting through a parent
// that does not resolve returns a PATH_NOT_FOUND error rather than
// silently doing nothing.
func (m *Manager) Set(ctx context.Context, path string, value any) error {
	return m.Update(ctx, func(world *domain.WorldState) error {
		return assignPath(world, path, value)
	})
}

// HPResult reports the outcome of one HP mutation.
type HPResult struct {
	EntityID    string `json:"entity_id"`
	Name        string `json:"name"`
	OldHP       int    `json:"old_hp"`
	NewHP       int    `json:"new_hp"`
	MaxHP       int    `json:"max_hp"`
	IsCharacter bool   `json:"is_character"`
	Unconscious bool   `json:"unconscious"`
	Dead        bool   `json:"dead"`
}

// ApplyHPDelta mutates an entity's hit points in place, characters checked
// before enemies. HP is clamped to [0, max]. A character crossing to zero
// gains the unconscious condition; climbing back above zero clears it. An
// enemy reaching zero is marked dead. Unknown ids return ENTITY_NOT_FOUND.
//
// Exported so compound operations running inside Manager.Update can apply
// damage without re-entering the lock.
func ApplyHPDelta(world *domain.WorldState, entityID string, delta int) (HPResult, error) {
	if char, ok := world.Characters[entityID]; ok {
		result := HPResult{
			EntityID:    entityID,
			Name:        char.Name,
			OldHP:       char.HP,
			MaxHP:       char.MaxHP,
			IsCharacter: true,
		}
		char.HP = clamp(char.HP+delta, 0, char.MaxHP)
		result.NewHP = char.HP

		if char.HP == 0 && result.OldHP > 0 {
			log.Printf("%s has fallen unconscious", char.Name)
			char.AddCondition(domain.ConditionUnconscious)
		}
		if char.HP > 0 {
			char.RemoveCondition(domain.ConditionUnconscious)
		}
		result.Unconscious = char.IsUnconscious()
		return result, nil
	}

	if enemy, ok := world.Enemies[entityID]; ok {
		result := HPResult{
			EntityID: entityID,
			Name:     enemy.Name,
			OldHP:    enemy.HP,
			MaxHP:    enemy.MaxHP,
		}
		enemy.HP = clamp(enemy.HP+delta, 0, enemy.MaxHP)
		result.NewHP = enemy.HP

		if enemy.HP == 0 && result.OldHP > 0 {
			log.Printf("%s (%s) has been slain", enemy.Name, entityID)
			enemy.State = domain.EnemyDead
		}
		result.Dead = enemy.State == domain.EnemyDead
		return result, nil
	}

	return HPResult{}, gameerrors.New(gameerrors.CodeEntityNotFound, "entity not found: "+entityID).
		WithMeta("EntityID", entityID)
}

// UpdateHP applies an HP delta to a character or enemy by id.
func (m *Manager) UpdateHP(ctx context.Context, entityID string, delta int) (HPResult, error) {
	var result HPResult
	err := m.Update(ctx, func(world *domain.WorldState) error {
		var applyErr error
		result, applyErr = ApplyHPDelta(world, entityID, delta)
		return applyErr
	})
	return result, err
}

// Character returns a copy of the character record, or found=false.
func (m *Manager) Character(ctx context.Context, id string) (domain.CharacterState, bool, error) {
	var char domain.CharacterState
	var found bool
	err := m.View(ctx, func(world *domain.WorldState) {
		if existing, ok := world.Characters[id]; ok {
			char = *existing
			found = true
		}
	})
	return char, found, err
}

// Enemy returns a copy of the enemy record, or found=false.
func (m *Manager) Enemy(ctx context.Context, id string) (domain.EnemyState, bool, error) {
	var enemy domain.EnemyState
	var found bool
	err := m.View(ctx, func(world *domain.WorldState) {
		if existing, ok := world.Enemies[id]; ok {
			enemy = *existing
			found = true
		}
	})
	return enemy, found, err
}

// NPC returns a copy of the NPC record, or found=false.
func (m *Manager) NPC(ctx context.Context, id string) (domain.NPCState, bool, error) {
	var npc domain.NPCState
	var found bool
	err := m.View(ctx, func(world *domain.WorldState) {
		if existing, ok := world.NPCs[id]; ok {
			npc = *existing
			found = true
		}
	})
	return npc, found, err
}

// AddCharacter inserts or replaces a character record.
func (m *Manager) AddCharacter(ctx context.Context, id string, char domain.CharacterState) error {
	return m.Update(ctx, func(world *domain.WorldState) error {
		world.Characters[id] = &char
		return nil
	})
}

// AddEnemy inserts or replaces an enemy record.
func (m *Manager) AddEnemy(ctx context.Context, id string, enemy domain.EnemyState) error {
	return m.Update(ctx, func(world *domain.WorldState) error {
		world.Enemies[id] = &enemy
		return nil
	})
}

// RemoveEnemy deletes an enemy record. Reports whether it existed.
func (m *Manager) RemoveEnemy(ctx context.Context, id string) (bool, error) {
	var removed bool
	err := m.Update(ctx, func(world *domain.WorldState) error {
		if _, ok := world.Enemies[id]; ok {
			delete(world.Enemies, id)
			removed = true
		}
		return nil
	})
	return removed, err
}

// SetProgressFlag sets a narrative progress flag by name.
func (m *Manager) SetProgressFlag(ctx context.Context, flag string, value bool) error {
	return m.Update(ctx, func(world *domain.WorldState) error {
		world.NarrativeProgress.SetFlag(flag, value)
		return nil
	})
}

// GetProgressFlag returns a narrative progress flag by name, false if
// never set.
func (m *Manager) GetProgressFlag(ctx context.Context, flag string) (bool, error) {
	var value bool
	err := m.View(ctx, func(world *domain.WorldState) {
		value = world.NarrativeProgress.GetFlag(flag)
	})
	return value, err
}

// LivingEnemies returns the sorted ids of all living enemies.
func (m *Manager) LivingEnemies(ctx context.Context) ([]string, error) {
	var living []string
	err := m.View(ctx, func(world *domain.WorldState) {
		for id, enemy := range world.Enemies {
			if enemy.IsAlive() {
				living = append(living, id)
			}
		}
	})
	sort.Strings(living)
	return living, err
}

// MemberStatus summarizes one party member for status displays.
type MemberStatus struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	HP         int      `json:"hp"`
	MaxHP      int      `json:"max_hp"`
	Conditions []string `json:"conditions"`
	IsAlive    bool     `json:"is_alive"`
}

// PartyStatus summarizes every party member, sorted by id for stable
// output.
func (m *Manager) PartyStatus(ctx context.Context) ([]MemberStatus, error) {
	var members []MemberStatus
	err := m.View(ctx, func(world *domain.WorldState) {
		for id, char := range world.Characters {
			members = append(members, MemberStatus{
				ID:         id,
				Name:       char.Name,
				HP:         char.HP,
				MaxHP:      char.MaxHP,
				Conditions: append([]string(nil), char.Conditions...),
				IsAlive:    char.IsAlive(),
			})
		}
	})
	sort.Slice(members, func(i, j int) bool { return members[i].ID < members[j].ID })
	return members, err
}

// SetTurn replaces the whole turn gate atomically: active agent, mode, and
// addressed list always change together, and the timestamp is refreshed.
// An empty mode defaults to dm_control.
func (m *Manager) SetTurn(ctx context.Context, agentID, mode string, addressed []string) error {
	if mode == "" {
		mode = domain.ModeDMControl
	}
	return m.Update(ctx, func(world *domain.WorldState) error {
		world.TurnState = domain.TurnState{
			ActiveAgent:     agentID,
			Mode:            mode,
			AddressedAgents: append([]string(nil), addressed...),
			TurnStartedAt:   float64(time.Now().UnixMilli()) / 1000,
		}
		return nil
	})
}

// TurnState returns a copy of the current turn gate.
func (m *Manager) TurnState(ctx context.Context) (domain.TurnState, error) {
	var turn domain.TurnState
	err := m.View(ctx, func(world *domain.WorldState) {
		turn = world.TurnState
		turn.AddressedAgents = append([]string(nil), world.TurnState.AddressedAgents...)
	})
	return turn, err
}

// ShouldAct reports whether the named participant should act now, per the
// turn-gate rules including the human-sentinel precedence.
func (m *Manager) ShouldAct(ctx context.Context, agentID string) (bool, error) {
	var should bool
	err := m.View(ctx, func(world *domain.WorldState) {
		should = world.TurnState.ShouldAct(agentID)
	})
	return should, err
}

// IsHumanTurn reports whether the human player holds the floor.
func (m *Manager) IsHumanTurn(ctx context.Context) (bool, error) {
	var human bool
	err := m.View(ctx, func(world *domain.WorldState) {
		human = world.TurnState.IsHumanTurn()
	})
	return human, err
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
