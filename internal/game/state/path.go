package state

import (
	"fmt"
	"strings"

	gameerrors "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/domain"
)

// Path access dispatches on a closed set of field names per level instead
// of reflecting over the tree, so a typo'd segment is a miss rather than
// undefined behavior. The string-path surface exists for callers that
// build paths dynamically; code inside this module uses the typed fields
// directly.
//
// Container values returned by resolvePath are views into the live tree
// and must be rendered immediately, not retained.

func pathNotFound(path string) error {
	return gameerrors.New(gameerrors.CodePathNotFound, "path not found: "+path).
		WithMeta("Path", path)
}

func badValue(path, want string) error {
	return gameerrors.New(gameerrors.CodePathInvalidValue,
		fmt.Sprintf("cannot set %s: expected %s value", path, want)).
		WithMeta("Path", path).
		WithMeta("Want", want)
}

func resolvePath(world *domain.WorldState, path string) (any, bool) {
	parts := strings.Split(path, ".")
	if path == "" || len(parts) == 0 {
		return nil, false
	}

	head, rest := parts[0], parts[1:]
	switch head {
	case "game_id":
		return leaf(world.GameID, rest)
	case "current_chapter":
		return leaf(world.CurrentChapter, rest)
	case "current_scene":
		return leaf(world.CurrentScene, rest)
	case "session_notes":
		return leaf(world.SessionNotes, rest)
	case "narrative_progress":
		return resolveProgress(&world.NarrativeProgress, rest)
	case "combat":
		return resolveCombat(&world.Combat, rest)
	case "turn_state":
		return resolveTurn(&world.TurnState, rest)
	case "characters":
		return resolveCharacters(world.Characters, rest)
	case "npcs":
		return resolveNPCs(world.NPCs, rest)
	case "enemies":
		return resolveEnemies(world.Enemies, rest)
	}
	return nil, false
}

func leaf(value any, rest []string) (any, bool) {
	if len(rest) != 0 {
		return nil, false
	}
	return value, true
}

func resolveProgress(progress *domain.NarrativeProgress, rest []string) (any, bool) {
	switch len(rest) {
	case 0:
		return *progress, true
	case 1:
		if rest[0] == "custom_flags" {
			return progress.CustomFlags, true
		}
		return progress.GetFlag(rest[0]), true
	case 2:
		if rest[0] == "custom_flags" {
			value, ok := progress.CustomFlags[rest[1]]
			return value, ok
		}
	}
	return nil, false
}

func resolveCombat(combat *domain.CombatState, rest []string) (any, bool) {
	if len(rest) == 0 {
		return *combat, true
	}
	switch rest[0] {
	case "active":
		return leaf(combat.Active, rest[1:])
	case "round":
		return leaf(combat.Round, rest[1:])
	case "turn_order":
		return leaf(combat.TurnOrder, rest[1:])
	case "current_turn_index":
		return leaf(combat.CurrentTurnIndex, rest[1:])
	case "combatants":
		if len(rest) == 1 {
			return combat.Combatants, true
		}
		if len(rest) == 2 {
			snapshot, ok := combat.Combatants[rest[1]]
			return snapshot, ok
		}
	}
	return nil, false
}

func resolveTurn(turn *domain.TurnState, rest []string) (any, bool) {
	if len(rest) == 0 {
		return *turn, true
	}
	switch rest[0] {
	case "active_agent":
		return leaf(turn.ActiveAgent, rest[1:])
	case "mode":
		return leaf(turn.Mode, rest[1:])
	case "addressed_agents":
		return leaf(turn.AddressedAgents, rest[1:])
	case "turn_started_at":
		return leaf(turn.TurnStartedAt, rest[1:])
	}
	return nil, false
}

func resolveCharacters(characters map[string]*domain.CharacterState, rest []string) (any, bool) {
	if len(rest) == 0 {
		return characters, true
	}
	char, ok := characters[rest[0]]
	if !ok {
		return nil, false
	}
	if len(rest) == 1 {
		return *char, true
	}
	switch rest[1] {
	case "name":
		return leaf(char.Name, rest[2:])
	case "character_class":
		return leaf(char.CharacterClass, rest[2:])
	case "race":
		return leaf(char.Race, rest[2:])
	case "background":
		return leaf(char.Background, rest[2:])
	case "level":
		return leaf(char.Level, rest[2:])
	case "hp":
		return leaf(char.HP, rest[2:])
	case "max_hp":
		return leaf(char.MaxHP, rest[2:])
	case "ac":
		return leaf(char.AC, rest[2:])
	case "proficiency_bonus":
		return leaf(char.ProficiencyBonus, rest[2:])
	case "saving_throws":
		return leaf(char.SavingThrows, rest[2:])
	case "skills":
		return leaf(char.Skills, rest[2:])
	case "conditions":
		return leaf(char.Conditions, rest[2:])
	case "inventory":
		return leaf(char.Inventory, rest[2:])
	case "features":
		return leaf(char.Features, rest[2:])
	case "racial_traits":
		return leaf(char.RacialTraits, rest[2:])
	case "spell_slots":
		return leaf(char.SpellSlots, rest[2:])
	case "spells_known":
		return leaf(char.SpellsKnown, rest[2:])
	case "stats":
		return resolveStats(&char.Stats, rest[2:])
	}
	return nil, false
}

func resolveStats(stats *domain.CharacterStats, rest []string) (any, bool) {
	if len(rest) == 0 {
		return *stats, true
	}
	if len(rest) != 1 {
		return nil, false
	}
	if field := statField(stats, rest[0]); field != nil {
		return *field, true
	}
	return nil, false
}

func resolveNPCs(npcs map[string]*domain.NPCState, rest []string) (any, bool) {
	if len(rest) == 0 {
		return npcs, true
	}
	npc, ok := npcs[rest[0]]
	if !ok {
		return nil, false
	}
	if len(rest) == 1 {
		return *npc, true
	}
	switch rest[1] {
	case "name":
		return leaf(npc.Name, rest[2:])
	case "state":
		return leaf(npc.State, rest[2:])
	case "location":
		return leaf(npc.Location, rest[2:])
	case "disposition":
		return leaf(npc.Disposition, rest[2:])
	case "notes":
		return leaf(npc.Notes, rest[2:])
	}
	return nil, false
}

func resolveEnemies(enemies map[string]*domain.EnemyState, rest []string) (any, bool) {
	if len(rest) == 0 {
		return enemies, true
	}
	enemy, ok := enemies[rest[0]]
	if !ok {
		return nil, false
	}
	if len(rest) == 1 {
		return *enemy, true
	}
	switch rest[1] {
	case "name":
		return leaf(enemy.Name, rest[2:])
	case "archetype":
		return leaf(enemy.Archetype, rest[2:])
	case "hp":
		return leaf(enemy.HP, rest[2:])
	case "max_hp":
		return leaf(enemy.MaxHP, rest[2:])
	case "ac":
		return leaf(enemy.AC, rest[2:])
	case "state":
		return leaf(enemy.State, rest[2:])
	case "damage_immunities":
		return leaf(enemy.DamageImmunities, rest[2:])
	case "damage_resistances":
		return leaf(enemy.DamageResistances, rest[2:])
	case "condition_immunities":
		return leaf(enemy.ConditionImmunities, rest[2:])
	case "notes":
		return leaf(enemy.Notes, rest[2:])
	}
	return nil, false
}

func assignPath(world *domain.WorldState, path string, value any) error {
	parts := strings.Split(path, ".")
	if path == "" || len(parts) == 0 {
		return pathNotFound(path)
	}

	head, rest := parts[0], parts[1:]
	switch head {
	case "game_id":
		return assignString(path, rest, value, &world.GameID)
	case "current_chapter":
		return assignInt(path, rest, value, &world.CurrentChapter)
	case "current_scene":
		return assignString(path, rest, value, &world.CurrentScene)
	case "session_notes":
		return assignStringSlice(path, rest, value, &world.SessionNotes)
	case "narrative_progress":
		return assignProgress(path, &world.NarrativeProgress, rest, value)
	case "combat":
		return assignCombat(path, &world.Combat, rest, value)
	case "turn_state":
		return assignTurn(path, &world.TurnState, rest, value)
	case "characters":
		return assignCharacter(path, world.Characters, rest, value)
	case "npcs":
		return assignNPC(path, world.NPCs, rest, value)
	case "enemies":
		return assignEnemy(path, world.Enemies, rest, value)
	}
	return pathNotFound(path)
}

func assignProgress(path string, progress *domain.NarrativeProgress, rest []string, value any) error {
	var name string
	switch {
	case len(rest) == 1 && rest[0] != "custom_flags":
		name = rest[0]
	case len(rest) == 2 && rest[0] == "custom_flags":
		name = rest[1]
	default:
		return pathNotFound(path)
	}

	flag, ok := asBool(value)
	if !ok {
		return badValue(path, "boolean")
	}
	progress.SetFlag(name, flag)
	return nil
}

func assignCombat(path string, combat *domain.CombatState, rest []string, value any) error {
	if len(rest) == 0 {
		return pathNotFound(path)
	}
	switch rest[0] {
	case "active":
		return assignBool(path, rest[1:], value, &combat.Active)
	case "round":
		return assignInt(path, rest[1:], value, &combat.Round)
	case "current_turn_index":
		return assignInt(path, rest[1:], value, &combat.CurrentTurnIndex)
	case "turn_order":
		return assignStringSlice(path, rest[1:], value, &combat.TurnOrder)
	}
	return pathNotFound(path)
}

func assignTurn(path string, turn *domain.TurnState, rest []string, value any) error {
	if len(rest) == 0 {
		return pathNotFound(path)
	}
	switch rest[0] {
	case "active_agent":
		return assignString(path, rest[1:], value, &turn.ActiveAgent)
	case "mode":
		return assignString(path, rest[1:], value, &turn.Mode)
	case "addressed_agents":
		return assignStringSlice(path, rest[1:], value, &turn.AddressedAgents)
	case "turn_started_at":
		if len(rest) != 1 {
			return pathNotFound(path)
		}
		stamp, ok := asFloat(value)
		if !ok {
			return badValue(path, "numeric")
		}
		turn.TurnStartedAt = stamp
		return nil
	}
	return pathNotFound(path)
}

func assignCharacter(path string, characters map[string]*domain.CharacterState, rest []string, value any) error {
	if len(rest) < 2 {
		return pathNotFound(path)
	}
	char, ok := characters[rest[0]]
	if !ok {
		return pathNotFound(path)
	}
	switch rest[1] {
	case "name":
		return assignString(path, rest[2:], value, &char.Name)
	case "character_class":
		return assignString(path, rest[2:], value, &char.CharacterClass)
	case "race":
		return assignString(path, rest[2:], value, &char.Race)
	case "background":
		return assignString(path, rest[2:], value, &char.Background)
	case "level":
		return assignInt(path, rest[2:], value, &char.Level)
	case "hp":
		return assignInt(path, rest[2:], value, &char.HP)
	case "max_hp":
		return assignInt(path, rest[2:], value, &char.MaxHP)
	case "ac":
		return assignInt(path, rest[2:], value, &char.AC)
	case "proficiency_bonus":
		return assignInt(path, rest[2:], value, &char.ProficiencyBonus)
	case "saving_throws":
		return assignStringSlice(path, rest[2:], value, &char.SavingThrows)
	case "skills":
		return assignStringSlice(path, rest[2:], value, &char.Skills)
	case "conditions":
		return assignStringSlice(path, rest[2:], value, &char.Conditions)
	case "inventory":
		return assignStringSlice(path, rest[2:], value, &char.Inventory)
	case "features":
		return assignStringSlice(path, rest[2:], value, &char.Features)
	case "racial_traits":
		return assignStringSlice(path, rest[2:], value, &char.RacialTraits)
	case "stats":
		if len(rest) != 3 {
			return pathNotFound(path)
		}
		field := statField(&char.Stats, rest[2])
		if field == nil {
			return pathNotFound(path)
		}
		return assignInt(path, nil, value, field)
	}
	return pathNotFound(path)
}

func assignNPC(path string, npcs map[string]*domain.NPCState, rest []string, value any) error {
	if len(rest) < 2 {
		return pathNotFound(path)
	}
	npc, ok := npcs[rest[0]]
	if !ok {
		return pathNotFound(path)
	}
	switch rest[1] {
	case "name":
		return assignString(path, rest[2:], value, &npc.Name)
	case "state":
		return assignString(path, rest[2:], value, &npc.State)
	case "location":
		return assignString(path, rest[2:], value, &npc.Location)
	case "disposition":
		return assignString(path, rest[2:], value, &npc.Disposition)
	case "notes":
		return assignString(path, rest[2:], value, &npc.Notes)
	}
	return pathNotFound(path)
}

func assignEnemy(path string, enemies map[string]*domain.EnemyState, rest []string, value any) error {
	if len(rest) < 2 {
		return pathNotFound(path)
	}
	enemy, ok := enemies[rest[0]]
	if !ok {
		return pathNotFound(path)
	}
	switch rest[1] {
	case "name":
		return assignString(path, rest[2:], value, &enemy.Name)
	case "archetype":
		return assignString(path, rest[2:], value, &enemy.Archetype)
	case "hp":
		return assignInt(path, rest[2:], value, &enemy.HP)
	case "max_hp":
		return assignInt(path, rest[2:], value, &enemy.MaxHP)
	case "ac":
		return assignInt(path, rest[2:], value, &enemy.AC)
	case "state":
		return assignString(path, rest[2:], value, &enemy.State)
	case "notes":
		return assignString(path, rest[2:], value, &enemy.Notes)
	}
	return pathNotFound(path)
}

func statField(stats *domain.CharacterStats, name string) *int {
	switch strings.ToLower(name) {
	case "str", "strength":
		return &stats.Strength
	case "dex", "dexterity":
		return &stats.Dexterity
	case "con", "constitution":
		return &stats.Constitution
	case "int", "intelligence":
		return &stats.Intelligence
	case "wis", "wisdom":
		return &stats.Wisdom
	case "cha", "charisma":
		return &stats.Charisma
	}
	return nil
}

func assignString(path string, rest []string, value any, target *string) error {
	if len(rest) != 0 {
		return pathNotFound(path)
	}
	s, ok := value.(string)
	if !ok {
		return badValue(path, "string")
	}
	*target = s
	return nil
}

func assignBool(path string, rest []string, value any, target *bool) error {
	if len(rest) != 0 {
		return pathNotFound(path)
	}
	b, ok := asBool(value)
	if !ok {
		return badValue(path, "boolean")
	}
	*target = b
	return nil
}

func assignInt(path string, rest []string, value any, target *int) error {
	if len(rest) != 0 {
		return pathNotFound(path)
	}
	n, ok := asInt(value)
	if !ok {
		return badValue(path, "integer")
	}
	*target = n
	return nil
}

func assignStringSlice(path string, rest []string, value any, target *[]string) error {
	if len(rest) != 0 {
		return pathNotFound(path)
	}
	items, ok := asStringSlice(value)
	if !ok {
		return badValue(path, "string list")
	}
	*target = items
	return nil
}

// Coercions accept both native Go values and the shapes encoding/json
// produces when tool arguments arrive as untyped JSON (float64 numbers,
// []any lists).

func asBool(value any) (bool, bool) {
	b, ok := value.(bool)
	return b, ok
}

func asInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
	}
	return 0, false
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func asStringSlice(value any) ([]string, bool) {
	switch v := value.(type) {
	case []string:
		return append([]string(nil), v...), true
	case []any:
		items := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			items = append(items, s)
		}
		return items, true
	}
	return nil, false
}
