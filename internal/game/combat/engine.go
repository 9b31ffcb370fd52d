// Package combat drives encounters: initiative and turn order, attack
// resolution against AC, damage with critical doubling, and combat end
// handling. All randomness goes through the dice engine and all state
// through the world-state manager.
package combat

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/core/check"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/core/dice"
	gameerrors "github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/errors"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/domain"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/state"
)

// Combat end reasons.
const (
	ReasonEnemiesDefeated = "enemies_defeated"
	ReasonPartyDefeated   = "party_defeated"
	ReasonFled            = "fled"
	ReasonStory           = "story"
)

// Engine resolves combat over a world-state manager and a dice roller.
type Engine struct {
	manager *state.Manager
	roller  *dice.Roller
}

// NewEngine creates a combat engine.
func NewEngine(manager *state.Manager, roller *dice.Roller) *Engine {
	return &Engine{manager: manager, roller: roller}
}

// CombatantInfo describes one combatant at combat start.
type CombatantInfo struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Initiative int      `json:"initiative"`
	HP         int      `json:"hp"`
	MaxHP      int      `json:"max_hp"`
	AC         int      `json:"ac"`
	IsEnemy    bool     `json:"is_enemy"`
	Conditions []string `json:"conditions"`
}

// StartResult reports a successful combat start.
type StartResult struct {
	TurnOrder    []CombatantInfo `json:"turn_order"`
	Announcement string          `json:"announcement"`
}

// StartCombat creates the named enemies from an archetype template, rolls
// initiative for everyone, and activates the encounter.
//
// An unknown archetype is a reported UNKNOWN_ARCHETYPE error; an empty
// archetype defaults to goblin. Party ids that resolve to no character are
// skipped with a log warning. If nobody at all could be resolved the start
// fails with NO_VALID_COMBATANTS and the encounter stays inactive.
//
// Turn order sorts by initiative descending with name ascending as the
// tie-break, so identical rolls order deterministically.
func (e *Engine) StartCombat(ctx context.Context, party, enemies []string, archetype string) (*StartResult, error) {
	if archetype == "" {
		archetype = "goblin"
	}
	template, ok := Archetypes[archetype]
	if !ok {
		return nil, gameerrors.New(gameerrors.CodeUnknownArchetype, "unknown enemy archetype: "+archetype).
			WithMeta("Archetype", archetype)
	}

	var result StartResult
	err := e.manager.Update(ctx, func(world *domain.WorldState) error {
		var combatants []CombatantInfo

		for _, enemyID := range enemies {
			record, err := NewEnemy(enemyID, archetype, "")
			if err != nil {
				return err
			}
			enemy := &record
			world.Enemies[enemyID] = enemy

			initiative, err := e.roller.Initiative(enemyID, template.DexMod, false)
			if err != nil {
				return err
			}
			combatants = append(combatants, CombatantInfo{
				ID:         enemyID,
				Name:       enemy.Name,
				Initiative: initiative.Total,
				HP:         enemy.HP,
				MaxHP:      enemy.MaxHP,
				AC:         enemy.AC,
				IsEnemy:    true,
				Conditions: []string{},
			})
			log.Printf("added enemy %s with initiative %d", enemyID, initiative.Total)
		}

		for _, charID := range party {
			char, ok := world.Characters[charID]
			if !ok {
				log.Printf("character %s not found, skipping", charID)
				continue
			}

			initiative, err := e.roller.Initiative(charID, char.Stats.Modifier("dex"), false)
			if err != nil {
				return err
			}
			combatants = append(combatants, CombatantInfo{
				ID:         charID,
				Name:       char.Name,
				Initiative: initiative.Total,
				HP:         char.HP,
				MaxHP:      char.MaxHP,
				AC:         char.AC,
				Conditions: append([]string(nil), char.Conditions...),
			})
			log.Printf("added character %s with initiative %d", charID, initiative.Total)
		}

		if len(combatants) == 0 {
			return gameerrors.New(gameerrors.CodeNoValidCombatants, "no valid combatants found")
		}

		sort.SliceStable(combatants, func(i, j int) bool {
			if combatants[i].Initiative != combatants[j].Initiative {
				return combatants[i].Initiative > combatants[j].Initiative
			}
			return combatants[i].Name < combatants[j].Name
		})

		order := make([]string, len(combatants))
		snapshots := make(map[string]domain.CombatantSnapshot, len(combatants))
		for i, combatant := range combatants {
			order[i] = combatant.ID
			snapshots[combatant.ID] = domain.CombatantSnapshot{
				Initiative: combatant.Initiative,
				HP:         combatant.HP,
				MaxHP:      combatant.MaxHP,
				AC:         combatant.AC,
				IsEnemy:    combatant.IsEnemy,
				Conditions: combatant.Conditions,
			}
		}
		world.Combat = domain.CombatState{
			Active:     true,
			Round:      1,
			TurnOrder:  order,
			Combatants: snapshots,
		}

		var orderLines []string
		for i, combatant := range combatants {
			orderLines = append(orderLines,
				fmt.Sprintf("  %d. %s (Initiative: %d)", i+1, combatant.Name, combatant.Initiative))
		}
		result = StartResult{
			TurnOrder: combatants,
			Announcement: fmt.Sprintf("=== COMBAT BEGINS ===\n\nTURN ORDER:\n%s\n\nRound 1 - %s's turn!",
				strings.Join(orderLines, "\n"), combatants[0].Name),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CurrentCombatant returns the id whose turn it is, or "" when combat is
// inactive or the turn order is empty.
func (e *Engine) CurrentCombatant(ctx context.Context) (string, error) {
	var id string
	err := e.manager.View(ctx, func(world *domain.WorldState) {
		id = world.Combat.CurrentCombatant()
	})
	return id, err
}

// AdvanceResult reports a successful turn advance.
type AdvanceResult struct {
	CombatantID   string `json:"combatant_id"`
	CombatantName string `json:"combatant_name"`
	Round         int    `json:"round"`
	NewRound      bool   `json:"new_round"`
	Announcement  string `json:"announcement"`
}

// AdvanceTurn moves to the next living combatant, skipping anyone whose
// live entity state is no longer alive. The snapshot taken at combat start
// is never consulted for liveness. Returns nil when combat is inactive,
// the order is empty, or everyone left in the order is down; callers are
// expected to have ended combat before that last case occurs.
func (e *Engine) AdvanceTurn(ctx context.Context) (*AdvanceResult, error) {
	var result *AdvanceResult
	err := e.manager.Update(ctx, func(world *domain.WorldState) error {
		combat := &world.Combat
		if !combat.Active || len(combat.TurnOrder) == 0 {
			return nil
		}

		currentIndex := combat.CurrentTurnIndex
		round := combat.Round
		newRound := false

		nextIndex := (currentIndex + 1) % len(combat.TurnOrder)
		attempts := 0
		for attempts < len(combat.TurnOrder) {
			// Round rollover is detected before liveness so a dead
			// combatant at index 0 still rolls the round over.
			if nextIndex == 0 && (currentIndex != 0 || attempts > 0) {
				round++
				newRound = true
			}

			if combatantAlive(world, combat.TurnOrder[nextIndex]) {
				break
			}
			nextIndex = (nextIndex + 1) % len(combat.TurnOrder)
			attempts++
		}
		if attempts >= len(combat.TurnOrder) {
			return nil
		}

		combat.CurrentTurnIndex = nextIndex
		combat.Round = round

		combatantID := combat.TurnOrder[nextIndex]
		name := displayName(world, combatantID)

		announcement := fmt.Sprintf("%s's turn!", name)
		if newRound {
			announcement = fmt.Sprintf("=== ROUND %d ===\n\n%s's turn!", round, name)
		}
		result = &AdvanceResult{
			CombatantID:   combatantID,
			CombatantName: name,
			Round:         round,
			NewRound:      newRound,
			Announcement:  announcement,
		}
		return nil
	})
	return result, err
}

// AttackResult exposes every intermediate figure of one attack so callers
// can assert or narrate on any of them independently.
type AttackResult struct {
	Attacker       string `json:"attacker"`
	Target         string `json:"target"`
	AttackRoll     int    `json:"attack_roll"`
	AttackTotal    int    `json:"attack_total"`
	TargetAC       int    `json:"target_ac"`
	Hit            bool   `json:"hit"`
	Critical       bool   `json:"critical"`
	Fumble         bool   `json:"fumble"`
	Damage         int    `json:"damage"`
	DamageType     string `json:"damage_type"`
	TargetHPBefore int    `json:"target_hp_before"`
	TargetHPAfter  int    `json:"target_hp_after"`
	TargetDefeated bool   `json:"target_defeated"`
	Narrative      string `json:"narrative"`
}

// ResolveAttack rolls the attack, checks it against the target's AC, rolls
// and applies damage on a hit, and builds the outcome narrative.
//
// Enemy attackers use their archetype's fixed attack bonus and damage
// line; the archetype is read from the tag stored at creation, falling
// back to a substring match against the attacker id for enemies loaded
// from older saves (ids like "goblin_1" embed the archetype name).
// Character attackers use the weapon's governing-ability modifier plus
// proficiency.
//
// A critical hit doubles the damage dice by rolling the dice portion a
// second time; the flat modifier is added once.
func (e *Engine) ResolveAttack(ctx context.Context, attackerID, targetID, weapon string, advantage, disadvantage bool) (*AttackResult, error) {
	var result AttackResult
	err := e.manager.Update(ctx, func(world *domain.WorldState) error {
		attackerName := displayName(world, attackerID)

		targetName := targetID
		targetAC := 10
		targetHPBefore := 0
		targetMaxHP := 0
		if char, ok := world.Characters[targetID]; ok {
			targetName = char.Name
			targetAC = char.AC
			targetHPBefore = char.HP
			targetMaxHP = char.MaxHP
		} else if enemy, ok := world.Enemies[targetID]; ok {
			targetName = enemy.Name
			targetAC = enemy.AC
			targetHPBefore = enemy.HP
			targetMaxHP = enemy.MaxHP
		}

		attackBonus := e.attackBonus(world, attackerID, weapon)
		attackRoll, err := e.roller.Attack(attackerName, attackBonus, advantage, disadvantage)
		if err != nil {
			return err
		}

		rawRoll := attackRoll.Rolls[0]
		if attackRoll.KeptRoll != nil {
			rawRoll = *attackRoll.KeptRoll
		}

		result = AttackResult{
			Attacker:       attackerID,
			Target:         targetID,
			AttackRoll:     rawRoll,
			AttackTotal:    attackRoll.Total,
			TargetAC:       targetAC,
			Critical:       attackRoll.Critical,
			Fumble:         attackRoll.Fumble,
			DamageType:     "slashing",
			TargetHPBefore: targetHPBefore,
			TargetHPAfter:  targetHPBefore,
		}
		result.Hit = check.Hit(attackRoll.Total, targetAC, attackRoll.Critical)

		if result.Hit {
			damageNotation, damageType := e.damageDice(world, attackerID, weapon)
			result.DamageType = damageType

			damageRoll, err := e.roller.Damage(attackerName, damageNotation, damageType, false)
			if err != nil {
				return err
			}
			result.Damage = damageRoll.Total

			if attackRoll.Critical {
				parsed, err := dice.ParseNotation(damageNotation)
				if err != nil {
					return err
				}
				diceOnly := dice.Notation{Count: parsed.Count, Sides: parsed.Sides}
				bonusRoll, err := e.roller.Roll(diceOnly.String(), "Critical Bonus", attackerName, false, false)
				if err != nil {
					return err
				}
				result.Damage += bonusRoll.Total
			}

			hp, err := state.ApplyHPDelta(world, targetID, -result.Damage)
			if err != nil {
				return err
			}
			result.TargetHPAfter = hp.NewHP
			targetMaxHP = hp.MaxHP
			result.TargetDefeated = hp.NewHP == 0
		}

		result.Narrative = attackNarrative(result, attackerName, targetName, targetMaxHP)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func attackNarrative(result AttackResult, attackerName, targetName string, targetMaxHP int) string {
	switch {
	case result.Fumble:
		return fmt.Sprintf("%s swings wildly and misses! (Fumble: %d)", attackerName, result.AttackRoll)
	case result.Critical:
		if result.TargetDefeated {
			return fmt.Sprintf("CRITICAL HIT! %s strikes %s for %d %s damage! %s falls!",
				attackerName, targetName, result.Damage, result.DamageType, targetName)
		}
		return fmt.Sprintf("CRITICAL HIT! %s strikes %s for %d %s damage! (%d/%d HP)",
			attackerName, targetName, result.Damage, result.DamageType, result.TargetHPAfter, targetMaxHP)
	case result.Hit:
		if result.TargetDefeated {
			return fmt.Sprintf("%s hits %s (%d vs AC %d) for %d %s damage! %s goes down!",
				attackerName, targetName, result.AttackTotal, result.TargetAC, result.Damage, result.DamageType, targetName)
		}
		return fmt.Sprintf("%s hits %s (%d vs AC %d) for %d %s damage. (%d HP remaining)",
			attackerName, targetName, result.AttackTotal, result.TargetAC, result.Damage, result.DamageType, result.TargetHPAfter)
	default:
		return fmt.Sprintf("%s attacks %s but misses (%d vs AC %d).",
			attackerName, targetName, result.AttackTotal, result.TargetAC)
	}
}

// EndResult reports why combat should end.
type EndResult struct {
	Reason    string `json:"reason"`
	Narrative string `json:"narrative"`
}

// CheckCombatEnd reports whether the encounter is over: every enemy dead
// (and at least one enemy exists) or every party member down. Returns nil
// while combat is inactive or neither side is wiped.
//
// The enemies check runs first; when one resolution step wipes both sides
// at once, enemies_defeated is what gets reported. That ordering is
// incidental, not a priority rule.
func (e *Engine) CheckCombatEnd(ctx context.Context) (*EndResult, error) {
	var result *EndResult
	err := e.manager.View(ctx, func(world *domain.WorldState) {
		if !world.Combat.Active {
			return
		}

		if len(world.Enemies) > 0 {
			allDead := true
			for _, enemy := range world.Enemies {
				if enemy.IsAlive() {
					allDead = false
					break
				}
			}
			if allDead {
				result = &EndResult{
					Reason:    ReasonEnemiesDefeated,
					Narrative: "All enemies have been defeated! Victory!",
				}
				return
			}
		}

		if len(world.Characters) > 0 {
			allDown := true
			for _, char := range world.Characters {
				if char.IsAlive() {
					allDown = false
					break
				}
			}
			if allDown {
				result = &EndResult{
					Reason:    ReasonPartyDefeated,
					Narrative: "The party has fallen...",
				}
			}
		}
	})
	return result, err
}

// EndCombat idempotently clears the encounter and purges dead enemies.
// Enemies that are alive but irrelevant, such as ones that fled, are left
// for the caller to remove. Returns the transition narrative for the
// reason.
func (e *Engine) EndCombat(ctx context.Context, reason string) (string, error) {
	err := e.manager.Update(ctx, func(world *domain.WorldState) error {
		world.Combat.Clear()
		for id, enemy := range world.Enemies {
			if !enemy.IsAlive() {
				delete(world.Enemies, id)
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	switch reason {
	case ReasonEnemiesDefeated:
		return "=== COMBAT ENDS ===\n\nThe enemies lie defeated. You may search the area or continue on.", nil
	case ReasonPartyDefeated:
		return "=== COMBAT ENDS ===\n\nDarkness closes in...", nil
	case ReasonFled:
		return "=== COMBAT ENDS ===\n\nYou flee from the battle.", nil
	default:
		return "=== COMBAT ENDS ===", nil
	}
}

// Status returns a multi-line dump of the encounter: round number and each
// side's HP and alive state, with ">>>" marking whoever's turn it is.
// Display only, never control flow.
func (e *Engine) Status(ctx context.Context) (string, error) {
	var status string
	err := e.manager.View(ctx, func(world *domain.WorldState) {
		if !world.Combat.Active {
			status = "Not in combat."
			return
		}

		round := world.Combat.Round
		if round == 0 {
			round = 1
		}
		currentID := world.Combat.CurrentCombatant()

		lines := []string{fmt.Sprintf("=== COMBAT STATUS (Round %d) ===\n", round)}

		lines = append(lines, "PARTY:")
		for _, charID := range sortedKeys(world.Characters) {
			char := world.Characters[charID]
			tag := "ALIVE"
			if !char.IsAlive() {
				tag = "DOWN"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %d/%d HP [%s]",
				turnMarker(charID, currentID), char.Name, char.HP, char.MaxHP, tag))
		}

		lines = append(lines, "\nENEMIES:")
		for _, enemyID := range sortedKeys(world.Enemies) {
			enemy := world.Enemies[enemyID]
			tag := "ALIVE"
			if !enemy.IsAlive() {
				tag = "DEAD"
			}
			lines = append(lines, fmt.Sprintf("%s %s: %d/%d HP [%s]",
				turnMarker(enemyID, currentID), enemy.Name, enemy.HP, enemy.MaxHP, tag))
		}
		if len(world.Enemies) == 0 {
			lines = append(lines, "   (no enemies)")
		}

		status = strings.Join(lines, "\n")
	})
	return status, err
}

// attackBonus computes the attacker's to-hit bonus: fixed per archetype
// for enemies, ability modifier plus proficiency for characters. Unknown
// attackers contribute nothing.
func (e *Engine) attackBonus(world *domain.WorldState, attackerID, weapon string) int {
	if enemy, ok := world.Enemies[attackerID]; ok {
		return archetypeFor(attackerID, enemy).AttackBonus
	}
	char, ok := world.Characters[attackerID]
	if !ok {
		return 0
	}
	info := weaponFor(weapon)
	return char.Stats.Modifier(info.Ability) + char.ProficiencyBonus
}

// damageDice returns the damage notation and type for an attack: the
// archetype's fixed line for enemies, weapon dice plus governing-ability
// modifier for characters.
func (e *Engine) damageDice(world *domain.WorldState, attackerID, weapon string) (string, string) {
	if enemy, ok := world.Enemies[attackerID]; ok {
		archetype := archetypeFor(attackerID, enemy)
		return archetype.Damage, archetype.DamageType
	}
	char, ok := world.Characters[attackerID]
	if !ok {
		return "1d6", "slashing"
	}

	info := weaponFor(weapon)
	modifier := char.Stats.Modifier(info.Ability)
	notation := fmt.Sprintf("%s%+d", info.Damage, modifier)
	return notation, info.DamageType
}

// archetypeFor resolves an enemy's stat template: the tag stored at
// creation wins, then a substring match against the id for pre-tag saves,
// then the goblin-equivalent default.
func archetypeFor(enemyID string, enemy *domain.EnemyState) Archetype {
	if archetype, ok := Archetypes[enemy.Archetype]; ok {
		return archetype
	}
	lowered := strings.ToLower(enemyID)
	for _, tag := range sortedKeys(Archetypes) {
		if strings.Contains(lowered, tag) {
			return Archetypes[tag]
		}
	}
	return defaultArchetype
}

func combatantAlive(world *domain.WorldState, id string) bool {
	if enemy, ok := world.Enemies[id]; ok {
		return enemy.IsAlive()
	}
	if char, ok := world.Characters[id]; ok {
		return char.IsAlive()
	}
	return false
}

func displayName(world *domain.WorldState, id string) string {
	if char, ok := world.Characters[id]; ok {
		return char.Name
	}
	if enemy, ok := world.Enemies[id]; ok {
		return enemy.Name
	}
	return id
}

// idSuffix returns the text after the last underscore, used to label
// enemies created from the same archetype: "goblin_2" becomes "Goblin (2)".
func idSuffix(id string) string {
	parts := strings.Split(id, "_")
	return parts[len(parts)-1]
}

func turnMarker(id, currentID string) string {
	if id == currentID {
		return ">>>"
	}
	return "   "
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
