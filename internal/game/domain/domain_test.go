package domain

import (
	"encoding/json"
	"testing"
)

func TestCharacterConditions(t *testing.T) {
	char := &CharacterState{Name: "Vex", HP: 9, MaxHP: 9}

	char.AddCondition(ConditionUnconscious)
	char.AddCondition(ConditionUnconscious)
	if len(char.Conditions) != 1 {
		t.Errorf("duplicate AddCondition grew the list: %v", char.Conditions)
	}
	if !char.HasCondition(ConditionUnconscious) {
		t.Error("expected condition to be present")
	}

	char.RemoveCondition(ConditionUnconscious)
	if char.HasCondition(ConditionUnconscious) {
		t.Error("expected condition to be removed")
	}
	char.RemoveCondition(ConditionUnconscious)
}

func TestCharacterAlive(t *testing.T) {
	char := &CharacterState{Name: "Vex", HP: 9, MaxHP: 9}
	if !char.IsAlive() || char.IsUnconscious() {
		t.Error("character with hp > 0 should be alive and conscious")
	}

	char.HP = 0
	if char.IsAlive() || !char.IsUnconscious() {
		t.Error("character at 0 hp should be unconscious, not alive")
	}
}

func TestEnemyAlive(t *testing.T) {
	tcs := []struct {
		name  string
		enemy EnemyState
		want  bool
	}{
		{name: "alive with hp", enemy: EnemyState{State: EnemyAlive, HP: 7}, want: true},
		{name: "dead", enemy: EnemyState{State: EnemyDead, HP: 0}, want: false},
		{name: "fled with hp", enemy: EnemyState{State: EnemyFled, HP: 5}, want: false},
		{name: "alive tag at zero hp", enemy: EnemyState{State: EnemyAlive, HP: 0}, want: false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.enemy.IsAlive(); got != tc.want {
				t.Errorf("IsAlive() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCurrentCombatant(t *testing.T) {
	combat := CombatState{}
	if got := combat.CurrentCombatant(); got != "" {
		t.Errorf("inactive combat returned combatant %q", got)
	}

	combat = CombatState{Active: true}
	if got := combat.CurrentCombatant(); got != "" {
		t.Errorf("empty turn order returned combatant %q", got)
	}

	combat = CombatState{
		Active:           true,
		TurnOrder:        []string{"vex", "goblin_1", "thokk"},
		CurrentTurnIndex: 1,
	}
	if got := combat.CurrentCombatant(); got != "goblin_1" {
		t.Errorf("CurrentCombatant() = %q, want goblin_1", got)
	}

	combat.CurrentTurnIndex = 4
	if got := combat.CurrentCombatant(); got != "goblin_1" {
		t.Errorf("index wraps modulo turn order, got %q", got)
	}
}

func TestCombatClear(t *testing.T) {
	combat := CombatState{
		Active:           true,
		Round:            3,
		TurnOrder:        []string{"vex"},
		CurrentTurnIndex: 2,
		Combatants:       map[string]CombatantSnapshot{"vex": {Initiative: 15}},
	}

	combat.Clear()

	if combat.Active || combat.Round != 0 || len(combat.TurnOrder) != 0 ||
		combat.CurrentTurnIndex != 0 || len(combat.Combatants) != 0 {
		t.Errorf("Clear left residual state: %+v", combat)
	}
}

func TestShouldAct(t *testing.T) {
	tcs := []struct {
		name      string
		turn      TurnState
		agentID   string
		shouldAct bool
	}{
		{
			name:      "direct match",
			turn:      TurnState{ActiveAgent: "thokk", Mode: ModeDMControl},
			agentID:   "thokk",
			shouldAct: true,
		},
		{
			name:      "not addressed",
			turn:      TurnState{ActiveAgent: "thokk", Mode: ModeDMControl},
			agentID:   "lira",
			shouldAct: false,
		},
		{
			name:      "free form addressed",
			turn:      TurnState{Mode: ModeFreeForm, AddressedAgents: []string{"thokk", "lira"}},
			agentID:   "lira",
			shouldAct: true,
		},
		{
			name:      "free form unaddressed",
			turn:      TurnState{Mode: ModeFreeForm, AddressedAgents: []string{"thokk", "lira"}},
			agentID:   "npc",
			shouldAct: false,
		},
		{
			name:      "addressed list ignored outside free form",
			turn:      TurnState{Mode: ModeExploration, AddressedAgents: []string{"thokk"}},
			agentID:   "thokk",
			shouldAct: false,
		},
		{
			name:      "human sentinel blocks direct match",
			turn:      TurnState{ActiveAgent: HumanAgent, Mode: ModeFreeForm, AddressedAgents: []string{"thokk"}},
			agentID:   "thokk",
			shouldAct: false,
		},
		{
			name:      "human sentinel allows human",
			turn:      TurnState{ActiveAgent: HumanAgent, Mode: ModeDMControl},
			agentID:   HumanAgent,
			shouldAct: true,
		},
		{
			name:      "nobody set",
			turn:      TurnState{Mode: ModeDMControl},
			agentID:   "thokk",
			shouldAct: false,
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.turn.ShouldAct(tc.agentID); got != tc.shouldAct {
				t.Errorf("ShouldAct(%q) = %v, want %v", tc.agentID, got, tc.shouldAct)
			}
		})
	}
}

func TestIsHumanTurn(t *testing.T) {
	turn := TurnState{ActiveAgent: HumanAgent}
	if !turn.IsHumanTurn() {
		t.Error("expected human turn")
	}
	turn.ActiveAgent = "thokk"
	if turn.IsHumanTurn() {
		t.Error("expected non-human turn")
	}
}

func TestProgressFlags(t *testing.T) {
	progress := &NarrativeProgress{}

	progress.SetFlag("goblins_defeated", true)
	if !progress.GoblinsDefeated {
		t.Error("known flag name should set the dedicated field")
	}
	if !progress.GetFlag("goblins_defeated") {
		t.Error("GetFlag should read the dedicated field")
	}

	progress.SetFlag("found_secret_door", true)
	if !progress.CustomFlags["found_secret_door"] {
		t.Error("unknown flag name should land in the custom bag")
	}
	if !progress.GetFlag("found_secret_door") {
		t.Error("GetFlag should read the custom bag")
	}

	if progress.GetFlag("never_set") {
		t.Error("unset flag should read false")
	}

	progress.SetFlag("goblins_defeated", false)
	if progress.GetFlag("goblins_defeated") {
		t.Error("flags should be clearable")
	}
}

func TestWorldStateRoundTrip(t *testing.T) {
	world := NewWorldState("lost-mines-001")
	world.Characters["vex"] = &CharacterState{
		Name:           "Vex",
		CharacterClass: "Rogue",
		HP:             4,
		MaxHP:          9,
		AC:             14,
		Stats:          CharacterStats{Strength: 8, Dexterity: 17, Constitution: 12, Intelligence: 13, Wisdom: 12, Charisma: 14},
		Conditions:     []string{"poisoned"},
	}
	world.Enemies["goblin_1"] = &EnemyState{
		Name:      "Goblin (1)",
		Archetype: "goblin",
		HP:        0,
		MaxHP:     7,
		AC:        15,
		State:     EnemyDead,
	}
	world.NPCs["sildar"] = &NPCState{Name: "Sildar Hallwinter", State: "captured", Location: "cragmaw_hideout", Disposition: "friendly"}
	world.NarrativeProgress.SetFlag("ambush_triggered", true)
	world.NarrativeProgress.SetFlag("met_the_hermit", true)
	world.Combat = CombatState{
		Active:           true,
		Round:            2,
		TurnOrder:        []string{"vex", "goblin_1"},
		CurrentTurnIndex: 1,
		Combatants: map[string]CombatantSnapshot{
			"vex":      {Initiative: 18, HP: 9, MaxHP: 9, AC: 14},
			"goblin_1": {Initiative: 12, HP: 7, MaxHP: 7, AC: 15, IsEnemy: true},
		},
	}
	world.TurnState = TurnState{ActiveAgent: "vex", Mode: ModeCombat, TurnStartedAt: 1756500000}
	world.SessionNotes = []string{"party ambushed on the triboar trail"}

	raw, err := json.Marshal(world)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var restored WorldState
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	restored.Normalize()

	if restored.GameID != world.GameID || restored.CurrentScene != world.CurrentScene {
		t.Errorf("identity fields lost: %+v", restored)
	}
	if got := restored.Characters["vex"]; got == nil || got.HP != 4 || !got.HasCondition("poisoned") {
		t.Errorf("character did not round-trip: %+v", got)
	}
	if got := restored.Enemies["goblin_1"]; got == nil || got.State != EnemyDead || got.Archetype != "goblin" {
		t.Errorf("enemy did not round-trip: %+v", got)
	}
	if !restored.NarrativeProgress.GetFlag("ambush_triggered") || !restored.NarrativeProgress.GetFlag("met_the_hermit") {
		t.Error("progress flags did not round-trip")
	}
	if restored.Combat.CurrentCombatant() != "goblin_1" {
		t.Errorf("combat state did not round-trip: %+v", restored.Combat)
	}
	if snap := restored.Combat.Combatants["goblin_1"]; !snap.IsEnemy || snap.Initiative != 12 {
		t.Errorf("snapshot did not round-trip: %+v", snap)
	}
	if !restored.TurnState.ShouldAct("vex") {
		t.Error("turn state did not round-trip")
	}
	if len(restored.SessionNotes) != 1 {
		t.Errorf("session notes did not round-trip: %v", restored.SessionNotes)
	}
}

func TestNormalize(t *testing.T) {
	var world WorldState
	world.Normalize()

	if world.Characters == nil || world.NPCs == nil || world.Enemies == nil {
		t.Error("Normalize should initialize entity maps")
	}
	if world.Combat.Combatants == nil || world.NarrativeProgress.CustomFlags == nil {
		t.Error("Normalize should initialize nested maps")
	}
	if world.TurnState.Mode != ModeDMControl {
		t.Errorf("Normalize should default mode, got %q", world.TurnState.Mode)
	}
}
