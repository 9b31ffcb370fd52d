package domain

// WorldState is the root aggregate for one campaign. It owns every other
// record exclusively and is the unit of persistence: the whole tree
// serializes to one JSON document whose field names match the json tags
// here.
type WorldState struct {
	GameID            string                     `json:"game_id"`
	CurrentChapter    int                        `json:"current_chapter"`
	CurrentScene      string                     `json:"current_scene"`
	NarrativeProgress NarrativeProgress          `json:"narrative_progress"`
	Combat            CombatState                `json:"combat"`
	TurnState         TurnState                  `json:"turn_state"`
	Characters        map[string]*CharacterState `json:"characters"`
	NPCs              map[string]*NPCState       `json:"npcs"`
	Enemies           map[string]*EnemyState     `json:"enemies"`
	SessionNotes      []string                   `json:"session_notes"`
}

// NewWorldState returns an empty world with initialized maps and the
// encounter cleared.
func NewWorldState(gameID string) *WorldState {
	world := &WorldState{
		GameID:         gameID,
		CurrentChapter: 1,
		CurrentScene:   "intro",
		TurnState:      TurnState{Mode: ModeDMControl},
		Characters:     map[string]*CharacterState{},
		NPCs:           map[string]*NPCState{},
		Enemies:        map[string]*EnemyState{},
	}
	world.Combat.Clear()
	return world
}

// Normalize initializes any nil maps after deserialization so lookups and
// inserts never hit a nil map.
func (w *WorldState) Normalize() {
	if w.Characters == nil {
		w.Characters = map[string]*CharacterState{}
	}
	if w.NPCs == nil {
		w.NPCs = map[string]*NPCState{}
	}
	if w.Enemies == nil {
		w.Enemies = map[string]*EnemyState{}
	}
	if w.Combat.Combatants == nil {
		w.Combat.Combatants = map[string]CombatantSnapshot{}
	}
	if w.NarrativeProgress.CustomFlags == nil {
		w.NarrativeProgress.CustomFlags = map[string]bool{}
	}
	if w.TurnState.Mode == "" {
		w.TurnState.Mode = ModeDMControl
	}
}
