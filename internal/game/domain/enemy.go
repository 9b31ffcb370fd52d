package domain

// Enemy state tags.
const (
	EnemyAlive = "alive"
	EnemyDead  = "dead"
	EnemyFled  = "fled"
)

// EnemyState is a hostile combatant, keyed by a caller-supplied identifier
// in WorldState.Enemies. Enemies are created when combat starts and dead
// ones are purged when it ends.
//
// The immunity and resistance lists are campaign data carried for display;
// the attack resolver does not consult them.
type EnemyState struct {
	Name                string   `json:"name"`
	Archetype           string   `json:"archetype,omitempty"`
	HP                  int      `json:"hp"`
	MaxHP               int      `json:"max_hp"`
	AC                  int      `json:"ac"`
	State               string   `json:"state"`
	DamageImmunities    []string `json:"damage_immunities"`
	DamageResistances   []string `json:"damage_resistances"`
	ConditionImmunities []string `json:"condition_immunities"`
	Notes               string   `json:"notes"`
}

// IsAlive reports whether the enemy is still a live combatant. A fled
// enemy has hit points but is no longer alive for combat purposes.
func (e *EnemyState) IsAlive() bool {
	return e.State == EnemyAlive && e.HP > 0
}

// NPCState is a narrative-only actor. NPCs share the world document but
// never participate in combat; their lifecycle is driven by narrative
// logic outside the engine.
type NPCState struct {
	Name        string `json:"name"`
	State       string `json:"state"`
	Location    string `json:"location"`
	Disposition string `json:"disposition"`
	Notes       string `json:"notes"`
}
