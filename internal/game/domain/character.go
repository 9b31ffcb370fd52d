package domain

// ConditionUnconscious is applied to a character whose hit points reach
// zero and removed when they climb back above zero.
const ConditionUnconscious = "unconscious"

// CharacterState is a player-controlled combatant. It is keyed by a stable
// identifier in WorldState.Characters; the id itself is not stored in the
// record. Characters are never deleted during a campaign.
type CharacterState struct {
	Name             string              `json:"name"`
	CharacterClass   string              `json:"character_class"`
	Race             string              `json:"race"`
	Background       string              `json:"background"`
	Level            int                 `json:"level"`
	HP               int                 `json:"hp"`
	MaxHP            int                 `json:"max_hp"`
	AC               int                 `json:"ac"`
	Stats            CharacterStats      `json:"stats"`
	ProficiencyBonus int                 `json:"proficiency_bonus"`
	SavingThrows     []string            `json:"saving_throws"`
	Skills           []string            `json:"skills"`
	Conditions       []string            `json:"conditions"`
	Inventory        []string            `json:"inventory"`
	Features         []string            `json:"features"`
	RacialTraits     []string            `json:"racial_traits"`
	SpellSlots       map[string]int      `json:"spell_slots"`
	SpellsKnown      map[string][]string `json:"spells_known"`
}

// IsAlive reports whether the character has hit points remaining.
func (c *CharacterState) IsAlive() bool {
	return c.HP > 0
}

// IsUnconscious reports whether the character is at zero hit points.
func (c *CharacterState) IsUnconscious() bool {
	return c.HP == 0
}

// HasCondition reports whether the named condition is active.
func (c *CharacterState) HasCondition(condition string) bool {
	for _, existing := range c.Conditions {
		if existing == condition {
			return true
		}
	}
	return false
}

// AddCondition applies a condition. Adding a condition the character
// already has is a no-op.
func (c *CharacterState) AddCondition(condition string) {
	if !c.HasCondition(condition) {
		c.Conditions = append(c.Conditions, condition)
	}
}

// RemoveCondition clears a condition if present.
func (c *CharacterState) RemoveCondition(condition string) {
	for i, existing := range c.Conditions {
		if existing == condition {
			c.Conditions = append(c.Conditions[:i], c.Conditions[i+1:]...)
			return
		}
	}
}
