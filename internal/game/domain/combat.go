package domain

// CombatantSnapshot captures a combatant's stats at combat start for
// display purposes. Live HP and alive checks always go back to the store;
// the snapshot only records where everyone started.
type CombatantSnapshot struct {
	Initiative int      `json:"initiative"`
	HP         int      `json:"hp"`
	MaxHP      int      `json:"max_hp"`
	AC         int      `json:"ac"`
	IsEnemy    bool     `json:"is_enemy"`
	Conditions []string `json:"conditions,omitempty"`
}

// CombatState is the encounter-scoped metadata: whose turn it is, in what
// order, and what round the encounter is on. When Active is false, Round
// is 0 and TurnOrder is empty.
type CombatState struct {
	Active           bool                         `json:"active"`
	Round            int                          `json:"round"`
	TurnOrder        []string                     `json:"turn_order"`
	CurrentTurnIndex int                          `json:"current_turn_index"`
	Combatants       map[string]CombatantSnapshot `json:"combatants"`
}

// CurrentCombatant returns the id of the combatant whose turn it is, or ""
// when combat is inactive or the turn order is empty.
func (c *CombatState) CurrentCombatant() string {
	if !c.Active || len(c.TurnOrder) == 0 {
		return ""
	}
	return c.TurnOrder[c.CurrentTurnIndex%len(c.TurnOrder)]
}

// Clear resets the encounter to its inactive defaults. Safe to call on an
// already-inactive encounter.
func (c *CombatState) Clear() {
	c.Active = false
	c.Round = 0
	c.TurnOrder = nil
	c.CurrentTurnIndex = 0
	c.Combatants = map[string]CombatantSnapshot{}
}
