package domain

// Turn modes. The mode determines which participants may act: dm_control
// gives the floor to the controller only, combat enforces strict turn
// order, exploration is open to all, and free_form opens the floor to the
// agents named in AddressedAgents.
const (
	ModeDMControl   = "dm_control"
	ModeCombat      = "combat"
	ModeExploration = "exploration"
	ModeFreeForm    = "free_form"
)

// HumanAgent is the reserved active-agent sentinel meaning the human
// player holds the floor. Every automated participant must treat it as
// "not my turn" regardless of mode.
const HumanAgent = "human"

// TurnState records which external actor may act next. The controller
// replaces the whole record atomically on each decision; there is no
// partial update and no terminal state.
//
// TurnState governs chat turn-taking in general and is deliberately
// decoupled from CombatState's round order; the two can disagree
// transiently and callers must tolerate that.
type TurnState struct {
	ActiveAgent     string   `json:"active_agent,omitempty"`
	Mode            string   `json:"mode"`
	AddressedAgents []string `json:"addressed_agents"`
	TurnStartedAt   float64  `json:"turn_started_at,omitempty"`
}

// ShouldAct reports whether the named participant should act now.
//
// The human sentinel is checked before the general rules: when the active
// agent is "human", every other participant sits out even if free_form
// addressing would otherwise include them. Getting this ordering backwards
// lets automated participants talk over the human player.
func (t *TurnState) ShouldAct(agentID string) bool {
	if t.ActiveAgent == HumanAgent {
		return agentID == HumanAgent
	}
	if t.ActiveAgent == agentID {
		return true
	}
	if t.Mode == ModeFreeForm {
		for _, addressed := range t.AddressedAgents {
			if addressed == agentID {
				return true
			}
		}
	}
	return false
}

// IsHumanTurn reports whether the human player holds the floor.
func (t *TurnState) IsHumanTurn() bool {
	return t.ActiveAgent == HumanAgent
}
