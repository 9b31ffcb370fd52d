package domain

import (
	"context"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/combat"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CombatStartInput represents the MCP tool input for starting combat.
type CombatStartInput struct {
	Party     []string `json:"party" jsonschema:"character ids joining the fight"`
	Enemies   []string `json:"enemies" jsonschema:"enemy ids to create, such as goblin_1 and goblin_2"`
	Archetype string   `json:"archetype,omitempty" jsonschema:"enemy stat template: goblin, bugbear, or wolf; defaults to goblin"`
}

// CombatStartResult represents the MCP tool output for starting combat.
type CombatStartResult struct {
	TurnOrder    []combat.CombatantInfo `json:"turn_order" jsonschema:"combatants in initiative order"`
	Announcement string                 `json:"announcement" jsonschema:"combat opening text with the turn order"`
}

// CombatStartTool declares the combat start tool.
func CombatStartTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "combat_start",
		Description: "Starts a combat encounter: creates enemies, rolls initiative, and sets the turn order",
	}
}

// CombatStartHandler handles combat start requests.
func CombatStartHandler(engine *combat.Engine) mcp.ToolHandlerFor[CombatStartInput, CombatStartResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CombatStartInput) (*mcp.CallToolResult, CombatStartResult, error) {
		result, err := engine.StartCombat(ctx, input.Party, input.Enemies, input.Archetype)
		if err != nil {
			return nil, CombatStartResult{}, toolError("start combat", err)
		}
		return nil, CombatStartResult{
			TurnOrder:    result.TurnOrder,
			Announcement: result.Announcement,
		}, nil
	}
}

// CombatAdvanceInput represents the MCP tool input for advancing the turn.
type CombatAdvanceInput struct{}

// CombatAdvanceResult represents the MCP tool output for advancing the turn.
type CombatAdvanceResult struct {
	Advanced      bool   `json:"advanced" jsonschema:"whether a next combatant was found"`
	CombatantID   string `json:"combatant_id,omitempty" jsonschema:"id of the combatant whose turn it now is"`
	CombatantName string `json:"combatant_name,omitempty" jsonschema:"display name of the combatant"`
	Round         int    `json:"round,omitempty" jsonschema:"current round number"`
	NewRound      bool   `json:"new_round,omitempty" jsonschema:"whether the advance rolled into a new round"`
	Announcement  string `json:"announcement,omitempty" jsonschema:"turn announcement text"`
}

// CombatAdvanceTool declares the turn advance tool.
func CombatAdvanceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "combat_advance",
		Description: "Advances to the next living combatant, rolling the round over when the order wraps",
	}
}

// CombatAdvanceHandler handles turn advance requests.
func CombatAdvanceHandler(engine *combat.Engine) mcp.ToolHandlerFor[CombatAdvanceInput, CombatAdvanceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CombatAdvanceInput) (*mcp.CallToolResult, CombatAdvanceResult, error) {
		advance, err := engine.AdvanceTurn(ctx)
		if err != nil {
			return nil, CombatAdvanceResult{}, toolError("advance turn", err)
		}
		if advance == nil {
			return nil, CombatAdvanceResult{}, nil
		}
		return nil, CombatAdvanceResult{
			Advanced:      true,
			CombatantID:   advance.CombatantID,
			CombatantName: advance.CombatantName,
			Round:         advance.Round,
			NewRound:      advance.NewRound,
			Announcement:  advance.Announcement,
		}, nil
	}
}

// CombatAttackInput represents the MCP tool input for resolving an attack.
type CombatAttackInput struct {
	Attacker     string `json:"attacker" jsonschema:"attacking character or enemy id"`
	Target       string `json:"target" jsonschema:"defending character or enemy id"`
	Weapon       string `json:"weapon,omitempty" jsonschema:"weapon name for character attackers; enemies use their archetype's attack"`
	Advantage    bool   `json:"advantage,omitempty" jsonschema:"attack with advantage"`
	Disadvantage bool   `json:"disadvantage,omitempty" jsonschema:"attack with disadvantage"`
}

// CombatAttackResult represents the MCP tool output for resolving an
// attack. When the attack ends the encounter, the combat end fields carry
// the reason and closing text.
type CombatAttackResult struct {
	Attacker       string `json:"attacker" jsonschema:"attacking id"`
	Target         string `json:"target" jsonschema:"defending id"`
	AttackRoll     int    `json:"attack_roll" jsonschema:"the kept d20 result"`
	AttackTotal    int    `json:"attack_total" jsonschema:"d20 plus attack bonus"`
	TargetAC       int    `json:"target_ac" jsonschema:"the defender's armor class"`
	Hit            bool   `json:"hit" jsonschema:"whether the attack connected"`
	Critical       bool   `json:"critical" jsonschema:"natural 20"`
	Fumble         bool   `json:"fumble" jsonschema:"natural 1"`
	Damage         int    `json:"damage" jsonschema:"damage dealt, zero on a miss"`
	DamageType     string `json:"damage_type" jsonschema:"type of the damage dealt"`
	TargetHPBefore int    `json:"target_hp_before" jsonschema:"defender HP before the attack"`
	TargetHPAfter  int    `json:"target_hp_after" jsonschema:"defender HP after the attack"`
	TargetDefeated bool   `json:"target_defeated" jsonschema:"whether the defender dropped to 0 HP"`
	Narrative      string `json:"narrative" jsonschema:"attack outcome text"`
	CombatEnded    bool   `json:"combat_ended" jsonschema:"whether the attack ended the encounter"`
	EndReason      string `json:"end_reason,omitempty" jsonschema:"why combat ended"`
	EndNarrative   string `json:"end_narrative,omitempty" jsonschema:"combat closing text"`
}

// CombatAttackTool declares the attack resolution tool.
func CombatAttackTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "combat_attack",
		Description: "Resolves one attack: rolls to hit against AC, applies damage with critical doubling, and ends combat when a side is wiped",
	}
}

// CombatAttackHandler handles attack resolution. After the attack lands it
// checks whether either side is wiped and, if so, ends the encounter in
// the same call so the caller never narrates a dead fight.
func CombatAttackHandler(engine *combat.Engine) mcp.ToolHandlerFor[CombatAttackInput, CombatAttackResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CombatAttackInput) (*mcp.CallToolResult, CombatAttackResult, error) {
		attack, err := engine.ResolveAttack(ctx, input.Attacker, input.Target, input.Weapon, input.Advantage, input.Disadvantage)
		if err != nil {
			return nil, CombatAttackResult{}, toolError("resolve attack", err)
		}

		result := CombatAttackResult{
			Attacker:       attack.Attacker,
			Target:         attack.Target,
			AttackRoll:     attack.AttackRoll,
			AttackTotal:    attack.AttackTotal,
			TargetAC:       attack.TargetAC,
			Hit:            attack.Hit,
			Critical:       attack.Critical,
			Fumble:         attack.Fumble,
			Damage:         attack.Damage,
			DamageType:     attack.DamageType,
			TargetHPBefore: attack.TargetHPBefore,
			TargetHPAfter:  attack.TargetHPAfter,
			TargetDefeated: attack.TargetDefeated,
			Narrative:      attack.Narrative,
		}

		end, err := engine.CheckCombatEnd(ctx)
		if err != nil {
			return nil, CombatAttackResult{}, toolError("check combat end", err)
		}
		if end != nil {
			narrative, err := engine.EndCombat(ctx, end.Reason)
			if err != nil {
				return nil, CombatAttackResult{}, toolError("end combat", err)
			}
			result.CombatEnded = true
			result.EndReason = end.Reason
			result.EndNarrative = narrative
		}
		return nil, result, nil
	}
}

// CombatStatusInput represents the MCP tool input for the combat status.
type CombatStatusInput struct{}

// CombatStatusResult represents the MCP tool output for the combat status.
type CombatStatusResult struct {
	Status string `json:"status" jsonschema:"multi-line combat status display"`
}

// CombatStatusTool declares the combat status tool.
func CombatStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "combat_status",
		Description: "Shows the round, every combatant's HP, and whose turn it is",
	}
}

// CombatStatusHandler handles combat status requests.
func CombatStatusHandler(engine *combat.Engine) mcp.ToolHandlerFor[CombatStatusInput, CombatStatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ CombatStatusInput) (*mcp.CallToolResult, CombatStatusResult, error) {
		status, err := engine.Status(ctx)
		if err != nil {
			return nil, CombatStatusResult{}, toolError("combat status", err)
		}
		return nil, CombatStatusResult{Status: status}, nil
	}
}

// CombatEndInput represents the MCP tool input for ending combat.
type CombatEndInput struct {
	Reason string `json:"reason,omitempty" jsonschema:"why combat ends: enemies_defeated, party_defeated, fled, or story"`
}

// CombatEndResult represents the MCP tool output for ending combat.
type CombatEndResult struct {
	Reason    string `json:"reason" jsonschema:"the reason combat ended"`
	Narrative string `json:"narrative" jsonschema:"combat closing text"`
}

// CombatEndTool declares the combat end tool.
func CombatEndTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "combat_end",
		Description: "Ends the encounter, clearing combat state and removing dead enemies",
	}
}

// CombatEndHandler handles explicit combat end requests.
func CombatEndHandler(engine *combat.Engine) mcp.ToolHandlerFor[CombatEndInput, CombatEndResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CombatEndInput) (*mcp.CallToolResult, CombatEndResult, error) {
		reason := input.Reason
		if reason == "" {
			reason = combat.ReasonStory
		}
		narrative, err := engine.EndCombat(ctx, reason)
		if err != nil {
			return nil, CombatEndResult{}, toolError("end combat", err)
		}
		return nil, CombatEndResult{Reason: reason, Narrative: narrative}, nil
	}
}
