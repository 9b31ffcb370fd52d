package domain

import (
	"context"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/state"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// TurnSetInput represents the MCP tool input for handing off the turn.
type TurnSetInput struct {
	AgentID         string   `json:"agent_id,omitempty" jsonschema:"the agent whose turn it becomes; empty hands control back to the narrator"`
	Mode            string   `json:"mode,omitempty" jsonschema:"turn mode: dm_control, combat, exploration, or free_form; defaults to dm_control"`
	AddressedAgents []string `json:"addressed_agents,omitempty" jsonschema:"agents allowed to act in free_form mode"`
}

// TurnSetResult represents the MCP tool output for handing off the turn.
type TurnSetResult struct {
	ActiveAgent     string   `json:"active_agent,omitempty" jsonschema:"the agent now holding the turn"`
	Mode            string   `json:"mode" jsonschema:"the mode now in effect"`
	AddressedAgents []string `json:"addressed_agents,omitempty" jsonschema:"agents allowed to act in free_form mode"`
}

// TurnSetTool declares the turn handoff tool.
func TurnSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_set",
		Description: "Hands the turn to an agent and sets the turn mode",
	}
}

// TurnSetHandler handles turn handoffs.
func TurnSetHandler(manager *state.Manager) mcp.ToolHandlerFor[TurnSetInput, TurnSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TurnSetInput) (*mcp.CallToolResult, TurnSetResult, error) {
		if err := manager.SetTurn(ctx, input.AgentID, input.Mode, input.AddressedAgents); err != nil {
			return nil, TurnSetResult{}, toolError("set turn", err)
		}
		turn, err := manager.TurnState(ctx)
		if err != nil {
			return nil, TurnSetResult{}, toolError("read turn", err)
		}
		return nil, TurnSetResult{
			ActiveAgent:     turn.ActiveAgent,
			Mode:            turn.Mode,
			AddressedAgents: turn.AddressedAgents,
		}, nil
	}
}

// TurnCheckInput represents the MCP tool input for a turn-gate check.
type TurnCheckInput struct {
	AgentID string `json:"agent_id" jsonschema:"the agent asking whether it should act"`
}

// TurnCheckResult represents the MCP tool output for a turn-gate check.
type TurnCheckResult struct {
	AgentID     string `json:"agent_id" jsonschema:"the agent that was checked"`
	ShouldAct   bool   `json:"should_act" jsonschema:"whether the agent should act now"`
	ActiveAgent string `json:"active_agent,omitempty" jsonschema:"the agent currently holding the turn"`
	Mode        string `json:"mode" jsonschema:"the turn mode in effect"`
	IsHumanTurn bool   `json:"is_human_turn" jsonschema:"whether the human player holds the turn"`
}

// TurnCheckTool declares the turn-gate check tool.
func TurnCheckTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "turn_check",
		Description: "Checks whether an agent should act under the current turn gate",
	}
}

// TurnCheckHandler handles turn-gate checks.
func TurnCheckHandler(manager *state.Manager) mcp.ToolHandlerFor[TurnCheckInput, TurnCheckResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TurnCheckInput) (*mcp.CallToolResult, TurnCheckResult, error) {
		should, err := manager.ShouldAct(ctx, input.AgentID)
		if err != nil {
			return nil, TurnCheckResult{}, toolError("check turn", err)
		}
		turn, err := manager.TurnState(ctx)
		if err != nil {
			return nil, TurnCheckResult{}, toolError("read turn", err)
		}
		return nil, TurnCheckResult{
			AgentID:     input.AgentID,
			ShouldAct:   should,
			ActiveAgent: turn.ActiveAgent,
			Mode:        turn.Mode,
			IsHumanTurn: turn.IsHumanTurn(),
		}, nil
	}
}
