package domain

import (
	"context"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/core/dice"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RollDiceInput represents the MCP tool input for a dice roll.
type RollDiceInput struct {
	Notation     string `json:"notation" jsonschema:"dice notation such as 1d20+5 or 2d6"`
	Purpose      string `json:"purpose,omitempty" jsonschema:"what the roll is for, such as Attack Roll or Stealth Check"`
	Roller       string `json:"roller,omitempty" jsonschema:"display name of whoever is rolling"`
	Advantage    bool   `json:"advantage,omitempty" jsonschema:"roll two d20s and keep the higher"`
	Disadvantage bool   `json:"disadvantage,omitempty" jsonschema:"roll two d20s and keep the lower"`
}

// RollDiceResult represents the MCP tool output for a dice roll.
type RollDiceResult struct {
	Notation         string `json:"notation" jsonschema:"the notation that was rolled"`
	Rolls            []int  `json:"rolls" jsonschema:"raw die results in roll order"`
	KeptRoll         *int   `json:"kept_roll,omitempty" jsonschema:"the die that counted under advantage or disadvantage"`
	Modifier         int    `json:"modifier" jsonschema:"flat modifier applied to the total"`
	Total            int    `json:"total" jsonschema:"sum of kept dice and modifier"`
	Purpose          string `json:"purpose,omitempty" jsonschema:"what the roll was for"`
	Roller           string `json:"roller,omitempty" jsonschema:"who rolled"`
	AdvantageUsed    bool   `json:"advantage_used" jsonschema:"whether advantage applied"`
	DisadvantageUsed bool   `json:"disadvantage_used" jsonschema:"whether disadvantage applied"`
	Critical         bool   `json:"critical" jsonschema:"natural 20 on a single d20"`
	Fumble           bool   `json:"fumble" jsonschema:"natural 1 on a single d20"`
	Narrative        string `json:"narrative" jsonschema:"human-readable roll summary"`
}

// RollDiceTool declares the dice rolling tool.
func RollDiceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "roll_dice",
		Description: "Rolls dice using standard notation, with optional advantage or disadvantage on single d20 rolls",
	}
}

// RollDiceHandler handles dice roll requests against the shared roller.
func RollDiceHandler(roller *dice.Roller) mcp.ToolHandlerFor[RollDiceInput, RollDiceResult] {
	return func(_ context.Context, _ *mcp.CallToolRequest, input RollDiceInput) (*mcp.CallToolResult, RollDiceResult, error) {
		result, err := roller.Roll(input.Notation, input.Purpose, input.Roller, input.Advantage, input.Disadvantage)
		if err != nil {
			return nil, RollDiceResult{}, toolError("roll dice", err)
		}

		return nil, RollDiceResult{
			Notation:         result.Notation,
			Rolls:            result.Rolls,
			KeptRoll:         result.KeptRoll,
			Modifier:         result.Modifier,
			Total:            result.Total,
			Purpose:          result.Purpose,
			Roller:           result.Roller,
			AdvantageUsed:    result.AdvantageUsed,
			DisadvantageUsed: result.DisadvantageUsed,
			Critical:         result.Critical,
			Fumble:           result.Fumble,
			Narrative:        dice.Format(result),
		}, nil
	}
}
