package domain

import (
	"context"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/combat"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/state"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// WorldGetInput represents the MCP tool input for reading a state path.
type WorldGetInput struct {
	Path string `json:"path" jsonschema:"dot-separated path into the world state, such as characters.human_player.hp"`
}

// WorldGetResult represents the MCP tool output for reading a state path.
type WorldGetResult struct {
	Path  string `json:"path" jsonschema:"the path that was read"`
	Found bool   `json:"found" jsonschema:"whether the path resolved to a value"`
	Value any    `json:"value,omitempty" jsonschema:"the value at the path"`
}

// WorldGetTool declares the world state read tool.
func WorldGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_get",
		Description: "Reads a value from the world state by dot-separated path",
	}
}

// WorldGetHandler handles world state reads.
func WorldGetHandler(manager *state.Manager) mcp.ToolHandlerFor[WorldGetInput, WorldGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldGetInput) (*mcp.CallToolResult, WorldGetResult, error) {
		value, found, err := manager.Get(ctx, input.Path)
		if err != nil {
			return nil, WorldGetResult{}, toolError("get "+input.Path, err)
		}
		result := WorldGetResult{Path: input.Path, Found: found}
		if found {
			result.Value = value
		}
		return nil, result, nil
	}
}

// WorldSetInput represents the MCP tool input for writing a state path.
type WorldSetInput struct {
	Path  string `json:"path" jsonschema:"dot-separated path into the world state"`
	Value any    `json:"value" jsonschema:"the value to write at the path"`
}

// WorldSetResult represents the MCP tool output for writing a state path.
type WorldSetResult struct {
	Path    string `json:"path" jsonschema:"the path that was written"`
	Updated bool   `json:"updated" jsonschema:"whether the write was applied"`
}

// WorldSetTool declares the world state write tool.
func WorldSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_set",
		Description: "Writes a value into the world state by dot-separated path",
	}
}

// WorldSetHandler handles world state writes.
func WorldSetHandler(manager *state.Manager) mcp.ToolHandlerFor[WorldSetInput, WorldSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldSetInput) (*mcp.CallToolResult, WorldSetResult, error) {
		if err := manager.Set(ctx, input.Path, input.Value); err != nil {
			return nil, WorldSetResult{}, toolError("set "+input.Path, err)
		}
		return nil, WorldSetResult{Path: input.Path, Updated: true}, nil
	}
}

// UpdateHPInput represents the MCP tool input for applying an HP delta.
type UpdateHPInput struct {
	EntityID string `json:"entity_id" jsonschema:"character or enemy id"`
	Delta    int    `json:"delta" jsonschema:"HP change, negative for damage and positive for healing"`
}

// UpdateHPResult represents the MCP tool output for applying an HP delta.
type UpdateHPResult struct {
	EntityID    string `json:"entity_id" jsonschema:"the entity that changed"`
	Name        string `json:"name" jsonschema:"display name of the entity"`
	OldHP       int    `json:"old_hp" jsonschema:"HP before the change"`
	NewHP       int    `json:"new_hp" jsonschema:"HP after clamping to the valid range"`
	MaxHP       int    `json:"max_hp" jsonschema:"the entity's maximum HP"`
	IsCharacter bool   `json:"is_character" jsonschema:"whether the entity is a party character"`
	Unconscious bool   `json:"unconscious" jsonschema:"whether a character dropped to 0 HP"`
	Dead        bool   `json:"dead" jsonschema:"whether an enemy dropped to 0 HP"`
}

// UpdateHPTool declares the HP update tool.
func UpdateHPTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "update_hp",
		Description: "Applies a hit point change to a character or enemy, handling unconsciousness and death",
	}
}

// UpdateHPHandler handles HP updates.
func UpdateHPHandler(manager *state.Manager) mcp.ToolHandlerFor[UpdateHPInput, UpdateHPResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input UpdateHPInput) (*mcp.CallToolResult, UpdateHPResult, error) {
		hp, err := manager.UpdateHP(ctx, input.EntityID, input.Delta)
		if err != nil {
			return nil, UpdateHPResult{}, toolError("update hp for "+input.EntityID, err)
		}
		return nil, UpdateHPResult{
			EntityID:    hp.EntityID,
			Name:        hp.Name,
			OldHP:       hp.OldHP,
			NewHP:       hp.NewHP,
			MaxHP:       hp.MaxHP,
			IsCharacter: hp.IsCharacter,
			Unconscious: hp.Unconscious,
			Dead:        hp.Dead,
		}, nil
	}
}

// AddEnemyInput represents the MCP tool input for adding an enemy.
type AddEnemyInput struct {
	EnemyID   string `json:"enemy_id" jsonschema:"id for the new enemy, such as goblin_3"`
	Archetype string `json:"archetype,omitempty" jsonschema:"stat template: goblin, bugbear, or wolf; defaults to goblin"`
	Name      string `json:"name,omitempty" jsonschema:"display name override"`
}

// AddEnemyResult represents the MCP tool output for adding an enemy.
type AddEnemyResult struct {
	EnemyID string `json:"enemy_id" jsonschema:"the id that was added"`
	Name    string `json:"name" jsonschema:"display name of the enemy"`
	HP      int    `json:"hp" jsonschema:"starting hit points"`
	AC      int    `json:"ac" jsonschema:"armor class"`
}

// AddEnemyTool declares the enemy creation tool.
func AddEnemyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_enemy",
		Description: "Adds an enemy to the world from a stat archetype",
	}
}

// AddEnemyHandler handles enemy creation outside of combat start.
func AddEnemyHandler(manager *state.Manager) mcp.ToolHandlerFor[AddEnemyInput, AddEnemyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input AddEnemyInput) (*mcp.CallToolResult, AddEnemyResult, error) {
		enemy, err := combat.NewEnemy(input.EnemyID, input.Archetype, input.Name)
		if err != nil {
			return nil, AddEnemyResult{}, toolError("add enemy "+input.EnemyID, err)
		}
		if err := manager.AddEnemy(ctx, input.EnemyID, enemy); err != nil {
			return nil, AddEnemyResult{}, toolError("add enemy "+input.EnemyID, err)
		}
		return nil, AddEnemyResult{
			EnemyID: input.EnemyID,
			Name:    enemy.Name,
			HP:      enemy.HP,
			AC:      enemy.AC,
		}, nil
	}
}

// RemoveEnemyInput represents the MCP tool input for removing an enemy.
type RemoveEnemyInput struct {
	EnemyID string `json:"enemy_id" jsonschema:"id of the enemy to remove"`
}

// RemoveEnemyResult represents the MCP tool output for removing an enemy.
type RemoveEnemyResult struct {
	EnemyID string `json:"enemy_id" jsonschema:"the id that was removed"`
	Removed bool   `json:"removed" jsonschema:"whether the enemy existed"`
}

// RemoveEnemyTool declares the enemy removal tool.
func RemoveEnemyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_enemy",
		Description: "Removes an enemy from the world",
	}
}

// RemoveEnemyHandler handles enemy removal.
func RemoveEnemyHandler(manager *state.Manager) mcp.ToolHandlerFor[RemoveEnemyInput, RemoveEnemyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input RemoveEnemyInput) (*mcp.CallToolResult, RemoveEnemyResult, error) {
		removed, err := manager.RemoveEnemy(ctx, input.EnemyID)
		if err != nil {
			return nil, RemoveEnemyResult{}, toolError("remove enemy "+input.EnemyID, err)
		}
		return nil, RemoveEnemyResult{EnemyID: input.EnemyID, Removed: removed}, nil
	}
}

// ProgressFlagGetInput represents the MCP tool input for reading a flag.
type ProgressFlagGetInput struct {
	Flag string `json:"flag" jsonschema:"narrative progress flag name"`
}

// ProgressFlagGetResult represents the MCP tool output for reading a flag.
type ProgressFlagGetResult struct {
	Flag  string `json:"flag" jsonschema:"the flag that was read"`
	Value bool   `json:"value" jsonschema:"the flag value, false if never set"`
}

// ProgressFlagGetTool declares the progress flag read tool.
func ProgressFlagGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "progress_flag_get",
		Description: "Reads a narrative progress flag",
	}
}

// ProgressFlagGetHandler handles progress flag reads.
func ProgressFlagGetHandler(manager *state.Manager) mcp.ToolHandlerFor[ProgressFlagGetInput, ProgressFlagGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProgressFlagGetInput) (*mcp.CallToolResult, ProgressFlagGetResult, error) {
		value, err := manager.GetProgressFlag(ctx, input.Flag)
		if err != nil {
			return nil, ProgressFlagGetResult{}, toolError("get flag "+input.Flag, err)
		}
		return nil, ProgressFlagGetResult{Flag: input.Flag, Value: value}, nil
	}
}

// ProgressFlagSetInput represents the MCP tool input for setting a flag.
type ProgressFlagSetInput struct {
	Flag  string `json:"flag" jsonschema:"narrative progress flag name"`
	Value bool   `json:"value" jsonschema:"the value to set"`
}

// ProgressFlagSetResult represents the MCP tool output for setting a flag.
type ProgressFlagSetResult struct {
	Flag  string `json:"flag" jsonschema:"the flag that was set"`
	Value bool   `json:"value" jsonschema:"the value that was stored"`
}

// ProgressFlagSetTool declares the progress flag write tool.
func ProgressFlagSetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "progress_flag_set",
		Description: "Sets a narrative progress flag",
	}
}

// ProgressFlagSetHandler handles progress flag writes.
func ProgressFlagSetHandler(manager *state.Manager) mcp.ToolHandlerFor[ProgressFlagSetInput, ProgressFlagSetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ProgressFlagSetInput) (*mcp.CallToolResult, ProgressFlagSetResult, error) {
		if err := manager.SetProgressFlag(ctx, input.Flag, input.Value); err != nil {
			return nil, ProgressFlagSetResult{}, toolError("set flag "+input.Flag, err)
		}
		return nil, ProgressFlagSetResult{Flag: input.Flag, Value: input.Value}, nil
	}
}

// PartyStatusInput represents the MCP tool input for the party summary.
type PartyStatusInput struct{}

// PartyStatusResult represents the MCP tool output for the party summary.
type PartyStatusResult struct {
	Members []state.MemberStatus `json:"members" jsonschema:"every party member, sorted by id"`
}

// PartyStatusTool declares the party status tool.
func PartyStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "party_status",
		Description: "Summarizes every party member's hit points and conditions",
	}
}

// PartyStatusHandler handles party status requests.
func PartyStatusHandler(manager *state.Manager) mcp.ToolHandlerFor[PartyStatusInput, PartyStatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ PartyStatusInput) (*mcp.CallToolResult, PartyStatusResult, error) {
		members, err := manager.PartyStatus(ctx)
		if err != nil {
			return nil, PartyStatusResult{}, toolError("party status", err)
		}
		return nil, PartyStatusResult{Members: members}, nil
	}
}

// LivingEnemiesInput represents the MCP tool input for listing enemies.
type LivingEnemiesInput struct{}

// LivingEnemiesResult represents the MCP tool output for listing enemies.
type LivingEnemiesResult struct {
	EnemyIDs []string `json:"enemy_ids" jsonschema:"ids of all living enemies, sorted"`
	Count    int      `json:"count" jsonschema:"number of living enemies"`
}

// LivingEnemiesTool declares the living enemies tool.
func LivingEnemiesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "living_enemies",
		Description: "Lists the ids of all enemies still alive",
	}
}

// LivingEnemiesHandler handles living enemy listings.
func LivingEnemiesHandler(manager *state.Manager) mcp.ToolHandlerFor[LivingEnemiesInput, LivingEnemiesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ LivingEnemiesInput) (*mcp.CallToolResult, LivingEnemiesResult, error) {
		living, err := manager.LivingEnemies(ctx)
		if err != nil {
			return nil, LivingEnemiesResult{}, toolError("living enemies", err)
		}
		return nil, LivingEnemiesResult{EnemyIDs: living, Count: len(living)}, nil
	}
}
