// Package service assembles the MCP server: it binds every tool in the
// domain package to the game engine and serves them over stdio.
package service

import (
	"context"
	"fmt"

	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/core/dice"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/combat"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/game/state"
	"github.com/bailey-dickens-thenvoi/lost-mine-of-thenvoi/internal/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "lost-mine-of-thenvoi"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the game engine's MCP tool surface.
type Server struct {
	server *mcp.Server
}

// New builds a server with every game tool registered against the given
// manager, combat engine, and roller.
func New(manager *state.Manager, engine *combat.Engine, roller *dice.Roller) (*Server, error) {
	if manager == nil || engine == nil || roller == nil {
		return nil, fmt.Errorf("manager, engine, and roller are required")
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(server, domain.RollDiceTool(), domain.RollDiceHandler(roller))

	mcp.AddTool(server, domain.WorldGetTool(), domain.WorldGetHandler(manager))
	mcp.AddTool(server, domain.WorldSetTool(), domain.WorldSetHandler(manager))
	mcp.AddTool(server, domain.UpdateHPTool(), domain.UpdateHPHandler(manager))
	mcp.AddTool(server, domain.AddEnemyTool(), domain.AddEnemyHandler(manager))
	mcp.AddTool(server, domain.RemoveEnemyTool(), domain.RemoveEnemyHandler(manager))
	mcp.AddTool(server, domain.ProgressFlagGetTool(), domain.ProgressFlagGetHandler(manager))
	mcp.AddTool(server, domain.ProgressFlagSetTool(), domain.ProgressFlagSetHandler(manager))
	mcp.AddTool(server, domain.PartyStatusTool(), domain.PartyStatusHandler(manager))
	mcp.AddTool(server, domain.LivingEnemiesTool(), domain.LivingEnemiesHandler(manager))

	mcp.AddTool(server, domain.CombatStartTool(), domain.CombatStartHandler(engine))
	mcp.AddTool(server, domain.CombatAdvanceTool(), domain.CombatAdvanceHandler(engine))
	mcp.AddTool(server, domain.CombatAttackTool(), domain.CombatAttackHandler(engine))
	mcp.AddTool(server, domain.CombatStatusTool(), domain.CombatStatusHandler(engine))
	mcp.AddTool(server, domain.CombatEndTool(), domain.CombatEndHandler(engine))

	mcp.AddTool(server, domain.TurnSetTool(), domain.TurnSetHandler(manager))
	mcp.AddTool(server, domain.TurnCheckTool(), domain.TurnCheckHandler(manager))

	return &Server{server: server}, nil
}

// Run serves MCP over stdio until the context is canceled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}
