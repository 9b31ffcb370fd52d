// Package domain defines the MCP tool surface: tool declarations, their
// typed input and output schemas, and the handlers that bind them to the
// dice roller, the world-state manager, and the combat engine.
package domain
