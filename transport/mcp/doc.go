// Package mcp exposes the match server's observation surface over the Model
// Context Protocol.
//
// The Client is a thin proxy: every tool call becomes a request to the REST
// API, so the MCP process needs no access to live game state and can run
// separately from the server (stdio-mcp mode in main). Tools are read-only
// views for operators and agents:
//
//   - list_rooms: open rooms with occupancy, game type, and turn
//   - get_room: one room's seating and hand sizes (never card contents)
//   - server_stats: live player, room, and queue counts
//   - list_configs: available room configurations
//
// Gameplay itself is deliberately absent. Playing requires a persistent
// WebSocket identity, which does not map onto one-shot tool calls.
package mcp
