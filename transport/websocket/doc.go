// Package websocket provides the WebSocket transport for the match server.
//
// The websocket package implements:
//   - The client event protocol (c2s_* requests, s2c_* responses)
//   - Per-connection player identity for the connection's lifetime
//   - Room-scoped delivery groups for broadcasts
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub tracks every
// connection and the room delivery groups. Each connection is handled by a
// read goroutine and a write goroutine; outbound delivery goes through a
// buffered per-connection channel, so a slow client never blocks the game
// service.
//
// Message Protocol:
//
// Messages are JSON envelopes in both directions:
//   - Incoming: {"event": "c2s_play", "data": {"operation": "draw", "next": 1}}
//   - Outgoing: {"event": "s2c_play_response", "data": {...}}
//
// A service error is reported only to the offending connection as
// {"event": "s2c_error", "data": {"message": "..."}}.
//
// Connection Lifecycle:
//
// 1. Client connects to /ws and is assigned a player ID
// 2. c2s_request-matching places the connection in a room
// 3. Play and chat events are routed to the game service
// 4. Disconnection tears the room down for everyone in it
//
// The Hub implements service.Notifier, so the game service emits events
// without knowing about connections or rooms' delivery groups.
package websocket
