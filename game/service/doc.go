// Package service provides the business logic layer for the card-table match
// server.
//
// The service package implements:
//   - Matchmaking by game-type key (create or join a waiting room)
//   - The turn-gated play dispatcher (draw/discard/pass operations)
//   - Chat relay with full-history replay for late joiners
//   - Connection lifecycle (whole-room teardown on disconnect)
//
// Core Interfaces:
//
// GameService is the main service interface invoked by the transports.
// SessionManager owns the player registry, room registry, and waiting queue.
// ConfigManager resolves the room configuration for a game-type key.
// Notifier is the outbound capability: deliver a named event to one
// connection, to a whole room, or to a room minus the sender.
//
// Architecture:
//
// The service layer sits between the transport layer (WebSocket/REST/MCP)
// and the room model. Transports decode envelopes and call service methods;
// the service validates, mutates room/player state under the room's lock,
// and emits events through the Notifier. Delivery is fire-and-forget: the
// dispatcher never blocks on a slow client.
//
// Errors:
//
// Every operation error is terminal for that single request and is reported
// only to the requester (the transports map returned errors to s2c_error
// events). Errors never mutate shared state and never reach the opponent.
// Error strings double as wire messages, so they match the protocol the
// original clients expect ("not your turn", "there are no cards on the
// deck", and so on).
package service
