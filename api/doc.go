// Package api provides the HTTP surface of the match server.
//
// The api package implements:
//   - The /ws endpoint where the game protocol runs
//   - Read-only room observation (/api/rooms, /api/rooms/{id}, /api/stats)
//   - Room configuration listing and creation (/api/configs)
//   - A health check (/api/health)
//
// Routing uses gorilla/mux. All responses are JSON; errors use the shape
// {"error": "message"} with a matching HTTP status. The observation
// endpoints expose only counts and seat metadata, never deck or hand
// contents, so a spectator cannot learn hidden cards.
package api
