package service

import (
	"context"

	"github.com/cardtable/matchserver/game/room"
)

// GameService is the main service interface. Transports decode client
// envelopes into Params and call these methods; a returned error is reported
// to the requesting connection only, as an s2c_error event.
type GameService interface {
	// RequestMatch matches the connection into a room for params["gameID"],
	// joining the waiting room for that game type if one exists and creating
	// a fresh one otherwise. When the room fills it triggers the game-start
	// transition.
	RequestMatch(ctx context.Context, playerID string, params Params) error

	// Play runs one turn-gated operation named by params["operation"] and,
	// on success, hands the turn to seat params["next"].
	Play(ctx context.Context, playerID string, params Params) error

	// Chat appends params["message"] to the room's history and relays it to
	// the other room members. The sender gets no echo.
	Chat(ctx context.Context, playerID string, params Params) error

	// ReportViolation logs a rule-violation report and, if the reporter is
	// seated, relays it to the rest of the room.
	ReportViolation(ctx context.Context, playerID string, params Params) error

	// Disconnect tears down the player's room, if any, and forgets the
	// player. Safe to call for connections that never matched.
	Disconnect(ctx context.Context, playerID string)

	// Observation surface, read-only. Projections never expose deck or hand
	// contents.
	ListRooms(ctx context.Context) []*RoomInfo
	GetRoom(ctx context.Context, roomID string) (*RoomDetail, error)
	Stats(ctx context.Context) *ServerStats
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)

	// SaveConfig persists a room configuration under the given name, making
	// it selectable as a matchmaking game-type key.
	SaveConfig(ctx context.Context, name string, c *room.Config) error
}

// SessionManager owns the player registry, the room registry, and the
// per-game-type waiting queue. All methods are safe for concurrent use.
type SessionManager interface {
	// ResolveMatch either claims the waiting room for gameID (removing it
	// from the queue) or creates a new room from newConfig and queues it.
	// joined reports which happened.
	ResolveMatch(gameID string, newConfig func() *room.Config) (r *room.Room, joined bool)

	AddPlayer(p *room.Player)
	Player(playerID string) (*room.Player, bool)
	RemovePlayer(playerID string)

	// ClearPlayerRoom detaches a player from their room without removing the
	// player record, used while tearing a room down member by member.
	ClearPlayerRoom(playerID string)

	Room(roomID string) (*room.Room, bool)
	ListRooms() []*room.Room

	// IsWaiting reports whether the room is still queued for matchmaking.
	IsWaiting(roomID string) bool

	// RemoveRoom drops the room from the registry and, if it was still
	// queued, from the waiting queue as well.
	RemoveRoom(roomID string)

	// Counts returns live registry sizes for the stats endpoint.
	Counts() (players, rooms, waiting int)
}

// ConfigManager resolves room configurations by game-type key.
type ConfigManager interface {
	// ForGameType returns the configuration for the given game-type key,
	// falling back to the default configuration when none is defined.
	ForGameType(gameID string) *room.Config

	ListConfigs() ([]*ConfigInfo, error)
	SaveConfig(filename string, c *room.Config) error
}

// Notifier is the outbound delivery capability implemented by the websocket
// hub. Delivery is fire-and-forget; a slow or gone recipient never blocks the
// caller.
type Notifier interface {
	// Send delivers an event to one connection.
	Send(playerID, event string, data any)

	// Broadcast delivers an event to every room member except excludeID.
	// An empty excludeID delivers to the whole room.
	Broadcast(roomID, excludeID, event string, data any)

	// Join adds a connection to a room's delivery group.
	Join(playerID, roomID string)

	// ClearRoom dissolves a room's delivery group.
	ClearRoom(roomID string)
}
