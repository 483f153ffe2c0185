package session

import (
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cardtable/matchserver/game/room"
)

// waitingEntry is a queued room still waiting for opponents. remaining counts
// how many more matchers the room can absorb before it leaves the queue.
type waitingEntry struct {
	roomID    string
	remaining int
}

// Manager is the live registry of players, rooms, and waiting rooms.
type Manager struct {
	mu      sync.RWMutex
	players map[string]*room.Player
	rooms   map[string]*room.Room
	waiting map[string]*waitingEntry // keyed by game-type

	newID func() string
	seed  func() int64
}

// NewManager creates an empty registry with UUID room IDs and time-seeded
// shuffles.
func NewManager() *Manager {
	return newManager(uuid.NewString, func() int64 { return time.Now().UnixNano() })
}

func newManager(newID func() string, seed func() int64) *Manager {
	return &Manager{
		players: make(map[string]*room.Player),
		rooms:   make(map[string]*room.Room),
		waiting: make(map[string]*waitingEntry),
		newID:   newID,
		seed:    seed,
	}
}

// ResolveMatch is the matchmaking step for one request. If a room is waiting
// for gameID it is claimed (joined=true) and its remaining-seat count drops,
// leaving the queue at zero. Otherwise newConfig supplies the room
// configuration and a fresh room is created, registered, and queued.
func (m *Manager) ResolveMatch(gameID string, newConfig func() *room.Config) (*room.Room, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.waiting[gameID]; ok {
		r := m.rooms[entry.roomID]
		entry.remaining--
		if entry.remaining <= 0 {
			delete(m.waiting, gameID)
		}
		return r, true
	}

	cfg := newConfig()
	if cfg == nil {
		cfg = room.DefaultConfig()
	}
	r := room.New(m.newID(), gameID, cfg.Seats, cfg.Deck, rand.New(rand.NewSource(m.seed())))
	m.rooms[r.ID()] = r
	m.waiting[gameID] = &waitingEntry{roomID: r.ID(), remaining: r.Seats() - 1}
	return r, false
}

// AddPlayer registers a player record, replacing any record with the same ID.
func (m *Manager) AddPlayer(p *room.Player) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.players[p.ID] = p
}

// Player looks up a player by connection ID.
func (m *Manager) Player(playerID string) (*room.Player, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.players[playerID]
	return p, ok
}

// RemovePlayer forgets a player record. Unknown IDs are ignored.
func (m *Manager) RemovePlayer(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.players, playerID)
}

// ClearPlayerRoom detaches a player from their room without removing the
// record.
func (m *Manager) ClearPlayerRoom(playerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.players[playerID]; ok {
		p.RoomID = ""
	}
}

// Room looks up a room by ID.
func (m *Manager) Room(roomID string) (*room.Room, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.rooms[roomID]
	return r, ok
}

// ListRooms returns every registered room.
func (m *Manager) ListRooms() []*room.Room {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rooms := make([]*room.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		rooms = append(rooms, r)
	}
	return rooms
}

// IsWaiting reports whether the room is still queued for matchmaking.
func (m *Manager) IsWaiting(roomID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, entry := range m.waiting {
		if entry.roomID == roomID {
			return true
		}
	}
	return false
}

// RemoveRoom drops a room from the registry and, if still queued, from the
// waiting queue. Unknown IDs are ignored.
func (m *Manager) RemoveRoom(roomID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[roomID]
	if !ok {
		return
	}
	if entry, ok := m.waiting[r.GameID()]; ok && entry.roomID == roomID {
		delete(m.waiting, r.GameID())
	}
	delete(m.rooms, roomID)
}

// Counts returns live registry sizes.
func (m *Manager) Counts() (players, rooms, waiting int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.players), len(m.rooms), len(m.waiting)
}
