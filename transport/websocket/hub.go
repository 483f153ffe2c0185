package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/cardtable/matchserver/game/service"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Allow all origins in development
		// TODO: Configure this for production
		return true
	},
}

// Envelope is the wire frame used in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// outEnvelope carries an already-built payload outward.
type outEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// Hub tracks every live connection and the room delivery groups. It
// implements service.Notifier.
//
// Maps are guarded by a mutex rather than an event loop because the game
// service calls Join and then broadcasts within the same request while
// holding the room lock; the membership change must be visible to the very
// next delivery.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client         // by player ID
	rooms   map[string]map[string]bool // room ID -> member player IDs
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		rooms:   make(map[string]map[string]bool),
	}
}

// ServeWS upgrades an HTTP request and runs the connection against svc.
func (h *Hub) ServeWS(svc service.GameService, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		id:   uuid.NewString(),
		hub:  h,
		svc:  svc,
		conn: conn,
		send: make(chan []byte, 256),
	}
	h.register(client)

	go client.writePump()
	go client.readPump()
}

// Send delivers an event to one connection.
func (h *Hub) Send(playerID, event string, data any) {
	payload, ok := encode(event, data)
	if !ok {
		return
	}
	h.mu.RLock()
	client := h.clients[playerID]
	h.mu.RUnlock()
	if client != nil {
		client.enqueue(payload)
	}
}

// Broadcast delivers an event to every room member except excludeID. An
// empty excludeID delivers to the whole room.
func (h *Hub) Broadcast(roomID, excludeID, event string, data any) {
	payload, ok := encode(event, data)
	if !ok {
		return
	}
	h.mu.RLock()
	var targets []*Client
	for id := range h.rooms[roomID] {
		if id == excludeID {
			continue
		}
		if client := h.clients[id]; client != nil {
			targets = append(targets, client)
		}
	}
	h.mu.RUnlock()
	for _, client := range targets {
		client.enqueue(payload)
	}
}

// Join adds a connection to a room's delivery group.
func (h *Hub) Join(playerID, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[string]bool)
	}
	h.rooms[roomID][playerID] = true
}

// ClearRoom dissolves a room's delivery group. Connections stay open.
func (h *Hub) ClearRoom(roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.rooms, roomID)
}

// ClientCount returns the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) register(client *Client) {
	h.mu.Lock()
	h.clients[client.id] = client
	total := len(h.clients)
	h.mu.Unlock()

	log.Printf("Client %s connected (total clients: %d)", client.id, total)
}

// unregister drops the client and scrubs it from any delivery group. The
// send channel closes here so writePump sees a clean shutdown.
func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	if _, ok := h.clients[client.id]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, client.id)
	for roomID, members := range h.rooms {
		delete(members, client.id)
		if len(members) == 0 {
			delete(h.rooms, roomID)
		}
	}
	remaining := len(h.clients)
	h.mu.Unlock()

	close(client.send)
	log.Printf("Client %s disconnected (remaining clients: %d)", client.id, remaining)
}

func encode(event string, data any) ([]byte, bool) {
	payload, err := json.Marshal(outEnvelope{Event: event, Data: data})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return nil, false
	}
	return payload, true
}
