package websocket

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"

	"github.com/cardtable/matchserver/game/service"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Decks arrive as JSON arrays in
	// add-cards-to-deck, so the limit is generous.
	maxMessageSize = 64 * 1024
)

// Client is one WebSocket connection. Its id doubles as the player ID for
// the connection's lifetime.
type Client struct {
	id   string
	hub  *Hub
	svc  service.GameService
	conn *websocket.Conn
	send chan []byte
}

// enqueue hands a payload to the write pump without blocking. A client whose
// buffer is full is dropped; the read pump then runs the usual teardown.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		log.Printf("Client %s send buffer full, closing", c.id)
		c.conn.Close()
	}
}

// readPump pumps messages from the WebSocket connection to the game service.
func (c *Client) readPump() {
	defer func() {
		c.svc.Disconnect(context.Background(), c.id)
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}
		c.handleMessage(raw)
	}
}

// handleMessage decodes one envelope and routes it. Service errors go back
// to this connection only, as s2c_error.
func (c *Client) handleMessage(raw []byte) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		c.sendError("invalid message")
		return
	}

	params := service.Params{}
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &params); err != nil {
			c.sendError("invalid message")
			return
		}
	}

	ctx := context.Background()
	var err error
	switch env.Event {
	case service.EventRequestMatching:
		err = c.svc.RequestMatch(ctx, c.id, params)
	case service.EventClientChat:
		err = c.svc.Chat(ctx, c.id, params)
	case service.EventClientPlay:
		err = c.svc.Play(ctx, c.id, params)
	case service.EventReportViolation:
		err = c.svc.ReportViolation(ctx, c.id, params)
	default:
		log.Printf("Client %s sent unknown event %q", c.id, env.Event)
		return
	}
	if err != nil {
		c.sendError(err.Error())
	}
}

func (c *Client) sendError(message string) {
	if payload, ok := encode(service.EventError, service.ErrorPayload{Message: message}); ok {
		c.enqueue(payload)
	}
}

// writePump pumps messages from the hub to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
