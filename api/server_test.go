package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cardtable/matchserver/game/config"
	"github.com/cardtable/matchserver/game/service"
	"github.com/cardtable/matchserver/game/session"
	"github.com/cardtable/matchserver/transport/websocket"
)

type apiFixture struct {
	server *Server
	svc    service.GameService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	configs, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("config.NewManager failed: %v", err)
	}
	hub := websocket.NewHub()
	svc := service.NewGameService(session.NewManager(), configs, hub)
	return &apiFixture{server: NewServer(svc, hub), svc: svc}
}

func (fx *apiFixture) request(t *testing.T, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	fx.server.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func TestHealthEndpoint(t *testing.T) {
	fx := newAPIFixture(t)
	rec := fx.request(t, "GET", "/api/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if decodeBody(t, rec)["status"] != "healthy" {
		t.Errorf("Unexpected health body %s", rec.Body.String())
	}
}

func TestRoomEndpoints(t *testing.T) {
	fx := newAPIFixture(t)
	ctx := context.Background()

	t.Run("empty listing", func(t *testing.T) {
		rec := fx.request(t, "GET", "/api/rooms", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		if body := decodeBody(t, rec); body["count"] != float64(0) {
			t.Errorf("Expected 0 rooms, got %v", body["count"])
		}
	})

	// Seat two players directly through the service.
	for _, p := range []struct{ id, nick string }{{"conn-a", "Alice"}, {"conn-b", "Bob"}} {
		err := fx.svc.RequestMatch(ctx, p.id, service.Params{"gameID": "poker", "nickname": p.nick})
		if err != nil {
			t.Fatalf("RequestMatch(%s) failed: %v", p.nick, err)
		}
	}

	var roomID string
	t.Run("listing shows the room", func(t *testing.T) {
		rec := fx.request(t, "GET", "/api/rooms", nil)
		body := decodeBody(t, rec)
		if body["count"] != float64(1) {
			t.Fatalf("Expected 1 room, got %v", body["count"])
		}
		info := body["rooms"].([]any)[0].(map[string]any)
		roomID = info["room_id"].(string)
		if info["game_id"] != "poker" || info["started"] != true {
			t.Errorf("Unexpected room info %v", info)
		}
	})

	t.Run("room detail", func(t *testing.T) {
		rec := fx.request(t, "GET", "/api/rooms/"+roomID, nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		detail := decodeBody(t, rec)
		players := detail["players"].([]any)
		if len(players) != 2 {
			t.Errorf("Expected 2 seated players, got %d", len(players))
		}
		for _, p := range players {
			if _, leaked := p.(map[string]any)["hand"]; leaked {
				t.Error("Room detail leaked hand contents")
			}
		}
	})

	t.Run("unknown room is 404", func(t *testing.T) {
		rec := fx.request(t, "GET", "/api/rooms/nope", nil)
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected 404, got %d", rec.Code)
		}
	})

	t.Run("stats", func(t *testing.T) {
		rec := fx.request(t, "GET", "/api/stats", nil)
		body := decodeBody(t, rec)
		if body["rooms"] != float64(1) || body["players"] != float64(2) {
			t.Errorf("Unexpected stats %v", body)
		}
	})
}

func TestConfigEndpoints(t *testing.T) {
	fx := newAPIFixture(t)

	t.Run("invalid body rejected", func(t *testing.T) {
		rec := fx.request(t, "POST", "/api/configs", []byte("not json"))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("name required", func(t *testing.T) {
		rec := fx.request(t, "POST", "/api/configs", []byte(`{"seats":2}`))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected 400, got %d", rec.Code)
		}
	})

	t.Run("create and list round trip", func(t *testing.T) {
		rec := fx.request(t, "POST", "/api/configs", []byte(`{"name":"whist","seats":4,"deck":["a","b"]}`))
		if rec.Code != http.StatusCreated {
			t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
		}

		rec = fx.request(t, "GET", "/api/configs", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected 200, got %d", rec.Code)
		}
		var infos []map[string]any
		if err := json.Unmarshal(rec.Body.Bytes(), &infos); err != nil {
			t.Fatalf("Failed to decode config list: %v", err)
		}
		if len(infos) != 1 || infos[0]["config_id"] != "whist" || infos[0]["deck_size"] != float64(2) {
			t.Errorf("Unexpected config listing %v", infos)
		}
	})
}
