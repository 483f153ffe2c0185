package session

import (
	"fmt"
	"sync"
	"testing"

	"github.com/cardtable/matchserver/game/room"
)

func testManager() *Manager {
	n := 0
	return newManager(
		func() string {
			n++
			return fmt.Sprintf("room-%d", n)
		},
		func() int64 { return 1 },
	)
}

func twoSeatConfig() *room.Config {
	return &room.Config{Name: "test", Seats: 2}
}

func TestManager_ResolveMatch(t *testing.T) {
	m := testManager()

	t.Run("first matcher creates", func(t *testing.T) {
		r, joined := m.ResolveMatch("poker", twoSeatConfig)
		if joined {
			t.Error("First matcher should create, not join")
		}
		if r.ID() != "room-1" {
			t.Errorf("Unexpected room ID %q", r.ID())
		}
		if !m.IsWaiting(r.ID()) {
			t.Error("Fresh room should be waiting")
		}
	})

	t.Run("second matcher joins the same room", func(t *testing.T) {
		r, joined := m.ResolveMatch("poker", twoSeatConfig)
		if !joined {
			t.Error("Second matcher should join")
		}
		if r.ID() != "room-1" {
			t.Errorf("Expected room-1, got %q", r.ID())
		}
		if m.IsWaiting(r.ID()) {
			t.Error("Claimed two-seat room should leave the waiting queue")
		}
	})

	t.Run("third matcher gets a fresh room", func(t *testing.T) {
		r, joined := m.ResolveMatch("poker", twoSeatConfig)
		if joined {
			t.Error("Matcher after a full room should create")
		}
		if r.ID() == "room-1" {
			t.Error("Expected a new room, got the full one")
		}
	})
}

func TestManager_ResolveMatch_GameTypesAreSeparateQueues(t *testing.T) {
	m := testManager()

	r1, _ := m.ResolveMatch("poker", twoSeatConfig)
	r2, joined := m.ResolveMatch("bridge", twoSeatConfig)

	if joined {
		t.Error("Different game type must not join the poker room")
	}
	if r1.ID() == r2.ID() {
		t.Error("Expected distinct rooms per game type")
	}
}

func TestManager_ResolveMatch_NilConfigFallsBack(t *testing.T) {
	m := testManager()

	r, _ := m.ResolveMatch("unknown", func() *room.Config { return nil })
	if r.Seats() != room.DefaultSeats {
		t.Errorf("Expected default %d seats, got %d", room.DefaultSeats, r.Seats())
	}
}

func TestManager_ResolveMatch_MultiSeatStaysQueued(t *testing.T) {
	m := testManager()
	cfg := func() *room.Config { return &room.Config{Name: "table", Seats: 4} }

	r, _ := m.ResolveMatch("big-table", cfg)
	for i := 0; i < 2; i++ {
		joined, want := false, r.ID()
		var got *room.Room
		got, joined = m.ResolveMatch("big-table", cfg)
		if !joined || got.ID() != want {
			t.Fatalf("Matcher %d: joined=%v room=%q, want join into %q", i+2, joined, got.ID(), want)
		}
		if !m.IsWaiting(r.ID()) {
			t.Fatalf("Four-seat room left the queue after %d matchers", i+2)
		}
	}

	got, joined := m.ResolveMatch("big-table", cfg)
	if !joined || got.ID() != r.ID() {
		t.Fatalf("Fourth matcher should take the last seat")
	}
	if m.IsWaiting(r.ID()) {
		t.Error("Full four-seat room should leave the waiting queue")
	}
}

func TestManager_Players(t *testing.T) {
	m := testManager()
	p := room.NewPlayer("conn-1", "Alice", "poker", "room-1")
	m.AddPlayer(p)

	got, ok := m.Player("conn-1")
	if !ok || got.Nickname != "Alice" {
		t.Fatalf("Player lookup failed: %+v ok=%v", got, ok)
	}

	m.ClearPlayerRoom("conn-1")
	if got.RoomID != "" {
		t.Errorf("ClearPlayerRoom left RoomID %q", got.RoomID)
	}

	m.RemovePlayer("conn-1")
	if _, ok := m.Player("conn-1"); ok {
		t.Error("Removed player still resolvable")
	}

	// Unknown IDs are no-ops.
	m.RemovePlayer("ghost")
	m.ClearPlayerRoom("ghost")
}

func TestManager_RemoveRoom_PurgesWaitingEntry(t *testing.T) {
	m := testManager()

	r, _ := m.ResolveMatch("poker", twoSeatConfig)
	m.RemoveRoom(r.ID())

	if m.IsWaiting(r.ID()) {
		t.Error("Removed room still in the waiting queue")
	}
	if _, ok := m.Room(r.ID()); ok {
		t.Error("Removed room still in the registry")
	}

	// The next matcher must not be handed the dead room.
	r2, joined := m.ResolveMatch("poker", twoSeatConfig)
	if joined {
		t.Error("Matcher joined a torn-down room")
	}
	if r2.ID() == r.ID() {
		t.Error("Fresh room reused the removed room's record")
	}
}

func TestManager_Counts(t *testing.T) {
	m := testManager()
	m.AddPlayer(room.NewPlayer("conn-1", "Alice", "poker", ""))
	m.ResolveMatch("poker", twoSeatConfig)

	players, rooms, waiting := m.Counts()
	if players != 1 || rooms != 1 || waiting != 1 {
		t.Errorf("Counts = (%d, %d, %d), want (1, 1, 1)", players, rooms, waiting)
	}
}

func TestManager_ResolveMatch_Concurrent(t *testing.T) {
	m := NewManager()

	const matchers = 10
	var wg sync.WaitGroup
	created := make(chan string, matchers)
	for i := 0; i < matchers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r, joined := m.ResolveMatch("poker", twoSeatConfig)
			if !joined {
				created <- r.ID()
			}
		}()
	}
	wg.Wait()
	close(created)

	// Two-seat rooms, ten matchers: exactly five rooms created.
	ids := map[string]bool{}
	for id := range created {
		if ids[id] {
			t.Errorf("Room %q created twice", id)
		}
		ids[id] = true
	}
	if len(ids) != matchers/2 {
		t.Errorf("Expected %d created rooms, got %d", matchers/2, len(ids))
	}
}
