package room

import (
	"math/rand"
	"reflect"
	"testing"
)

func testRoom(seats int, deck []Card) *Room {
	return New("test-room", "g1", seats, deck, rand.New(rand.NewSource(1)))
}

func TestRoom_AddPlayerID(t *testing.T) {
	r := testRoom(2, nil)

	t.Run("join order preserved", func(t *testing.T) {
		if err := r.AddPlayerID("a"); err != nil {
			t.Fatalf("AddPlayerID failed: %v", err)
		}
		if err := r.AddPlayerID("b"); err != nil {
			t.Fatalf("AddPlayerID failed: %v", err)
		}
		if got := r.PlayerIDs(); got[0] != "a" || got[1] != "b" {
			t.Errorf("Expected join order [a b], got %v", got)
		}
		if !r.Full() {
			t.Error("Expected room to be full with 2 players")
		}
	})

	t.Run("third player rejected", func(t *testing.T) {
		if err := r.AddPlayerID("c"); err != ErrRoomFull {
			t.Errorf("Expected ErrRoomFull, got %v", err)
		}
		if r.PlayerCount() != 2 {
			t.Errorf("Expected 2 players, got %d", r.PlayerCount())
		}
	})
}

func TestRoom_ShuffleSeating(t *testing.T) {
	r := testRoom(2, nil)
	r.AddPlayerID("a")
	r.AddPlayerID("b")

	seating := r.ShuffleSeating()

	if len(seating) != 2 {
		t.Fatalf("Expected 2 seats, got %d", len(seating))
	}
	seen := map[string]bool{seating[0]: true, seating[1]: true}
	if !seen["a"] || !seen["b"] {
		t.Errorf("Seating lost a player: %v", seating)
	}
	if r.Turn() != 0 {
		t.Errorf("Expected turn pinned to 0 after game start, got %d", r.Turn())
	}
	if !r.Started() {
		t.Error("Expected room to be marked started")
	}
}

func TestRoom_SetTurn(t *testing.T) {
	r := testRoom(2, nil)

	if err := r.SetTurn(1); err != nil {
		t.Fatalf("SetTurn(1) failed: %v", err)
	}
	if r.Turn() != 1 {
		t.Errorf("Expected turn 1, got %d", r.Turn())
	}

	for _, seat := range []int{-1, 2, 99} {
		if err := r.SetTurn(seat); err != ErrInvalidSeat {
			t.Errorf("SetTurn(%d): expected ErrInvalidSeat, got %v", seat, err)
		}
	}
	if r.Turn() != 1 {
		t.Errorf("Invalid SetTurn mutated turn: got %d", r.Turn())
	}
}

func TestRoom_DrawCard(t *testing.T) {
	r := testRoom(2, []Card{"ace", "two"})

	c, err := r.DrawCard()
	if err != nil {
		t.Fatalf("DrawCard failed: %v", err)
	}
	if c != "ace" {
		t.Errorf("Expected front card 'ace', got %v", c)
	}
	if r.DeckSize() != 1 {
		t.Errorf("Expected deck size 1, got %d", r.DeckSize())
	}

	r.DrawCard()
	if _, err := r.DrawCard(); err != ErrDeckEmpty {
		t.Errorf("Expected ErrDeckEmpty, got %v", err)
	}
}

func TestRoom_AddCardsToDeck(t *testing.T) {
	r := testRoom(2, []Card{"a", "b"})
	r.AddCardsToDeck([]Card{"c", "d", "e"})

	if r.DeckSize() != 5 {
		t.Fatalf("Expected deck size 5, got %d", r.DeckSize())
	}

	// Conservation: drawing everything yields exactly the added multiset.
	counts := map[any]int{}
	for r.DeckSize() > 0 {
		c, err := r.DrawCard()
		if err != nil {
			t.Fatalf("DrawCard failed: %v", err)
		}
		counts[c]++
	}
	for _, want := range []string{"a", "b", "c", "d", "e"} {
		if counts[want] != 1 {
			t.Errorf("Card %q drawn %d times, expected once", want, counts[want])
		}
	}
}

func TestRoom_DeckCopiedOnNew(t *testing.T) {
	deck := []Card{"x", "y"}
	r := testRoom(2, deck)
	deck[0] = "mutated"

	c, _ := r.DrawCard()
	if c != "x" {
		t.Errorf("Room deck aliases caller slice: got %v", c)
	}
}

func TestRoom_Chat(t *testing.T) {
	r := testRoom(2, nil)

	msg := r.AppendChat("Alice", "hello")
	if msg.From != "Alice" || msg.Message != "hello" {
		t.Errorf("Unexpected chat entry: %+v", msg)
	}
	r.AppendChat("Bob", "hi")

	history := r.ChatHistory()
	if len(history) != 2 {
		t.Fatalf("Expected 2 chat entries, got %d", len(history))
	}
	if history[0].From != "Alice" || history[1].From != "Bob" {
		t.Errorf("History out of order: %+v", history)
	}

	// The returned slice is a copy.
	history[0].Message = "tampered"
	if r.ChatHistory()[0].Message != "hello" {
		t.Error("ChatHistory returned the internal slice")
	}
}

func TestPlayer_RemoveFromHand(t *testing.T) {
	p := NewPlayer("conn-1", "Alice", "g1", "room-1")

	t.Run("string cards by value", func(t *testing.T) {
		p.AddToHand("ace")
		p.AddToHand("two")
		if err := p.RemoveFromHand("ace"); err != nil {
			t.Fatalf("RemoveFromHand failed: %v", err)
		}
		if p.HandSize() != 1 {
			t.Errorf("Expected hand size 1, got %d", p.HandSize())
		}
	})

	t.Run("structured cards by deep equality", func(t *testing.T) {
		card := map[string]any{"suit": "spades", "rank": float64(7)}
		p.AddToHand(card)
		// A structurally equal but distinct value must match.
		lookup := map[string]any{"rank": float64(7), "suit": "spades"}
		if err := p.RemoveFromHand(lookup); err != nil {
			t.Fatalf("Deep-equal removal failed: %v", err)
		}
	})

	t.Run("missing card leaves hand unchanged", func(t *testing.T) {
		before := len(p.Hand)
		if err := p.RemoveFromHand("joker"); err != ErrCardNotInHand {
			t.Errorf("Expected ErrCardNotInHand, got %v", err)
		}
		if len(p.Hand) != before {
			t.Errorf("Failed removal mutated hand: %d -> %d", before, len(p.Hand))
		}
	})

	t.Run("only first match removed", func(t *testing.T) {
		q := NewPlayer("conn-2", "Bob", "g1", "room-1")
		q.AddToHand("dup")
		q.AddToHand("dup")
		q.RemoveFromHand("dup")
		if q.HandSize() != 1 {
			t.Errorf("Expected one duplicate to remain, got %d cards", q.HandSize())
		}
	})
}

func TestShuffleSeating_Deterministic(t *testing.T) {
	// Same seed, same seating order.
	order := func(seed int64) []string {
		r := New("r", "g1", 2, nil, rand.New(rand.NewSource(seed)))
		r.AddPlayerID("a")
		r.AddPlayerID("b")
		return r.ShuffleSeating()
	}
	if !reflect.DeepEqual(order(42), order(42)) {
		t.Error("Seating shuffle is not deterministic for a fixed seed")
	}
}
