package room

import (
	"math/rand"
	"sync"
)

// Room is the server-side record of one match, pending or in progress.
//
// Mu serializes every read-modify-write touching the room: deck operations,
// seating, chat, the turn pointer, and the hands of seated players. Methods
// below do not lock by themselves; the dispatcher holds Mu across an entire
// operation so its mutation and the resulting events are observed together.
type Room struct {
	Mu sync.Mutex

	id        string
	gameID    string
	seats     int
	playerIDs []string // join order until ShuffleSeating re-seats
	deck      []Card
	chat      []ChatMessage
	turn      int
	started   bool
	rng       *rand.Rand
}

// New creates a room with the given seat capacity and initial deck. The deck
// slice is copied. rng drives both seating and deck shuffles; tests pass a
// fixed seed for deterministic order.
func New(id, gameID string, seats int, deck []Card, rng *rand.Rand) *Room {
	if seats < 2 {
		seats = DefaultSeats
	}
	r := &Room{
		id:     id,
		gameID: gameID,
		seats:  seats,
		deck:   make([]Card, len(deck)),
		rng:    rng,
	}
	copy(r.deck, deck)
	return r
}

// ID returns the room identifier.
func (r *Room) ID() string { return r.id }

// GameID returns the game-type key this room was matched under.
func (r *Room) GameID() string { return r.gameID }

// Seats returns the configured player capacity. The two-player bound from
// the stock configurations is enforced here and nowhere else.
func (r *Room) Seats() int { return r.seats }

// AddPlayerID appends a player to the seating list in join order.
func (r *Room) AddPlayerID(playerID string) error {
	if len(r.playerIDs) >= r.seats {
		return ErrRoomFull
	}
	r.playerIDs = append(r.playerIDs, playerID)
	return nil
}

// PlayerIDs returns a copy of the current seating list. Before game start
// the order is join order; afterwards index equals seat.
func (r *Room) PlayerIDs() []string {
	ids := make([]string, len(r.playerIDs))
	copy(ids, r.playerIDs)
	return ids
}

// PlayerCount returns the number of seated players.
func (r *Room) PlayerCount() int { return len(r.playerIDs) }

// Full reports whether every seat is taken.
func (r *Room) Full() bool { return len(r.playerIDs) >= r.seats }

// ShuffleSeating runs the game-start transition: it shuffles the seating
// list, pins the turn pointer to seat 0, and marks the game started. The
// returned slice maps seat index to player ID.
func (r *Room) ShuffleSeating() []string {
	for i := len(r.playerIDs) - 1; i >= 1; i-- {
		j := r.rng.Intn(i + 1)
		r.playerIDs[i], r.playerIDs[j] = r.playerIDs[j], r.playerIDs[i]
	}
	r.turn = 0
	r.started = true
	return r.PlayerIDs()
}

// Started reports whether the game-start transition has fired.
func (r *Room) Started() bool { return r.started }

// Turn returns the seat whose player may act. Meaningless (pinned at 0)
// before the game starts.
func (r *Room) Turn() int { return r.turn }

// SetTurn hands control to the given seat.
func (r *Room) SetTurn(seat int) error {
	if seat < 0 || seat >= r.seats {
		return ErrInvalidSeat
	}
	r.turn = seat
	return nil
}

// DrawCard removes and returns the front card of the shared deck.
func (r *Room) DrawCard() (Card, error) {
	if len(r.deck) == 0 {
		return nil, ErrDeckEmpty
	}
	c := r.deck[0]
	r.deck = r.deck[1:]
	return c, nil
}

// AddCardsToDeck appends cards to the shared deck and re-shuffles it.
func (r *Room) AddCardsToDeck(cards []Card) {
	r.deck = append(r.deck, cards...)
	for i := len(r.deck) - 1; i >= 1; i-- {
		j := r.rng.Intn(i + 1)
		r.deck[i], r.deck[j] = r.deck[j], r.deck[i]
	}
}

// DeckSize returns the number of undealt cards.
func (r *Room) DeckSize() int { return len(r.deck) }

// AppendChat records a chat entry and returns it. History is append-only and
// replayed in full to any late joiner.
func (r *Room) AppendChat(from, message string) ChatMessage {
	msg := ChatMessage{From: from, Message: message}
	r.chat = append(r.chat, msg)
	return msg
}

// ChatHistory returns a copy of the chat log in arrival order.
func (r *Room) ChatHistory() []ChatMessage {
	history := make([]ChatMessage, len(r.chat))
	copy(history, r.chat)
	return history
}
