package room

import "reflect"

// Player is one connected participant. The session registry owns the record;
// rooms refer to players by ID only.
type Player struct {
	ID       string // connection identifier, stable for the connection's lifetime
	Nickname string
	RoomID   string // cleared on teardown
	GameID   string // game-type key used to find this player's match
	Hand     []Card
	Seat     int // turn index, assigned once at game start
}

// NewPlayer creates a player joining the given room. The seat stays at its
// zero value until the game-start transition assigns real seating.
func NewPlayer(id, nickname, gameID, roomID string) *Player {
	return &Player{
		ID:       id,
		Nickname: nickname,
		GameID:   gameID,
		RoomID:   roomID,
		Hand:     []Card{},
	}
}

// AddToHand appends a card to the player's hand. Callers must hold the lock
// of the player's room.
func (p *Player) AddToHand(c Card) {
	p.Hand = append(p.Hand, c)
}

// RemoveFromHand removes the first card that deep-equals c. Cards arrive as
// decoded JSON, so equality is structural, matching however the client chose
// to encode its cards. Callers must hold the lock of the player's room.
func (p *Player) RemoveFromHand(c Card) error {
	for i, have := range p.Hand {
		if reflect.DeepEqual(have, c) {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return nil
		}
	}
	return ErrCardNotInHand
}

// HandSize returns the number of cards the player holds.
func (p *Player) HandSize() int {
	return len(p.Hand)
}
