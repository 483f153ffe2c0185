package room

import "errors"

// Error messages match the wire protocol: they are sent verbatim to the
// requesting client in s2c_error events.
var (
	ErrRoomFull      = errors.New("the room is full")
	ErrDeckEmpty     = errors.New("there are no cards on the deck")
	ErrCardNotInHand = errors.New("you do not have the card")
	ErrInvalidSeat   = errors.New("parameter next is invalid")
)
