package service

import "errors"

// Error strings are sent verbatim to the requesting client as the message of
// an s2c_error event, so they keep the original protocol's wording.
var (
	ErrMissingMatchParams = errors.New("please specify the parameter gameID and nickname")
	ErrMissingMessage     = errors.New("please specify the parameter message")
	ErrMissingPlayParams  = errors.New("please specify the parameter operation and next")
	ErrMissingCards       = errors.New("please specify the parameter cards")
	ErrCardsNotArray      = errors.New("the parameter cards is not array")
	ErrMissingCard        = errors.New("please specify the parameter card")
	ErrNotInRoom          = errors.New("you are not in any room")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrRoomNotFound       = errors.New("room not found")
)
