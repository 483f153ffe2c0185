package service

// Client-to-server event names. These are the wire-level names a client puts
// in its envelope; the websocket transport routes them to service methods.
const (
	EventRequestMatching = "c2s_request-matching"
	EventClientChat      = "c2s_chat"
	EventClientPlay      = "c2s_play"
	EventReportViolation = "c2s_report-violation"
)

// Server-to-client event names.
const (
	EventCreatedRoom   = "s2c_created-room"
	EventJoinedRoom    = "s2c_joined-room"
	EventShowIn        = "s2c_show-in"
	EventGameStart     = "s2c_game-start"
	EventChat          = "s2c_chat"
	EventPlayResponse  = "s2c_play_response"
	EventPlayBroadcast = "s2c_play_broadcast"
	EventViolation     = "s2c_violation"
	EventError         = "s2c_error"
)

// Play operation names. The set is closed: the dispatcher rejects anything
// else with ErrUnknownOperation before touching room state.
const (
	OpAddCardsToDeck       = "add-cards-to-deck"
	OpDraw                 = "draw"
	OpDrawExpose           = "draw-expose"
	OpDrawAndDiscardExpose = "draw-and-discard-expose"
	OpDiscardExpose        = "discard-expose"
	OpPass                 = "pass"
)
