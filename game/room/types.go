package room

// Card is an opaque card token. Clients send cards as arbitrary JSON values;
// the server stores and compares the decoded form without interpreting it.
type Card = any

// ChatMessage is one immutable entry in a room's chat history.
type ChatMessage struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// DefaultSeats is the seat count used when a game type has no configuration
// of its own.
const DefaultSeats = 2
