package service

import "github.com/cardtable/matchserver/game/room"

// Params is a decoded client envelope payload. Play payloads carry
// operation-specific arguments that are echoed back to both parties, so the
// dispatcher works on the decoded map rather than a fixed struct.
type Params map[string]any

// JoinedRoomPayload answers the second matcher: who is already seated and
// everything said so far.
type JoinedRoomPayload struct {
	PlayerList  []string           `json:"playerList"`
	ChatHistory []room.ChatMessage `json:"chatHistory"`
}

// ShowInPayload tells current room members that a new participant arrived.
type ShowInPayload struct {
	Nickname string `json:"nickname"`
}

// GameStartPayload carries the recipient's assigned seat.
type GameStartPayload struct {
	Turn int `json:"turn"`
}

// ChatPayload is a relayed chat line.
type ChatPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// ViolationPayload relays a reported violation to the rest of the room.
type ViolationPayload struct {
	From    string `json:"from"`
	Message string `json:"message"`
}

// ErrorPayload is the body of an s2c_error event.
type ErrorPayload struct {
	Message string `json:"message"`
}

// RoomInfo is the list-view projection of a room. It never exposes deck or
// hand contents.
type RoomInfo struct {
	ID          string   `json:"room_id"`
	GameID      string   `json:"game_id"`
	Players     []string `json:"players"`
	Seats       int      `json:"seats"`
	Started     bool     `json:"started"`
	Waiting     bool     `json:"waiting"`
	Turn        int      `json:"turn"`
	DeckSize    int      `json:"deck_size"`
	ChatEntries int      `json:"chat_entries"`
}

// SeatInfo describes one seated player in a room detail view.
type SeatInfo struct {
	Nickname string `json:"nickname"`
	Seat     int    `json:"seat"`
	HandSize int    `json:"hand_size"`
}

// RoomDetail is the single-room projection served by the observation API.
type RoomDetail struct {
	ID          string     `json:"room_id"`
	GameID      string     `json:"game_id"`
	Seats       int        `json:"seats"`
	Started     bool       `json:"started"`
	Turn        int        `json:"turn"`
	DeckSize    int        `json:"deck_size"`
	ChatEntries int        `json:"chat_entries"`
	Players     []SeatInfo `json:"players"`
}

// ServerStats summarizes live registry counts.
type ServerStats struct {
	Rooms        int `json:"rooms"`
	Players      int `json:"players"`
	WaitingRooms int `json:"waiting_rooms"`
}

// ConfigInfo describes an available room configuration.
type ConfigInfo struct {
	Filename    string `json:"filename"`
	ConfigID    string `json:"config_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Seats       int    `json:"seats"`
	DeckSize    int    `json:"deck_size"`
}
