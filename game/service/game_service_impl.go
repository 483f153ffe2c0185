package service

import (
	"context"
	"log"
	"math"

	"github.com/cardtable/matchserver/game/room"
)

// gameServiceImpl implements GameService on top of the session registry, the
// config manager, and the notifier capability.
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	notifier Notifier
}

// NewGameService creates the service used by every transport.
func NewGameService(sessions SessionManager, configs ConfigManager, notifier Notifier) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
		notifier: notifier,
	}
}

// playHandler mutates room and player state for one operation and fills in
// the reveal fields of the response and broadcast payloads. resp and bcast
// start as copies of the request params; the dispatcher sends them only when
// the handler returns nil.
type playHandler func(s *gameServiceImpl, p *room.Player, r *room.Room, params, resp, bcast Params) error

// playHandlers is the closed set of play operations. Dispatch is by table
// lookup so adding an operation means adding exactly one entry here.
var playHandlers = map[string]playHandler{
	OpAddCardsToDeck:       (*gameServiceImpl).playAddCardsToDeck,
	OpDraw:                 (*gameServiceImpl).playDraw,
	OpDrawExpose:           (*gameServiceImpl).playDrawExpose,
	OpDrawAndDiscardExpose: (*gameServiceImpl).playDrawAndDiscardExpose,
	OpDiscardExpose:        (*gameServiceImpl).playDiscardExpose,
	OpPass:                 (*gameServiceImpl).playPass,
}

func (s *gameServiceImpl) RequestMatch(ctx context.Context, playerID string, params Params) error {
	gameID, okGame := stringParam(params, "gameID")
	nickname, okNick := stringParam(params, "nickname")
	if !okGame || !okNick {
		return ErrMissingMatchParams
	}

	r, joined := s.sessions.ResolveMatch(gameID, func() *room.Config {
		return s.configs.ForGameType(gameID)
	})

	p := room.NewPlayer(playerID, nickname, gameID, r.ID())
	s.sessions.AddPlayer(p)
	s.notifier.Join(playerID, r.ID())

	r.Mu.Lock()
	defer r.Mu.Unlock()

	// The joiner is told who was already seated, not the post-join roster.
	seatedBefore := s.nicknames(r.PlayerIDs())

	if err := r.AddPlayerID(playerID); err != nil {
		return err
	}

	if joined {
		s.notifier.Send(playerID, EventJoinedRoom, JoinedRoomPayload{
			PlayerList:  seatedBefore,
			ChatHistory: r.ChatHistory(),
		})
		s.notifier.Broadcast(r.ID(), playerID, EventShowIn, ShowInPayload{Nickname: nickname})
	} else {
		s.notifier.Send(playerID, EventCreatedRoom, struct{}{})
	}

	if r.Full() && !r.Started() {
		seating := r.ShuffleSeating()
		for seat, id := range seating {
			if member, ok := s.sessions.Player(id); ok {
				member.Seat = seat
			}
			s.notifier.Send(id, EventGameStart, GameStartPayload{Turn: seat})
		}
		log.Printf("game started: room=%s game=%s players=%d", r.ID(), gameID, len(seating))
	}
	return nil
}

func (s *gameServiceImpl) Play(ctx context.Context, playerID string, params Params) error {
	p, r, err := s.seated(playerID)
	if err != nil {
		return err
	}

	r.Mu.Lock()
	defer r.Mu.Unlock()

	if !r.Started() || r.Turn() != p.Seat {
		return ErrNotYourTurn
	}

	operation, okOp := stringParam(params, "operation")
	_, nextPresent := params["next"]
	if !okOp || !nextPresent {
		return ErrMissingPlayParams
	}
	next, okNext := intParam(params, "next")
	if !okNext || next < 0 || next >= r.Seats() {
		return room.ErrInvalidSeat
	}
	handler, ok := playHandlers[operation]
	if !ok {
		return ErrUnknownOperation
	}

	resp := copyParams(params)
	bcast := copyParams(params)
	if err := handler(s, p, r, params, resp, bcast); err != nil {
		return err
	}

	// Preconditions already bounded next, so this cannot fail.
	r.SetTurn(next)

	s.notifier.Send(playerID, EventPlayResponse, resp)
	s.notifier.Broadcast(r.ID(), playerID, EventPlayBroadcast, bcast)
	return nil
}

func (s *gameServiceImpl) Chat(ctx context.Context, playerID string, params Params) error {
	message, ok := stringParam(params, "message")
	if !ok {
		return ErrMissingMessage
	}
	p, r, err := s.seated(playerID)
	if err != nil {
		return err
	}

	r.Mu.Lock()
	msg := r.AppendChat(p.Nickname, message)
	r.Mu.Unlock()

	// The sender already knows what they said; only the rest of the room
	// hears it live. Late joiners get it from the history replay.
	s.notifier.Broadcast(r.ID(), playerID, EventChat, ChatPayload{From: msg.From, Message: msg.Message})
	return nil
}

func (s *gameServiceImpl) ReportViolation(ctx context.Context, playerID string, params Params) error {
	message, _ := stringParam(params, "message")
	log.Printf("violation reported: player=%s message=%q", playerID, message)

	p, r, err := s.seated(playerID)
	if err != nil {
		// A report from an unseated connection is still logged above.
		return nil
	}
	s.notifier.Broadcast(r.ID(), playerID, EventViolation, ViolationPayload{
		From:    p.Nickname,
		Message: message,
	})
	return nil
}

func (s *gameServiceImpl) Disconnect(ctx context.Context, playerID string) {
	if p, ok := s.sessions.Player(playerID); ok && p.RoomID != "" {
		s.teardownRoom(p.RoomID)
	}
	s.sessions.RemovePlayer(playerID)
}

// teardownRoom dissolves a room because one member left. Remaining members
// keep their connections but lose their seats; the next request-matching
// starts over. No event announces the teardown.
func (s *gameServiceImpl) teardownRoom(roomID string) {
	r, ok := s.sessions.Room(roomID)
	if !ok {
		return
	}

	r.Mu.Lock()
	members := r.PlayerIDs()
	r.Mu.Unlock()

	s.notifier.ClearRoom(roomID)
	for _, id := range members {
		s.sessions.ClearPlayerRoom(id)
	}
	s.sessions.RemoveRoom(roomID)
	log.Printf("room torn down: room=%s members=%d", roomID, len(members))
}

func (s *gameServiceImpl) ListRooms(ctx context.Context) []*RoomInfo {
	rooms := s.sessions.ListRooms()
	infos := make([]*RoomInfo, 0, len(rooms))
	for _, r := range rooms {
		r.Mu.Lock()
		infos = append(infos, &RoomInfo{
			ID:          r.ID(),
			GameID:      r.GameID(),
			Players:     s.nicknames(r.PlayerIDs()),
			Seats:       r.Seats(),
			Started:     r.Started(),
			Waiting:     s.sessions.IsWaiting(r.ID()),
			Turn:        r.Turn(),
			DeckSize:    r.DeckSize(),
			ChatEntries: len(r.ChatHistory()),
		})
		r.Mu.Unlock()
	}
	return infos
}

func (s *gameServiceImpl) GetRoom(ctx context.Context, roomID string) (*RoomDetail, error) {
	r, ok := s.sessions.Room(roomID)
	if !ok {
		return nil, ErrRoomNotFound
	}

	r.Mu.Lock()
	defer r.Mu.Unlock()

	detail := &RoomDetail{
		ID:          r.ID(),
		GameID:      r.GameID(),
		Seats:       r.Seats(),
		Started:     r.Started(),
		Turn:        r.Turn(),
		DeckSize:    r.DeckSize(),
		ChatEntries: len(r.ChatHistory()),
		Players:     []SeatInfo{},
	}
	for _, id := range r.PlayerIDs() {
		p, ok := s.sessions.Player(id)
		if !ok {
			continue
		}
		detail.Players = append(detail.Players, SeatInfo{
			Nickname: p.Nickname,
			Seat:     p.Seat,
			HandSize: p.HandSize(),
		})
	}
	return detail, nil
}

func (s *gameServiceImpl) Stats(ctx context.Context) *ServerStats {
	players, rooms, waiting := s.sessions.Counts()
	return &ServerStats{
		Rooms:        rooms,
		Players:      players,
		WaitingRooms: waiting,
	}
}

func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

func (s *gameServiceImpl) SaveConfig(ctx context.Context, name string, c *room.Config) error {
	return s.configs.SaveConfig(name, c)
}

// Play operation handlers. The dispatcher holds the room lock across the
// handler, the turn handoff, and both emits.

func (s *gameServiceImpl) playAddCardsToDeck(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	raw, ok := params["cards"]
	if !ok || raw == nil {
		return ErrMissingCards
	}
	cards, ok := raw.([]any)
	if !ok {
		return ErrCardsNotArray
	}
	r.AddCardsToDeck(cards)
	return nil
}

func (s *gameServiceImpl) playDraw(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	c, err := r.DrawCard()
	if err != nil {
		return err
	}
	p.AddToHand(c)
	// Only the drawer learns which card it was.
	resp["card"] = c
	return nil
}

func (s *gameServiceImpl) playDrawExpose(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	c, err := r.DrawCard()
	if err != nil {
		return err
	}
	p.AddToHand(c)
	resp["card"] = c
	bcast["card"] = c
	return nil
}

func (s *gameServiceImpl) playDrawAndDiscardExpose(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	c, err := r.DrawCard()
	if err != nil {
		return err
	}
	// The card goes straight to the discard, never into the hand.
	resp["card"] = c
	bcast["card"] = c
	return nil
}

func (s *gameServiceImpl) playDiscardExpose(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	c, ok := params["card"]
	if !ok || c == nil {
		return ErrMissingCard
	}
	return p.RemoveFromHand(c)
}

func (s *gameServiceImpl) playPass(p *room.Player, r *room.Room, params, resp, bcast Params) error {
	return nil
}

// seated resolves a player and the room they sit in.
func (s *gameServiceImpl) seated(playerID string) (*room.Player, *room.Room, error) {
	p, ok := s.sessions.Player(playerID)
	if !ok || p.RoomID == "" {
		return nil, nil, ErrNotInRoom
	}
	r, ok := s.sessions.Room(p.RoomID)
	if !ok {
		return nil, nil, ErrNotInRoom
	}
	return p, r, nil
}

// nicknames maps player IDs to nicknames, skipping stale entries.
func (s *gameServiceImpl) nicknames(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := s.sessions.Player(id); ok {
			names = append(names, p.Nickname)
		}
	}
	return names
}

func stringParam(params Params, key string) (string, bool) {
	v, ok := params[key].(string)
	return v, ok && v != ""
}

// intParam reads an integer parameter. Decoded JSON numbers arrive as
// float64 and must carry no fractional part; an int is also accepted so
// in-process callers can pass one.
func intParam(params Params, key string) (int, bool) {
	switch v := params[key].(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

func copyParams(params Params) Params {
	out := make(Params, len(params)+1)
	for k, v := range params {
		out[k] = v
	}
	return out
}
