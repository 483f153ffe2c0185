// Package session tracks live server state: connected players, open rooms,
// and the per-game-type waiting queue used for matchmaking.
//
// The Manager is the single registry. It owns every Player record and every
// Room; rooms reference players by ID only, so the Manager is the one place
// a player ID resolves to a Player. All Manager methods are safe for
// concurrent use behind one mutex.
//
// Lock ordering: code holding a Room's lock may call Manager methods, but
// code holding the Manager's lock never locks a Room. ResolveMatch is the
// atomic matchmaking step: under one Manager lock it either claims the
// waiting room for a game type or creates and queues a fresh one, so two
// concurrent matchers for the same game type can never both create a room.
package session
