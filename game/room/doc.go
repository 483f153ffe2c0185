// Package room defines the data model for a single match: the Room with its
// shared deck, chat log, seating order, and turn pointer, and the Player with
// its privately owned hand.
//
// Ownership:
//
// A Room stores only player identifiers. Player records are owned exclusively
// by the session registry; callers resolve identifiers to records there on
// every access, so there is never a second, stale copy of a hand.
//
// Cards:
//
// Cards are opaque tokens supplied by clients as arbitrary JSON values. The
// server never interprets them; discarding matches cards by deep equality on
// the decoded value.
//
// Concurrency:
//
// Each Room carries its own mutex (Mu). Every read-modify-write of room
// state, including the hand mutations of players seated in that room, must
// run while holding it. One lock domain per room lets unrelated rooms
// progress independently.
package room
