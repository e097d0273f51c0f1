// Package board defines the chess rules contract the rest of the
// system depends on. Positions travel as FEN strings; the canonical
// key is a reduced form of the FEN that compares equal across
// transpositions and replays.
package board

import "fmt"

// Model is the rules-engine contract. Any correct chess rules engine
// can back it; the production implementation lives in rules.go.
type Model interface {
	// StartPos returns the FEN of the standard starting position.
	StartPos() string

	// ApplyMove plays a move in standard algebraic notation on the
	// given position and returns the resulting position. An illegal or
	// unparseable move returns an *IllegalMoveError.
	ApplyMove(pos, move string) (string, error)

	// LegalMoves returns every legal move from the position, each in
	// the engine's canonical algebraic notation.
	LegalMoves(pos string) ([]string, error)

	// CanonicalKey reduces a position to its comparable key. Two
	// positions with the same placement, side to move, castling rights
	// and en passant square share a key regardless of move counters.
	CanonicalKey(pos string) (string, error)

	// CanonicalMove normalizes a move's notation against the position
	// it is played from. Corpus text and generated moves may format
	// the same move differently; comparing canonical forms is the only
	// supported equality.
	CanonicalMove(pos, move string) (string, error)
}

// IllegalMoveError reports a move the rules engine rejected.
type IllegalMoveError struct {
	Move string
	Pos  string
	Err  error
}

func (e *IllegalMoveError) Error() string {
	return fmt.Sprintf("illegal move %q: %v", e.Move, e.Err)
}

func (e *IllegalMoveError) Unwrap() error { return e.Err }
