package board

import (
	"fmt"
	"strings"

	"github.com/notnil/chess"
)

// Rules is the production Model, backed by the notnil/chess rules
// engine. It is stateless: every call decodes the position it is
// given, so a single instance is safe to share.
type Rules struct {
	notation chess.AlgebraicNotation
}

// NewRules creates the production rules engine.
func NewRules() *Rules {
	return &Rules{}
}

func (r *Rules) StartPos() string {
	return chess.StartingPosition().String()
}

func (r *Rules) ApplyMove(pos, move string) (string, error) {
	p, err := decodePosition(pos)
	if err != nil {
		return "", err
	}
	m, err := r.notation.Decode(p, strings.TrimSpace(move))
	if err != nil {
		return "", &IllegalMoveError{Move: move, Pos: pos, Err: err}
	}
	return p.Update(m).String(), nil
}

func (r *Rules) LegalMoves(pos string) ([]string, error) {
	p, err := decodePosition(pos)
	if err != nil {
		return nil, err
	}
	valid := p.ValidMoves()
	moves := make([]string, len(valid))
	for i, m := range valid {
		moves[i] = r.notation.Encode(p, m)
	}
	return moves, nil
}

func (r *Rules) CanonicalKey(pos string) (string, error) {
	if _, err := decodePosition(pos); err != nil {
		return "", err
	}
	return reduceFEN(pos), nil
}

func (r *Rules) CanonicalMove(pos, move string) (string, error) {
	p, err := decodePosition(pos)
	if err != nil {
		return "", err
	}
	m, err := r.notation.Decode(p, strings.TrimSpace(move))
	if err != nil {
		return "", &IllegalMoveError{Move: move, Pos: pos, Err: err}
	}
	return r.notation.Encode(p, m), nil
}

func decodePosition(fen string) (*chess.Position, error) {
	p := &chess.Position{}
	if err := p.UnmarshalText([]byte(strings.TrimSpace(fen))); err != nil {
		return nil, fmt.Errorf("decode position %q: %w", fen, err)
	}
	return p, nil
}

// reduceFEN keeps the first four FEN fields (placement, side to move,
// castling, en passant) and drops the move counters.
func reduceFEN(fen string) string {
	fields := strings.Fields(fen)
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}
